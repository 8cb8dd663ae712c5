package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (id, login_email, password_hash, employee_id, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	a.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, a.ID, a.LoginEmail, a.PasswordHash, a.EmployeeID, a.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT id, login_email, password_hash, employee_id, created_at FROM admins WHERE LOWER(login_email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.LoginEmail, &a.PasswordHash, &a.EmployeeID, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
