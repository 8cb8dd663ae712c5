package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/repository"

	"github.com/google/uuid"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (id, first_name, last_name, email, phone, position, company_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	e.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, e.ID, e.FirstName, e.LastName, e.Email, e.Phone, e.Position, e.CompanyID, e.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT id, first_name, last_name, email, phone, position, company_id, created_at
	          FROM employees WHERE LOWER(email) = LOWER($1)`
	var companyID uuid.NullUUID
	err := r.db.QueryRowContext(ctx, query, email).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Position, &companyID, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if companyID.Valid {
		e.CompanyID = &companyID.UUID
	}
	return e, nil
}

func (r *employeeRepository) SetCompany(ctx context.Context, employeeID, companyID uuid.UUID) error {
	query := `UPDATE employees SET company_id = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, companyID, employeeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
