package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (id, name, description, branches, registration_number, tax_number,
	          industry, size, linkedin_url, logo_url, source_request_id, admin_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	c.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Description, pq.Array(c.Branches), c.RegistrationNumber, c.TaxNumber,
		c.Industry, c.Size, c.LinkedInURL, c.LogoURL, c.SourceRequestID, c.AdminID, c.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := companySelect + ` WHERE id = $1`
	return r.scanCompany(r.db.QueryRowContext(ctx, query, id))
}

func (r *companyRepository) GetBySourceRequest(ctx context.Context, requestID uuid.UUID) (*domain.Company, error) {
	query := companySelect + ` WHERE source_request_id = $1`
	return r.scanCompany(r.db.QueryRowContext(ctx, query, requestID))
}

const companySelect = `SELECT id, name, description, branches, registration_number, tax_number,
	          industry, size, linkedin_url, logo_url, source_request_id, admin_id, created_at FROM companies`

func (r *companyRepository) scanCompany(row *sql.Row) (*domain.Company, error) {
	c := &domain.Company{}
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, pq.Array(&c.Branches), &c.RegistrationNumber, &c.TaxNumber,
		&c.Industry, &c.Size, &c.LinkedInURL, &c.LogoURL, &c.SourceRequestID, &c.AdminID, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
