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

type registrationRequestRepository struct {
	db *sql.DB
}

func NewRegistrationRequestRepository(db *sql.DB) repository.RegistrationRequestRepository {
	return &registrationRequestRepository{db: db}
}

const requestColumns = `id, status, company_name, description, branches, registration_number, tax_number,
	          industry, size, linkedin_url, logo_url, login_email, password_hash, first_name, last_name,
	          phone, position, submitted_at, reviewed_at, reviewed_by`

func (r *registrationRequestRepository) Create(ctx context.Context, req *domain.RegistrationRequest) error {
	query := `INSERT INTO registration_requests (` + requestColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.db.ExecContext(ctx, query,
		req.ID, req.Status,
		req.Company.Name, req.Company.Description, pq.Array(req.Company.Branches),
		req.Company.RegistrationNumber, req.Company.TaxNumber, req.Company.Industry,
		req.Company.Size, req.Company.LinkedInURL, req.Company.LogoURL,
		req.Admin.LoginEmail, req.Admin.PasswordHash, req.Admin.FirstName,
		req.Admin.LastName, req.Admin.Phone, req.Admin.Position,
		req.SubmittedAt, req.ReviewedAt, req.ReviewedBy,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *registrationRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RegistrationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM registration_requests WHERE id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, query, id))
}

func (r *registrationRequestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.RegistrationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM registration_requests WHERE status = $1 ORDER BY submitted_at DESC`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *registrationRequestRepository) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM registration_requests
	          WHERE LOWER(login_email) = LOWER($1) AND status IN ($2, $3))`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, email, domain.RequestStatusPending, domain.RequestStatusApproved).Scan(&exists)
	return exists, err
}

// Claim is the workflow's compare-and-set: the UPDATE only matches while the
// stored status is still PENDING, so under concurrent calls exactly one
// caller sees an affected row.
func (r *registrationRequestRepository) Claim(ctx context.Context, id uuid.UUID, to domain.RequestStatus, reviewedBy uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE registration_requests SET status = $1, reviewed_at = $2, reviewed_by = $3
	          WHERE id = $4 AND status = $5`
	res, err := r.db.ExecContext(ctx, query, to, at, reviewedBy, id, domain.RequestStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *registrationRequestRepository) ListUnmaterialized(ctx context.Context) ([]domain.RegistrationRequest, error) {
	query := `SELECT r.id, r.status, r.company_name, r.description, r.branches, r.registration_number, r.tax_number,
	          r.industry, r.size, r.linkedin_url, r.logo_url, r.login_email, r.password_hash, r.first_name, r.last_name,
	          r.phone, r.position, r.submitted_at, r.reviewed_at, r.reviewed_by
	          FROM registration_requests r
	          LEFT JOIN companies c ON c.source_request_id = r.id
	          WHERE r.status = $1 AND c.id IS NULL
	          ORDER BY r.submitted_at`
	rows, err := r.db.QueryContext(ctx, query, domain.RequestStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.RegistrationRequest, error) {
	req := &domain.RegistrationRequest{}
	var reviewedAt sql.NullTime
	var reviewedBy uuid.NullUUID
	err := row.Scan(
		&req.ID, &req.Status,
		&req.Company.Name, &req.Company.Description, pq.Array(&req.Company.Branches),
		&req.Company.RegistrationNumber, &req.Company.TaxNumber, &req.Company.Industry,
		&req.Company.Size, &req.Company.LinkedInURL, &req.Company.LogoURL,
		&req.Admin.LoginEmail, &req.Admin.PasswordHash, &req.Admin.FirstName,
		&req.Admin.LastName, &req.Admin.Phone, &req.Admin.Position,
		&req.SubmittedAt, &reviewedAt, &reviewedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if reviewedAt.Valid {
		req.ReviewedAt = &reviewedAt.Time
	}
	if reviewedBy.Valid {
		req.ReviewedBy = &reviewedBy.UUID
	}
	return req, nil
}

func collectRequests(rows *sql.Rows) ([]domain.RegistrationRequest, error) {
	var reqs []domain.RegistrationRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}
