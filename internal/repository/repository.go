package repository

import (
	"context"
	"time"

	"onboarding-backend/internal/domain"

	"github.com/google/uuid"
)

type RegistrationRequestRepository interface {
	Create(ctx context.Context, req *domain.RegistrationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RegistrationRequest, error)
	// ListByStatus returns requests in the given status, newest submission first.
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.RegistrationRequest, error)
	// ExistsActiveByEmail reports whether a pending or approved request
	// already holds the given login email (case-insensitive).
	ExistsActiveByEmail(ctx context.Context, email string) (bool, error)
	// Claim atomically transitions the request out of PENDING. It must be a
	// single conditional write; true is returned only when exactly one row
	// moved. This is the sole serialization point of the workflow.
	Claim(ctx context.Context, id uuid.UUID, to domain.RequestStatus, reviewedBy uuid.UUID, at time.Time) (bool, error)
	// ListUnmaterialized returns approved requests that have no company yet,
	// i.e. the recoverable window left by a crash after a successful claim.
	ListUnmaterialized(ctx context.Context) ([]domain.RegistrationRequest, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	// SetCompany back-links the employee to the company that owns them.
	SetCompany(ctx context.Context, employeeID, companyID uuid.UUID) error
}

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetBySourceRequest(ctx context.Context, requestID uuid.UUID) (*domain.Company, error)
}
