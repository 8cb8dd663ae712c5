package memory

import (
	"context"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/repository"

	"github.com/google/uuid"
)

// The Store exposes one view per repository interface; admin, employee and
// company methods carry entity-qualified names on the Store itself, so thin
// wrappers rename them to the interface shape.

func (s *Store) Requests() repository.RegistrationRequestRepository { return s }

func (s *Store) Admins() repository.AdminRepository { return adminView{s} }

func (s *Store) Employees() repository.EmployeeRepository { return employeeView{s} }

func (s *Store) Companies() repository.CompanyRepository { return companyView{s} }

type adminView struct{ s *Store }

func (v adminView) Create(ctx context.Context, a *domain.Admin) error { return v.s.CreateAdmin(ctx, a) }
func (v adminView) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return v.s.GetAdminByEmail(ctx, email)
}

type employeeView struct{ s *Store }

func (v employeeView) Create(ctx context.Context, e *domain.Employee) error {
	return v.s.CreateEmployee(ctx, e)
}
func (v employeeView) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return v.s.GetEmployeeByEmail(ctx, email)
}
func (v employeeView) SetCompany(ctx context.Context, employeeID, companyID uuid.UUID) error {
	return v.s.SetCompany(ctx, employeeID, companyID)
}

type companyView struct{ s *Store }

func (v companyView) Create(ctx context.Context, c *domain.Company) error {
	return v.s.CreateCompany(ctx, c)
}
func (v companyView) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return v.s.GetCompanyByID(ctx, id)
}
func (v companyView) GetBySourceRequest(ctx context.Context, requestID uuid.UUID) (*domain.Company, error) {
	return v.s.GetCompanyBySourceRequest(ctx, requestID)
}
