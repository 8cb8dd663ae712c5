package service

import (
	"context"
	"errors"
	"fmt"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/repository"

	"github.com/google/uuid"
)

// IdentityMaterializer idempotently resolves the admin credential and the
// employee record for a snapshot's login email: find by email, create only
// when absent. A second call with the same email performs no writes, which
// is what makes the post-claim roll-forward and the repair path safe.
type IdentityMaterializer struct {
	adminRepo    repository.AdminRepository
	employeeRepo repository.EmployeeRepository
}

func NewIdentityMaterializer(adminRepo repository.AdminRepository, employeeRepo repository.EmployeeRepository) *IdentityMaterializer {
	return &IdentityMaterializer{adminRepo: adminRepo, employeeRepo: employeeRepo}
}

func (m *IdentityMaterializer) Materialize(ctx context.Context, req *domain.RegistrationRequest) (adminID, employeeID uuid.UUID, err error) {
	employee, err := m.resolveEmployee(ctx, req)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	admin, err := m.resolveAdmin(ctx, req, employee.ID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return admin.ID, employee.ID, nil
}

func (m *IdentityMaterializer) resolveEmployee(ctx context.Context, req *domain.RegistrationRequest) (*domain.Employee, error) {
	employee, err := m.employeeRepo.GetByEmail(ctx, req.Admin.LoginEmail)
	if err == nil {
		return employee, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	position := req.Admin.Position
	if position == "" {
		position = "Admin"
	}
	employee = &domain.Employee{
		ID:        uuid.New(),
		FirstName: req.Admin.FirstName,
		LastName:  req.Admin.LastName,
		Email:     req.Admin.LoginEmail,
		Phone:     req.Admin.Phone,
		Position:  position,
	}
	if cerr := m.employeeRepo.Create(ctx, employee); cerr != nil {
		if errors.Is(cerr, domain.ErrDuplicate) {
			// A concurrent creator won the insert; converge on their row.
			return m.employeeRepo.GetByEmail(ctx, req.Admin.LoginEmail)
		}
		return nil, fmt.Errorf("failed to create employee: %w", cerr)
	}
	return employee, nil
}

func (m *IdentityMaterializer) resolveAdmin(ctx context.Context, req *domain.RegistrationRequest, employeeID uuid.UUID) (*domain.Admin, error) {
	admin, err := m.adminRepo.GetByEmail(ctx, req.Admin.LoginEmail)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	admin = &domain.Admin{
		ID:           uuid.New(),
		LoginEmail:   req.Admin.LoginEmail,
		PasswordHash: req.Admin.PasswordHash,
		EmployeeID:   employeeID,
	}
	if cerr := m.adminRepo.Create(ctx, admin); cerr != nil {
		if errors.Is(cerr, domain.ErrDuplicate) {
			return m.adminRepo.GetByEmail(ctx, req.Admin.LoginEmail)
		}
		return nil, fmt.Errorf("failed to create admin: %w", cerr)
	}
	return admin, nil
}

// CompanyFactory creates at most one company per registration request,
// keyed by source_request_id, and back-links the resolved employee to it.
type CompanyFactory struct {
	companyRepo  repository.CompanyRepository
	employeeRepo repository.EmployeeRepository
}

func NewCompanyFactory(companyRepo repository.CompanyRepository, employeeRepo repository.EmployeeRepository) *CompanyFactory {
	return &CompanyFactory{companyRepo: companyRepo, employeeRepo: employeeRepo}
}

func (f *CompanyFactory) Materialize(ctx context.Context, req *domain.RegistrationRequest, adminID, employeeID uuid.UUID) (uuid.UUID, error) {
	company, err := f.resolveCompany(ctx, req, adminID)
	if err != nil {
		return uuid.Nil, err
	}
	// Re-linking on every pass keeps repair safe when a crash landed between
	// company creation and the back-link.
	if err := f.employeeRepo.SetCompany(ctx, employeeID, company.ID); err != nil {
		return uuid.Nil, fmt.Errorf("failed to link employee to company: %w", err)
	}
	return company.ID, nil
}

func (f *CompanyFactory) resolveCompany(ctx context.Context, req *domain.RegistrationRequest, adminID uuid.UUID) (*domain.Company, error) {
	existing, err := f.companyRepo.GetBySourceRequest(ctx, req.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}

	company := &domain.Company{
		ID:                 uuid.New(),
		Name:               req.Company.Name,
		Description:        req.Company.Description,
		Branches:           req.Company.Branches,
		RegistrationNumber: req.Company.RegistrationNumber,
		TaxNumber:          req.Company.TaxNumber,
		Industry:           req.Company.Industry,
		Size:               req.Company.Size,
		LinkedInURL:        req.Company.LinkedInURL,
		LogoURL:            req.Company.LogoURL,
		SourceRequestID:    req.ID,
		AdminID:            adminID,
	}
	if cerr := f.companyRepo.Create(ctx, company); cerr != nil {
		if errors.Is(cerr, domain.ErrDuplicate) {
			return f.companyRepo.GetBySourceRequest(ctx, req.ID)
		}
		return nil, fmt.Errorf("failed to create company: %w", cerr)
	}
	return company, nil
}
