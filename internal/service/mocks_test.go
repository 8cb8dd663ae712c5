package service_test

import (
	"context"
	"time"

	"onboarding-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRegistrationRequestRepo
type MockRegistrationRequestRepo struct {
	mock.Mock
}

func (m *MockRegistrationRequestRepo) Create(ctx context.Context, req *domain.RegistrationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRegistrationRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RegistrationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegistrationRequest), args.Error(1)
}
func (m *MockRegistrationRequestRepo) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.RegistrationRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegistrationRequest), args.Error(1)
}
func (m *MockRegistrationRequestRepo) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockRegistrationRequestRepo) Claim(ctx context.Context, id uuid.UUID, to domain.RequestStatus, reviewedBy uuid.UUID, at time.Time) (bool, error) {
	args := m.Called(ctx, id, to, reviewedBy, at)
	return args.Bool(0), args.Error(1)
}
func (m *MockRegistrationRequestRepo) ListUnmaterialized(ctx context.Context) ([]domain.RegistrationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegistrationRequest), args.Error(1)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) SetCompany(ctx context.Context, employeeID, companyID uuid.UUID) error {
	args := m.Called(ctx, employeeID, companyID)
	return args.Error(0)
}

// MockCompanyRepo
type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) GetBySourceRequest(ctx context.Context, requestID uuid.UUID) (*domain.Company, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApprovalNotification(ctx context.Context, email, firstName, companyName string) error {
	args := m.Called(ctx, email, firstName, companyName)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionNotification(ctx context.Context, email, firstName, companyName string) error {
	args := m.Called(ctx, email, firstName, companyName)
	return args.Error(0)
}
