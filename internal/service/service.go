package service

import (
	"context"

	"onboarding-backend/internal/domain"

	"github.com/google/uuid"
)

// MaterializedRecords is the identifier triple handed to downstream
// provisioning once an approval has fully materialized.
type MaterializedRecords struct {
	CompanyID  uuid.UUID `json:"companyId"`
	AdminID    uuid.UUID `json:"adminId"`
	EmployeeID uuid.UUID `json:"employeeId"`
}

type IntakeService interface {
	Submit(ctx context.Context, in SubmitRegistrationInput) (uuid.UUID, error)
}

type ReviewService interface {
	List(ctx context.Context, status domain.RequestStatus) ([]domain.RegistrationRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RegistrationRequest, error)
	Approve(ctx context.Context, reviewerID, requestID uuid.UUID) (*MaterializedRecords, error)
	Reject(ctx context.Context, reviewerID, requestID uuid.UUID) error
	Repair(ctx context.Context, requestID uuid.UUID) (*MaterializedRecords, error)
	RepairSweep(ctx context.Context) (int, error)
}

type EmailService interface {
	SendApprovalNotification(ctx context.Context, email, firstName, companyName string) error
	SendRejectionNotification(ctx context.Context, email, firstName, companyName string) error
}
