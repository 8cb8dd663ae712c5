package service

import (
	"context"
	"fmt"
	"time"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository"

	"github.com/google/uuid"
)

type reviewService struct {
	reqRepo  repository.RegistrationRequestRepository
	identity *IdentityMaterializer
	factory  *CompanyFactory
	emailSvc EmailService
}

func NewReviewService(
	reqRepo repository.RegistrationRequestRepository,
	identity *IdentityMaterializer,
	factory *CompanyFactory,
	emailSvc EmailService,
) ReviewService {
	return &reviewService{
		reqRepo:  reqRepo,
		identity: identity,
		factory:  factory,
		emailSvc: emailSvc,
	}
}

func (s *reviewService) List(ctx context.Context, status domain.RequestStatus) ([]domain.RegistrationRequest, error) {
	return s.reqRepo.ListByStatus(ctx, status)
}

func (s *reviewService) Get(ctx context.Context, id uuid.UUID) (*domain.RegistrationRequest, error) {
	return s.reqRepo.GetByID(ctx, id)
}

// Approve transitions one request from PENDING to APPROVED and materializes
// its admin/employee/company records. The claim is taken first: whoever wins
// the conditional write owns the transition, and every creation step after
// it is idempotent, so a crash mid-way is healed by Repair rather than
// rolled back.
func (s *reviewService) Approve(ctx context.Context, reviewerID, requestID uuid.UUID) (*MaterializedRecords, error) {
	claimed, err := s.reqRepo.Claim(ctx, requestID, domain.RequestStatusApproved, reviewerID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to claim registration request: %w", err)
	}
	if !claimed {
		return nil, domain.ErrNotFoundOrProcessed
	}

	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		logger.Error("Approved request could not be re-read for materialization", "request_id", requestID, "error", err)
		return nil, &domain.MaterializationError{RequestID: requestID, Err: err}
	}

	records, err := s.materialize(ctx, req)
	if err != nil {
		// The request stays APPROVED with no company: a detectable,
		// repairable window. Never retried via a second approve call, the
		// claim would reject it.
		logger.Error("Materialization failed after claim; request left in repair window", "request_id", requestID, "error", err)
		return nil, &domain.MaterializationError{RequestID: requestID, Err: err}
	}

	if nerr := s.emailSvc.SendApprovalNotification(ctx, req.Admin.LoginEmail, req.Admin.FirstName, req.Company.Name); nerr != nil {
		logger.Warn("Failed to send approval notification", "request_id", requestID, "error", nerr)
	}

	logger.Info("Registration request approved", "request_id", requestID,
		"company_id", records.CompanyID, "admin_id", records.AdminID, "employee_id", records.EmployeeID)
	return records, nil
}

// Reject performs the terminal transition with no side-effect
// materialization, using the same conditional claim.
func (s *reviewService) Reject(ctx context.Context, reviewerID, requestID uuid.UUID) error {
	claimed, err := s.reqRepo.Claim(ctx, requestID, domain.RequestStatusRejected, reviewerID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to claim registration request: %w", err)
	}
	if !claimed {
		return domain.ErrNotFoundOrProcessed
	}

	if req, gerr := s.reqRepo.GetByID(ctx, requestID); gerr == nil {
		if nerr := s.emailSvc.SendRejectionNotification(ctx, req.Admin.LoginEmail, req.Admin.FirstName, req.Company.Name); nerr != nil {
			logger.Warn("Failed to send rejection notification", "request_id", requestID, "error", nerr)
		}
	}

	logger.Info("Registration request rejected", "request_id", requestID, "reviewer_id", reviewerID)
	return nil
}

// Repair re-runs materialization for a request that is APPROVED but has no
// company. Both materialization steps are idempotent, so repairing an
// already-consistent request simply returns the existing identifiers.
func (s *reviewService) Repair(ctx context.Context, requestID uuid.UUID) (*MaterializedRecords, error) {
	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestStatusApproved {
		return nil, domain.ErrNotRepairable
	}

	records, err := s.materialize(ctx, req)
	if err != nil {
		return nil, &domain.MaterializationError{RequestID: requestID, Err: err}
	}
	logger.Info("Registration request repaired", "request_id", requestID, "company_id", records.CompanyID)
	return records, nil
}

// RepairSweep repairs every approved-without-company request. Failures are
// logged and skipped so one bad row cannot starve the rest.
func (s *reviewService) RepairSweep(ctx context.Context) (int, error) {
	reqs, err := s.reqRepo.ListUnmaterialized(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list unmaterialized requests: %w", err)
	}

	repaired := 0
	for i := range reqs {
		if _, err := s.materialize(ctx, &reqs[i]); err != nil {
			logger.Error("Repair sweep failed for request", "request_id", reqs[i].ID, "error", err)
			continue
		}
		repaired++
	}
	if repaired > 0 {
		logger.Info("Repair sweep completed", "repaired", repaired, "scanned", len(reqs))
	}
	return repaired, nil
}

// materialize runs IdentityMaterializer then CompanyFactory against an
// approved snapshot. Safe to call any number of times for the same request.
func (s *reviewService) materialize(ctx context.Context, req *domain.RegistrationRequest) (*MaterializedRecords, error) {
	adminID, employeeID, err := s.identity.Materialize(ctx, req)
	if err != nil {
		return nil, err
	}
	companyID, err := s.factory.Materialize(ctx, req, adminID, employeeID)
	if err != nil {
		return nil, err
	}
	return &MaterializedRecords{
		CompanyID:  companyID,
		AdminID:    adminID,
		EmployeeID: employeeID,
	}, nil
}
