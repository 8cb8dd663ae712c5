package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/repository/memory"
	"onboarding-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noopEmail satisfies EmailService without talking to SendGrid.
type noopEmail struct{}

func (noopEmail) SendApprovalNotification(ctx context.Context, email, firstName, companyName string) error {
	return nil
}
func (noopEmail) SendRejectionNotification(ctx context.Context, email, firstName, companyName string) error {
	return nil
}

func newWorkflow(store *memory.Store) (service.IntakeService, service.ReviewService) {
	intake := service.NewIntakeService(store.Requests())
	review := service.NewReviewService(
		store.Requests(),
		service.NewIdentityMaterializer(store.Admins(), store.Employees()),
		service.NewCompanyFactory(store.Companies(), store.Employees()),
		noopEmail{},
	)
	return intake, review
}

func TestWorkflow_SubmitApproveEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	intake, review := newWorkflow(store)
	reviewerID := uuid.New()

	id, err := intake.Submit(ctx, validInput())
	require.NoError(t, err)

	records, err := review.Approve(ctx, reviewerID, id)
	require.NoError(t, err)

	// Request carries the review stamp.
	req, err := review.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, req.Status)
	require.NotNil(t, req.ReviewedBy)
	assert.Equal(t, reviewerID, *req.ReviewedBy)
	assert.NotNil(t, req.ReviewedAt)

	// Company is linked back to both request and admin.
	company, err := store.GetCompanyByID(ctx, records.CompanyID)
	require.NoError(t, err)
	assert.Equal(t, id, company.SourceRequestID)
	assert.Equal(t, records.AdminID, company.AdminID)

	admin, err := store.GetAdminByEmail(ctx, "admin@acme.test")
	require.NoError(t, err)
	assert.Equal(t, records.AdminID, admin.ID)
	assert.Equal(t, records.EmployeeID, admin.EmployeeID)

	employee, err := store.GetEmployeeByEmail(ctx, "admin@acme.test")
	require.NoError(t, err)
	require.NotNil(t, employee.CompanyID)
	assert.Equal(t, records.CompanyID, *employee.CompanyID)

	// A second approve attempt is rejected by the claim.
	_, err = review.Approve(ctx, reviewerID, id)
	assert.ErrorIs(t, err, domain.ErrNotFoundOrProcessed)
}

func TestWorkflow_ConcurrentApproveExactlyOneWinner(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	intake, review := newWorkflow(store)

	id, err := intake.Submit(ctx, validInput())
	require.NoError(t, err)

	const racers = 8
	var wg sync.WaitGroup
	results := make([]*service.MaterializedRecords, racers)
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = review.Approve(ctx, uuid.New(), id)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < racers; i++ {
		if errs[i] == nil {
			winners++
			assert.NotNil(t, results[i])
		} else {
			assert.ErrorIs(t, errs[i], domain.ErrNotFoundOrProcessed)
		}
	}
	assert.Equal(t, 1, winners)

	// Exactly one company exists for the request.
	company, err := store.GetCompanyBySourceRequest(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, company.SourceRequestID)
}

func TestWorkflow_ApproveRejectRace(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	intake, review := newWorkflow(store)

	id, err := intake.Submit(ctx, validInput())
	require.NoError(t, err)

	var wg sync.WaitGroup
	var approveErr, rejectErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, approveErr = review.Approve(ctx, uuid.New(), id)
	}()
	go func() {
		defer wg.Done()
		rejectErr = review.Reject(ctx, uuid.New(), id)
	}()
	wg.Wait()

	// Exactly one terminal transition wins.
	if approveErr == nil {
		assert.ErrorIs(t, rejectErr, domain.ErrNotFoundOrProcessed)
		req, _ := review.Get(ctx, id)
		assert.Equal(t, domain.RequestStatusApproved, req.Status)
	} else {
		assert.ErrorIs(t, approveErr, domain.ErrNotFoundOrProcessed)
		assert.NoError(t, rejectErr)
		req, _ := review.Get(ctx, id)
		assert.Equal(t, domain.RequestStatusRejected, req.Status)
		// No records materialized for a rejection.
		_, err := store.GetCompanyBySourceRequest(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}

func TestWorkflow_RejectedEmailCanResubmit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	intake, review := newWorkflow(store)

	id, err := intake.Submit(ctx, validInput())
	require.NoError(t, err)

	// Active request blocks resubmission.
	_, err = intake.Submit(ctx, validInput())
	assert.ErrorIs(t, err, domain.ErrDuplicateAdminEmail)

	require.NoError(t, review.Reject(ctx, uuid.New(), id))

	// Rejection releases the email.
	id2, err := intake.Submit(ctx, validInput())
	assert.NoError(t, err)
	assert.NotEqual(t, id, id2)
}

func TestWorkflow_RepairAfterPartialMaterialization(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	intake, review := newWorkflow(store)
	reviewerID := uuid.New()

	id, err := intake.Submit(ctx, validInput())
	require.NoError(t, err)

	// Simulate a crash after the claim: the request is APPROVED but nothing
	// was materialized.
	claimed, err := store.Claim(ctx, id, domain.RequestStatusApproved, reviewerID, time.Now().UTC())
	require.NoError(t, err)
	require.True(t, claimed)

	unmat, err := store.ListUnmaterialized(ctx)
	require.NoError(t, err)
	require.Len(t, unmat, 1)

	records, err := review.Repair(ctx, id)
	require.NoError(t, err)

	// Repair converges: the sweep now finds nothing.
	unmat, err = store.ListUnmaterialized(ctx)
	require.NoError(t, err)
	assert.Empty(t, unmat)

	// Repairing again returns the same identifiers.
	again, err := review.Repair(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestWorkflow_RepairSweepOverMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	intake, review := newWorkflow(store)

	in1 := validInput()
	in2 := validInput()
	in2.Admin.Email = "second@acme.test"
	in2.Company.Name = "Second GmbH"

	id1, err := intake.Submit(ctx, in1)
	require.NoError(t, err)
	id2, err := intake.Submit(ctx, in2)
	require.NoError(t, err)

	for _, id := range []uuid.UUID{id1, id2} {
		claimed, err := store.Claim(ctx, id, domain.RequestStatusApproved, uuid.New(), time.Now().UTC())
		require.NoError(t, err)
		require.True(t, claimed)
	}

	repaired, err := review.RepairSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repaired)

	for _, id := range []uuid.UUID{id1, id2} {
		_, err := store.GetCompanyBySourceRequest(ctx, id)
		assert.NoError(t, err)
	}
}
