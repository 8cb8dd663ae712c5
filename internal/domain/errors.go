package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when an insert hits a uniqueness constraint.
	// Callers doing find-or-create resolve it by re-reading.
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFoundOrProcessed deliberately conflates "no such request" with
	// "request already approved/rejected" so a race loser and a bad id are
	// indistinguishable to the caller.
	ErrNotFoundOrProcessed = errors.New("registration request not found or already processed")

	// ErrDuplicateAdminEmail rejects a submission whose admin email is
	// already held by a pending or approved request.
	ErrDuplicateAdminEmail = errors.New("admin email already used by an active registration request")

	// ErrNotRepairable means the request is not approved, so there is
	// nothing for the repair path to re-run.
	ErrNotRepairable = errors.New("registration request is not in a repairable state")
)

// MaterializationError marks a storage failure that happened after the
// approval claim succeeded. The request is left approved without a
// company; the repair path resolves it using the carried request id.
type MaterializationError struct {
	RequestID uuid.UUID
	Err       error
}

func (e *MaterializationError) Error() string {
	return fmt.Sprintf("materialization failed for request %s: %v", e.RequestID, e.Err)
}

func (e *MaterializationError) Unwrap() error { return e.Err }
