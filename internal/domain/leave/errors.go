package leave

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange   = errors.New("start date cannot be after end date")
	ErrNoWorkingDays      = errors.New("requested range contains no working days")
	ErrInvalidLeaveType   = errors.New("unknown leave type")
	ErrBalanceNotFound    = errors.New("leave balance not found for this leave type, contact HR")
	ErrOverlappingRequest = errors.New("you already have a leave request for this period")
	ErrRequestNotFound    = errors.New("leave request not found")
	ErrAlreadyReviewed    = errors.New("this leave request has already been reviewed")
	ErrNotRequestOwner    = errors.New("you can only cancel your own leave requests")
	ErrNotCancellable     = errors.New("only pending leave requests can be cancelled")
	ErrBalanceExists      = errors.New("leave balance already provisioned for this year")

	// ErrBalanceIntegrity signals that an approval would drive a balance
	// negative. Never clamped: the transaction aborts and the fault is
	// reported, since it means either a concurrency bug or tampered data.
	ErrBalanceIntegrity = errors.New("leave balance would become negative, data integrity fault")
)

// InsufficientBalanceError carries both counts so the caller can adjust the
// request instead of guessing.
type InsufficientBalanceError struct {
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance. Available: %d days, Requested: %d days", e.Available, e.Requested)
}
