package leave

import (
	"context"
	"time"
)

// PolicyRepository - interface for the leave_policies table
type PolicyRepository interface {
	List(ctx context.Context) ([]Policy, error)
}

// BalanceRepository - interface for the leave_balances table
type BalanceRepository interface {
	Create(ctx context.Context, balance Balance) (Balance, error)
	GetByEmployeeTypeYear(ctx context.Context, employeeID string, leaveType Type, year int) (Balance, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Balance, error)

	// ApplyUsage moves days from remaining to used in one guarded statement.
	// It must refuse (ErrBalanceIntegrity) rather than drive remaining
	// negative, and must serialize with concurrent callers on the same row.
	ApplyUsage(ctx context.Context, balanceID string, days int) error
}

// RequestFilter narrows reviewer-side request listings.
type RequestFilter struct {
	Status     *RequestStatus
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// MyRequestFilter narrows an employee's own request listing.
type MyRequestFilter struct {
	Status *RequestStatus
	Year   *int
}

// RequestRepository - interface for the leave_requests table
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// LockEmployee serializes the callers working on employeeID's requests
	// for the rest of the surrounding transaction. Apply takes it before the
	// overlap scan: two concurrent applies would otherwise both see no
	// committed overlap and both insert.
	LockEmployee(ctx context.Context, employeeID string) error

	// GetByIDForUpdate locks the request row for the lifetime of the
	// surrounding transaction so concurrent reviews serialize on it.
	GetByIDForUpdate(ctx context.Context, id string) (Request, error)

	// HasOverlapping reports whether any non-terminal (PENDING or APPROVED)
	// request of the employee intersects [startDate, endDate] inclusively.
	HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)

	ListByEmployee(ctx context.Context, employeeID string, filter MyRequestFilter) ([]Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, error)

	UpdateReview(ctx context.Context, id string, status RequestStatus, reviewerID string, reviewedAt time.Time, comments *string) error
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
}
