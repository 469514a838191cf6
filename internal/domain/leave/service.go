package leave

import "context"

// Service is the leave request lifecycle engine.
type Service interface {
	// Apply validates and creates a PENDING request for the calling
	// employee, then notifies reviewers.
	Apply(ctx context.Context, employeeID string, req ApplyRequest) (RequestResponse, error)

	// Review decides a PENDING request. On APPROVED the balance decrement
	// and attendance marking commit atomically with the status change.
	// The caller must already have passed the leave.approve gate.
	Review(ctx context.Context, reviewerID string, req ReviewRequest) (RequestResponse, error)

	// Cancel moves the caller's own PENDING request to CANCELLED.
	Cancel(ctx context.Context, employeeID, requestID string) (RequestResponse, error)

	// MyBalances returns the employee's current-year ledger joined with
	// policy metadata. Always reads committed state, never cached.
	MyBalances(ctx context.Context, employeeID string) ([]BalanceResponse, error)

	MyRequests(ctx context.Context, employeeID string, filter MyRequestFilter) ([]RequestResponse, error)
	ListPending(ctx context.Context) ([]RequestResponse, error)
	ListRequests(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)
	Policies(ctx context.Context) ([]PolicyResponse, error)

	// ProvisionBalances seeds an employee's balances for a year from the
	// policy quotas, applying the carry-forward rule against the previous
	// year's remainders.
	ProvisionBalances(ctx context.Context, req ProvisionBalancesRequest) ([]Balance, error)
}
