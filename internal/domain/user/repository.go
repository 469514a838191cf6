package user

import "context"

// Repository - interface for the users table
type Repository interface {
	GetByID(ctx context.Context, id string) (User, error)
	// ListReviewers returns every active user holding the leave.approve
	// capability (HR and Admin). Used for notification fan-out on apply.
	ListReviewers(ctx context.Context) ([]User, error)
}
