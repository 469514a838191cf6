package notification

import "context"

// Dispatcher is the producer-facing side of the notification service. The
// leave engine depends only on this: dispatch is best-effort and must never
// roll back a leave state change.
type Dispatcher interface {
	Queue(ctx context.Context, event Event) error
	QueueBulk(ctx context.Context, events []Event) error
}

// Service defines the full notification service interface
type Service interface {
	Dispatcher

	GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*ListResponse, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, userID string, req MarkAsReadRequest) error
	MarkAllAsRead(ctx context.Context, userID string) error

	// Subscribe opens a live event stream for a user (SSE fan-out).
	Subscribe(ctx context.Context, userID string) (<-chan SSEEvent, func())

	Stop()
}
