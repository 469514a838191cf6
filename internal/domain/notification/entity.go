package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeLeaveRequest  NotificationType = "leave_request"
	TypeLeaveApproved NotificationType = "leave_approved"
	TypeLeaveRejected NotificationType = "leave_rejected"
	TypeSystemAlert   NotificationType = "system_alert"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Link        string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
