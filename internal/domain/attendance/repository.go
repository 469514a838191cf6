package attendance

import (
	"context"
	"time"
)

// Repository - interface for the attendances table
type Repository interface {
	// MarkLeaveDay upserts the (employeeID, date) row to status LEAVE,
	// overwriting any prior marking for that day and setting notes.
	MarkLeaveDay(ctx context.Context, employeeID string, date time.Time, notes string) error

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
