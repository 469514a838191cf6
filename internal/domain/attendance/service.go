package attendance

import (
	"context"
	"time"
)

// Service exposes the employee-facing attendance queries.
type Service interface {
	// MyAttendance lists the employee's ledger rows in [from, to]. Nil
	// bounds default to the current month up to today.
	MyAttendance(ctx context.Context, employeeID string, from, to *time.Time) ([]AttendanceResponse, error)
}
