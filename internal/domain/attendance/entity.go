package attendance

import "time"

// Status is the per-day attendance marking.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusHalfDay Status = "HALF_DAY"
	StatusLeave   Status = "LEAVE"
)

// Attendance is one (employee, date) ledger row. Check-in/out fields are
// populated by the attendance flows; the leave engine only upserts the
// status/notes pair when marking approved leave days.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	WorkHours  *float64
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
