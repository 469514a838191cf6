package attendance

import "time"

// AttendanceResponse is the employee-facing shape of one ledger row.
type AttendanceResponse struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	CheckIn   *string  `json:"check_in,omitempty"`
	CheckOut  *string  `json:"check_out,omitempty"`
	WorkHours *float64 `json:"work_hours,omitempty"`
	Status    Status   `json:"status"`
	Notes     *string  `json:"notes,omitempty"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID,
		Date:      a.Date.Format("2006-01-02"),
		CheckIn:   formatTime(a.CheckIn),
		CheckOut:  formatTime(a.CheckOut),
		WorkHours: a.WorkHours,
		Status:    a.Status,
		Notes:     a.Notes,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
