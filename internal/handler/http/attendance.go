package http

import (
	"net/http"
	"time"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/handler/http/response"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := getUserIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var from, to *time.Time
	query := r.URL.Query()
	if s := query.Get("from"); s != "" {
		parsed, ok := validator.IsValidDate(s)
		if !ok {
			response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
			return
		}
		from = &parsed
	}
	if s := query.Get("to"); s != "" {
		parsed, ok := validator.IsValidDate(s)
		if !ok {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
		to = &parsed
	}

	rows, err := h.attendanceService.MyAttendance(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}
