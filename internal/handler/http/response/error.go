package response

import (
	"errors"
	"net/http"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/domain/user"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var insufficientErr *leave.InsufficientBalanceError
	if errors.As(err, &insufficientErr) {
		BadRequest(w, insufficientErr.Error(), nil)
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrNoWorkingDays):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrNotCancellable):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrBalanceExists):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, leave.ErrBalanceIntegrity):
		InternalServerError(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrReviewerAccessRequired):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
