package leave

import (
	"time"

	"github.com/peoplehr/hrms-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	LeaveType Type   `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.LeaveType.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of PAID, SICK, CASUAL, UNPAID, MATERNITY, PATERNITY",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(validator.TrimSpace(r.Reason)) < 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be at least 10 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequest struct {
	RequestID string  `json:"-"`
	Decision  string  `json:"decision"`
	Comments  *string `json:"comments,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if !validator.IsInSlice(r.Decision, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProvisionBalancesRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
}

func (r *ProvisionBalancesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID               string     `json:"id"`
	EmployeeID       string     `json:"employee_id"`
	EmployeeName     *string    `json:"employee_name,omitempty"`
	LeaveType        Type       `json:"leave_type"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date"`
	DaysRequested    int        `json:"days_requested"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	ReviewedByID     *string    `json:"reviewed_by_id,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	ReviewerComments *string    `json:"reviewer_comments,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// NewRequestResponse maps a Request entity onto the wire shape.
func NewRequestResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:               req.ID,
		EmployeeID:       req.EmployeeID,
		EmployeeName:     req.EmployeeName,
		LeaveType:        req.LeaveType,
		StartDate:        req.StartDate.Format("2006-01-02"),
		EndDate:          req.EndDate.Format("2006-01-02"),
		DaysRequested:    req.DaysRequested,
		Reason:           req.Reason,
		Status:           string(req.Status),
		ReviewedByID:     req.ReviewedByID,
		ReviewedAt:       req.ReviewedAt,
		ReviewerComments: req.ReviewerComments,
		CreatedAt:        req.CreatedAt,
	}
}

// BalanceResponse joins a balance row with its policy metadata for display.
type BalanceResponse struct {
	LeaveType             Type    `json:"leave_type"`
	Description           *string `json:"description,omitempty"`
	Year                  int     `json:"year"`
	TotalAllocated        int     `json:"total_allocated"`
	Used                  int     `json:"used"`
	Remaining             int     `json:"remaining"`
	CarryForwardAllowed   bool    `json:"carry_forward_allowed"`
	RequiresDocumentation bool    `json:"requires_documentation"`
}

type PolicyResponse struct {
	LeaveType             Type    `json:"leave_type"`
	Description           *string `json:"description,omitempty"`
	AnnualQuota           int     `json:"annual_quota"`
	CarryForwardAllowed   bool    `json:"carry_forward_allowed"`
	MaxCarryForward       *int    `json:"max_carry_forward,omitempty"`
	RequiresDocumentation bool    `json:"requires_documentation"`
}
