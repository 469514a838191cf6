package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)

	GetMyBalances(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListPolicies(w http.ResponseWriter, r *http.Request)

	ListRequests(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ProvisionBalances(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	employeeID := getUserIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Apply(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// Review implements LeaveHandler.
func (h *leaveHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	reviewerID := getUserIDFromContext(r)
	if reviewerID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	reviewed, err := h.leaveService.Review(r.Context(), reviewerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request reviewed", reviewed)
}

// Cancel implements LeaveHandler.
func (h *leaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	employeeID := getUserIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	cancelled, err := h.leaveService.Cancel(r.Context(), employeeID, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", cancelled)
}

// GetMyBalances implements LeaveHandler.
func (h *leaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := getUserIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	balances, err := h.leaveService.MyBalances(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// GetMyRequests implements LeaveHandler.
func (h *leaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := getUserIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var filter leave.MyRequestFilter
	if s := r.URL.Query().Get("status"); s != "" {
		status := leave.RequestStatus(s)
		filter.Status = &status
	}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		filter.Year = &year
	}

	requests, err := h.leaveService.MyRequests(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPolicies implements LeaveHandler.
func (h *leaveHandlerImpl) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.leaveService.Policies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policies)
}

// ListRequests implements LeaveHandler.
func (h *leaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	var filter leave.RequestFilter

	query := r.URL.Query()
	if s := query.Get("status"); s != "" {
		status := leave.RequestStatus(s)
		filter.Status = &status
	}
	if e := query.Get("employee_id"); e != "" {
		filter.EmployeeID = &e
	}
	if s := query.Get("start_date"); s != "" {
		startDate, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return
		}
		filter.StartDate = &startDate
	}
	if e := query.Get("end_date"); e != "" {
		endDate, err := time.Parse("2006-01-02", e)
		if err != nil {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return
		}
		filter.EndDate = &endDate
	}

	requests, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (h *leaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ProvisionBalances implements LeaveHandler.
func (h *leaveHandlerImpl) ProvisionBalances(w http.ResponseWriter, r *http.Request) {
	var req leave.ProvisionBalancesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ProvisionBalances decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	balances, err := h.leaveService.ProvisionBalances(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave balances provisioned", balances)
}
