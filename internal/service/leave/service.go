package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/domain/notification"
	"github.com/peoplehr/hrms-backend-go/internal/domain/user"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/clock"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

// Service implements leave.Service. Balance arithmetic only ever happens
// inside the approval transaction; apply and cancel never touch the ledger.
type Service struct {
	txm database.TxManager

	leave.PolicyRepository
	leave.BalanceRepository
	leave.RequestRepository
	attendanceRepo attendance.Repository
	userRepo       user.Repository

	dispatcher notification.Dispatcher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewService(
	txm database.TxManager,
	policyRepo leave.PolicyRepository,
	balanceRepo leave.BalanceRepository,
	requestRepo leave.RequestRepository,
	attendanceRepo attendance.Repository,
	userRepo user.Repository,
	dispatcher notification.Dispatcher,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		txm:               txm,
		PolicyRepository:  policyRepo,
		BalanceRepository: balanceRepo,
		RequestRepository: requestRepo,
		attendanceRepo:    attendanceRepo,
		userRepo:          userRepo,
		dispatcher:        dispatcher,
		clock:             clk,
		logger:            logger,
	}
}

// Apply implements leave.Service.
func (s *Service) Apply(ctx context.Context, employeeID string, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if startDate.After(endDate) {
		return leave.RequestResponse{}, leave.ErrInvalidDateRange
	}

	daysRequested := WorkdaysBetween(startDate, endDate)
	if daysRequested == 0 {
		return leave.RequestResponse{}, leave.ErrNoWorkingDays
	}

	balance, err := s.BalanceRepository.GetByEmployeeTypeYear(ctx, employeeID, req.LeaveType, startDate.Year())
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if balance.Remaining < daysRequested {
		return leave.RequestResponse{}, &leave.InsufficientBalanceError{
			Available: balance.Remaining,
			Requested: daysRequested,
		}
	}

	var created leave.Request
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		// Serialize per employee so a concurrent apply cannot pass the
		// overlap scan against a row this transaction has not committed yet.
		if err := s.RequestRepository.LockEmployee(ctx, employeeID); err != nil {
			return err
		}

		hasOverlap, err := s.RequestRepository.HasOverlapping(ctx, employeeID, startDate, endDate)
		if err != nil {
			return fmt.Errorf("failed to check overlapping requests: %w", err)
		}
		if hasOverlap {
			return leave.ErrOverlappingRequest
		}

		created, err = s.RequestRepository.Create(ctx, leave.Request{
			EmployeeID:    employeeID,
			LeaveType:     req.LeaveType,
			StartDate:     startDate,
			EndDate:       endDate,
			DaysRequested: daysRequested,
			Reason:        req.Reason,
			Status:        leave.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.notifyReviewers(ctx, created)

	return leave.NewRequestResponse(created), nil
}

// Review implements leave.Service. The status change, the balance decrement
// and the attendance cascade commit in one transaction; a failure in any of
// them leaves the request PENDING.
func (s *Service) Review(ctx context.Context, reviewerID string, req leave.ReviewRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	decision := leave.RequestStatus(req.Decision)
	reviewedAt := s.clock.Now()

	var reviewed leave.Request
	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.RequestRepository.GetByIDForUpdate(ctx, req.RequestID)
		if err != nil {
			return err
		}

		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyReviewed
		}

		if decision == leave.StatusApproved {
			if err := s.applyApproval(ctx, request); err != nil {
				return err
			}
		}

		if err := s.RequestRepository.UpdateReview(ctx, request.ID, decision, reviewerID, reviewedAt, req.Comments); err != nil {
			return err
		}

		request.Status = decision
		request.ReviewedByID = &reviewerID
		request.ReviewedAt = &reviewedAt
		request.ReviewerComments = req.Comments
		reviewed = request
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.notifyEmployee(ctx, reviewed, reviewerID)

	return leave.NewRequestResponse(reviewed), nil
}

// applyApproval debits the ledger and marks the attendance days. Runs inside
// the review transaction. The balance is re-validated here because nothing is
// reserved at apply time: a sibling request approved first may have consumed
// the days this one was validated against.
func (s *Service) applyApproval(ctx context.Context, request leave.Request) error {
	balance, err := s.BalanceRepository.GetByEmployeeTypeYear(ctx, request.EmployeeID, request.LeaveType, request.BalanceYear())
	if err != nil {
		return err
	}

	if balance.Remaining < request.DaysRequested {
		return &leave.InsufficientBalanceError{
			Available: balance.Remaining,
			Requested: request.DaysRequested,
		}
	}

	if err := s.BalanceRepository.ApplyUsage(ctx, balance.ID, request.DaysRequested); err != nil {
		return err
	}

	notes := fmt.Sprintf("%s leave", request.LeaveType)
	for _, day := range WeekdaysIn(request.StartDate, request.EndDate) {
		if err := s.attendanceRepo.MarkLeaveDay(ctx, request.EmployeeID, day, notes); err != nil {
			return fmt.Errorf("failed to mark attendance for %s: %w", day.Format("2006-01-02"), err)
		}
	}

	return nil
}

// Cancel implements leave.Service.
func (s *Service) Cancel(ctx context.Context, employeeID, requestID string) (leave.RequestResponse, error) {
	var cancelled leave.Request
	err := s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := s.RequestRepository.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}

		if request.EmployeeID != employeeID {
			return leave.ErrNotRequestOwner
		}
		if request.Status != leave.StatusPending {
			return leave.ErrNotCancellable
		}

		if err := s.RequestRepository.UpdateStatus(ctx, request.ID, leave.StatusCancelled); err != nil {
			return err
		}

		request.Status = leave.StatusCancelled
		cancelled = request
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.NewRequestResponse(cancelled), nil
}

// MyBalances implements leave.Service.
func (s *Service) MyBalances(ctx context.Context, employeeID string) ([]leave.BalanceResponse, error) {
	year := s.clock.Now().Year()

	balances, err := s.BalanceRepository.GetByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	policies, err := s.PolicyRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	policyByType := make(map[leave.Type]leave.Policy, len(policies))
	for _, p := range policies {
		policyByType[p.LeaveType] = p
	}

	responses := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		resp := leave.BalanceResponse{
			LeaveType:      b.LeaveType,
			Year:           b.Year,
			TotalAllocated: b.TotalAllocated,
			Used:           b.Used,
			Remaining:      b.Remaining,
		}
		if p, ok := policyByType[b.LeaveType]; ok {
			resp.Description = p.Description
			resp.CarryForwardAllowed = p.CarryForwardAllowed
			resp.RequiresDocumentation = p.RequiresDocumentation
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// MyRequests implements leave.Service.
func (s *Service) MyRequests(ctx context.Context, employeeID string, filter leave.MyRequestFilter) ([]leave.RequestResponse, error) {
	requests, err := s.RequestRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListPending implements leave.Service.
func (s *Service) ListPending(ctx context.Context) ([]leave.RequestResponse, error) {
	pending := leave.StatusPending
	return s.ListRequests(ctx, leave.RequestFilter{Status: &pending})
}

// ListRequests implements leave.Service.
func (s *Service) ListRequests(ctx context.Context, filter leave.RequestFilter) ([]leave.RequestResponse, error) {
	requests, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// Policies implements leave.Service.
func (s *Service) Policies(ctx context.Context) ([]leave.PolicyResponse, error) {
	policies, err := s.PolicyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, leave.PolicyResponse{
			LeaveType:             p.LeaveType,
			Description:           p.Description,
			AnnualQuota:           p.AnnualQuota,
			CarryForwardAllowed:   p.CarryForwardAllowed,
			MaxCarryForward:       p.MaxCarryForward,
			RequiresDocumentation: p.RequiresDocumentation,
		})
	}

	return responses, nil
}

// ProvisionBalances implements leave.Service. For each policy the new year's
// allocation is the annual quota plus the carried-forward remainder of the
// previous year, capped by the policy's max carry-forward.
func (s *Service) ProvisionBalances(ctx context.Context, req leave.ProvisionBalancesRequest) ([]leave.Balance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	policies, err := s.PolicyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	previous, err := s.BalanceRepository.GetByEmployeeYear(ctx, req.EmployeeID, req.Year-1)
	if err != nil {
		return nil, err
	}
	prevRemaining := make(map[leave.Type]int, len(previous))
	for _, b := range previous {
		prevRemaining[b.LeaveType] = b.Remaining
	}

	var created []leave.Balance
	err = s.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, p := range policies {
			allocated := p.AnnualQuota
			if p.CarryForwardAllowed {
				carry := prevRemaining[p.LeaveType]
				if p.MaxCarryForward != nil && carry > *p.MaxCarryForward {
					carry = *p.MaxCarryForward
				}
				allocated += carry
			}

			balance, err := s.BalanceRepository.Create(ctx, leave.Balance{
				EmployeeID:     req.EmployeeID,
				LeaveType:      p.LeaveType,
				Year:           req.Year,
				TotalAllocated: allocated,
				Used:           0,
				Remaining:      allocated,
			})
			if err != nil {
				return err
			}
			created = append(created, balance)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// notifyReviewers fans a new PENDING request out to every HR/Admin user.
// Best effort: a dispatch failure is logged, never surfaced to the caller.
func (s *Service) notifyReviewers(ctx context.Context, request leave.Request) {
	reviewers, err := s.userRepo.ListReviewers(ctx)
	if err != nil {
		s.logger.Warn("failed to resolve reviewers for notification", "request_id", request.ID, "error", err)
		return
	}

	applicant, err := s.userRepo.GetByID(ctx, request.EmployeeID)
	applicantName := request.EmployeeID
	if err != nil {
		s.logger.Warn("failed to resolve applicant for notification", "request_id", request.ID, "error", err)
	} else {
		applicantName = applicant.FullName()
	}

	events := make([]notification.Event, 0, len(reviewers))
	for _, reviewer := range reviewers {
		if reviewer.ID == request.EmployeeID {
			continue
		}
		events = append(events, notification.Event{
			RecipientID: reviewer.ID,
			SenderID:    &request.EmployeeID,
			Type:        notification.TypeLeaveRequest,
			Title:       "New Leave Request",
			Message:     fmt.Sprintf("%s requested %d day(s) of %s leave", applicantName, request.DaysRequested, request.LeaveType),
			Link:        "/admin/leaves",
		})
	}

	if err := s.dispatcher.QueueBulk(ctx, events); err != nil {
		s.logger.Warn("failed to queue reviewer notifications", "request_id", request.ID, "error", err)
	}
}

// notifyEmployee tells the requester the outcome of the review. Best effort.
func (s *Service) notifyEmployee(ctx context.Context, request leave.Request, reviewerID string) {
	notifType := notification.TypeLeaveApproved
	title := "Leave Request Approved"
	if request.Status == leave.StatusRejected {
		notifType = notification.TypeLeaveRejected
		title = "Leave Request Rejected"
	}

	event := notification.Event{
		RecipientID: request.EmployeeID,
		SenderID:    &reviewerID,
		Type:        notifType,
		Title:       title,
		Message: fmt.Sprintf("Your %s leave request for %s to %s has been %s",
			request.LeaveType,
			request.StartDate.Format("2006-01-02"),
			request.EndDate.Format("2006-01-02"),
			request.Status,
		),
		Link: "/leaves/history",
	}

	if err := s.dispatcher.Queue(ctx, event); err != nil {
		s.logger.Warn("failed to queue review notification", "request_id", request.ID, "error", err)
	}
}

func toResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewRequestResponse(r))
	}
	return responses
}
