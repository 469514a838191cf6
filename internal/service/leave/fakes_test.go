package leave

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/domain/notification"
	"github.com/peoplehr/hrms-backend-go/internal/domain/user"
)

// passthroughTx runs the unit of work without transactional semantics. The
// in-memory repositories are mutated directly, which is enough for exercising
// the engine's decision logic.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePolicyRepo struct {
	policies []leave.Policy
}

func (f *fakePolicyRepo) List(ctx context.Context) ([]leave.Policy, error) {
	return f.policies, nil
}

type fakeBalanceRepo struct {
	mu       sync.Mutex
	balances map[string]*leave.Balance
	nextID   int
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[string]*leave.Balance)}
}

func (f *fakeBalanceRepo) add(employeeID string, leaveType leave.Type, year, allocated, used int) *leave.Balance {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	b := &leave.Balance{
		ID:             fmt.Sprintf("bal-%d", f.nextID),
		EmployeeID:     employeeID,
		LeaveType:      leaveType,
		Year:           year,
		TotalAllocated: allocated,
		Used:           used,
		Remaining:      allocated - used,
	}
	f.balances[b.ID] = b
	return b
}

func (f *fakeBalanceRepo) Create(ctx context.Context, balance leave.Balance) (leave.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.balances {
		if b.EmployeeID == balance.EmployeeID && b.LeaveType == balance.LeaveType && b.Year == balance.Year {
			return leave.Balance{}, leave.ErrBalanceExists
		}
	}
	f.nextID++
	balance.ID = fmt.Sprintf("bal-%d", f.nextID)
	stored := balance
	f.balances[balance.ID] = &stored
	return balance, nil
}

func (f *fakeBalanceRepo) GetByEmployeeTypeYear(ctx context.Context, employeeID string, leaveType leave.Type, year int) (leave.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.balances {
		if b.EmployeeID == employeeID && b.LeaveType == leaveType && b.Year == year {
			return *b, nil
		}
	}
	return leave.Balance{}, leave.ErrBalanceNotFound
}

func (f *fakeBalanceRepo) GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.Balance
	for _, b := range f.balances {
		if b.EmployeeID == employeeID && b.Year == year {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) ApplyUsage(ctx context.Context, balanceID string, days int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.balances[balanceID]
	if !ok || b.Remaining < days {
		return leave.ErrBalanceIntegrity
	}
	b.Used += days
	b.Remaining -= days
	return nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*leave.Request
	nextID   int
	ops      []string
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*leave.Request)}
}

func (f *fakeRequestRepo) recordedOps() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ops...)
}

func (f *fakeRequestRepo) LockEmployee(ctx context.Context, employeeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "lock "+employeeID)
	return nil
}

func (f *fakeRequestRepo) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "create")
	f.nextID++
	request.ID = fmt.Sprintf("req-%d", f.nextID)
	request.CreatedAt = time.Now()
	stored := request
	f.requests[request.ID] = &stored
	return request, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return *r, nil
}

func (f *fakeRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.Request, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeRequestRepo) HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "overlap-check")
	for _, r := range f.requests {
		if r.EmployeeID != employeeID {
			continue
		}
		if r.Status != leave.StatusPending && r.Status != leave.StatusApproved {
			continue
		}
		if !r.StartDate.After(endDate) && !r.EndDate.Before(startDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRequestRepo) ListByEmployee(ctx context.Context, employeeID string, filter leave.MyRequestFilter) ([]leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.Request
	for _, r := range f.requests {
		if r.EmployeeID != employeeID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.Year != nil && r.StartDate.Year() != *filter.Year {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRequestRepo) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.Request
	for _, r := range f.requests {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.StartDate != nil && r.StartDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && r.EndDate.After(*filter.EndDate) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRequestRepo) UpdateReview(ctx context.Context, id string, status leave.RequestStatus, reviewerID string, reviewedAt time.Time, comments *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	r.Status = status
	r.ReviewedByID = &reviewerID
	r.ReviewedAt = &reviewedAt
	r.ReviewerComments = comments
	return nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	r.Status = status
	return nil
}

type fakeAttendanceRepo struct {
	mu   sync.Mutex
	rows map[string]attendance.Attendance // employeeID|date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{rows: make(map[string]attendance.Attendance)}
}

func attendanceKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) MarkLeaveDay(ctx context.Context, employeeID string, date time.Time, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[attendanceKey(employeeID, date)] = attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusLeave,
		Notes:      &notes,
	}
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.rows[attendanceKey(employeeID, date)]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, a := range f.rows {
		if a.EmployeeID == employeeID && !a.Date.Before(from) && !a.Date.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) add(u user.User) {
	f.users[u.ID] = u
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListReviewers(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.IsActive && (u.Role == user.RoleAdmin || u.Role == user.RoleHR) {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeDispatcher records queued events. When fail is set, every call errors
// so tests can verify dispatch failures never surface.
type fakeDispatcher struct {
	mu     sync.Mutex
	events []notification.Event
	fail   bool
}

var errDispatchDown = errors.New("dispatcher unavailable")

func (f *fakeDispatcher) Queue(ctx context.Context, event notification.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errDispatchDown
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeDispatcher) QueueBulk(ctx context.Context, events []notification.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errDispatchDown
	}
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeDispatcher) recorded() []notification.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notification.Event(nil), f.events...)
}
