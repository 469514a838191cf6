package leave

import "time"

// Type is the category of absence. Each type has its own policy row and its
// own per-year balance ledger.
type Type string

const (
	TypePaid      Type = "PAID"
	TypeSick      Type = "SICK"
	TypeCasual    Type = "CASUAL"
	TypeUnpaid    Type = "UNPAID"
	TypeMaternity Type = "MATERNITY"
	TypePaternity Type = "PATERNITY"
)

// Valid reports whether t is a known leave type.
func (t Type) Valid() bool {
	switch t {
	case TypePaid, TypeSick, TypeCasual, TypeUnpaid, TypeMaternity, TypePaternity:
		return true
	}
	return false
}

// RequestStatus is the lifecycle state of a leave request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are permitted out of s.
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// Policy is per-type reference data. Immutable during a leave cycle; the
// engine reads it to seed balances and to surface metadata on balance
// queries. Documentation enforcement beyond the flag is out of scope.
type Policy struct {
	LeaveType             Type
	Description           *string
	AnnualQuota           int
	CarryForwardAllowed   bool
	MaxCarryForward       *int
	RequiresDocumentation bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Balance is the per (employee, leave type, year) ledger row.
//
// Invariants, maintained exclusively by the engine's approval step:
//
//	Remaining >= 0
//	Used + Remaining == TotalAllocated
type Balance struct {
	ID             string
	EmployeeID     string
	LeaveType      Type
	Year           int
	TotalAllocated int
	Used           int
	Remaining      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Request is one leave application. Created PENDING; a reviewer moves it to
// APPROVED or REJECTED, or the requester cancels it while still PENDING.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  Type

	// Inclusive calendar dates, StartDate <= EndDate.
	StartDate time.Time
	EndDate   time.Time

	// DaysRequested counts only the weekdays in [StartDate, EndDate].
	DaysRequested int

	Reason string
	Status RequestStatus

	ReviewedByID     *string
	ReviewedAt       *time.Time
	ReviewerComments *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	EmployeeName *string
}

// BalanceYear returns the ledger year this request draws from. Derived from
// the start date at apply time AND at approval time, so a request reviewed
// after a year boundary still debits the year it was validated against.
func (r Request) BalanceYear() int {
	return r.StartDate.Year()
}
