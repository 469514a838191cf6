package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
	lr.days_requested, lr.reason, lr.status,
	lr.reviewed_by, lr.reviewed_at, lr.reviewer_comments,
	lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var r leave.Request
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.LeaveType, &r.StartDate, &r.EndDate,
		&r.DaysRequested, &r.Reason, &r.Status,
		&r.ReviewedByID, &r.ReviewedAt, &r.ReviewerComments,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

// LockEmployee implements leave.RequestRepository. The advisory lock is
// transaction scoped, so it releases on commit or rollback without a
// matching unlock call.
func (repo *leaveRequestRepositoryImpl) LockEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, repo.db)

	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to lock employee requests: %w", err)
	}

	return nil
}

// Create implements leave.RequestRepository.
func (repo *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date,
			days_requested, reason, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, $7, NOW(), NOW()
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate,
		request.DaysRequested, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.RequestRepository.
func (repo *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests lr WHERE lr.id = $1`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return request, nil
}

// GetByIDForUpdate locks the row until the surrounding transaction ends, so
// two reviewers racing on the same request serialize here.
func (repo *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, repo.db)

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests lr WHERE lr.id = $1 FOR UPDATE`

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, err
	}

	return request, nil
}

// HasOverlapping implements leave.RequestRepository. Two inclusive ranges
// intersect when each starts on or before the other ends.
func (repo *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'APPROVED')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping requests: %w", err)
	}

	return exists, nil
}

// ListByEmployee implements leave.RequestRepository.
func (repo *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.MyRequestFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, repo.db)

	conditions := []string{"lr.employee_id = $1"}
	args := []interface{}{employeeID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM lr.start_date) = $%d", len(args)))
	}

	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows, false)
}

// List implements leave.RequestRepository. Joins the employee name for
// reviewer-facing listings.
func (repo *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, repo.db)

	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("lr.start_date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("lr.end_date <= $%d", len(args)))
	}

	query := `SELECT ` + leaveRequestColumns + `,
			u.first_name || ' ' || u.last_name AS employee_name
		FROM leave_requests lr
		JOIN users u ON u.id = lr.employee_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows, true)
}

func collectLeaveRequests(rows pgx.Rows, withEmployeeName bool) ([]leave.Request, error) {
	requests := make([]leave.Request, 0)
	for rows.Next() {
		var r leave.Request
		dest := []interface{}{
			&r.ID, &r.EmployeeID, &r.LeaveType, &r.StartDate, &r.EndDate,
			&r.DaysRequested, &r.Reason, &r.Status,
			&r.ReviewedByID, &r.ReviewedAt, &r.ReviewerComments,
			&r.CreatedAt, &r.UpdatedAt,
		}
		if withEmployeeName {
			dest = append(dest, &r.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// UpdateReview implements leave.RequestRepository.
func (repo *leaveRequestRepositoryImpl) UpdateReview(ctx context.Context, id string, status leave.RequestStatus, reviewerID string, reviewedAt time.Time, comments *string) error {
	q := GetQuerier(ctx, repo.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			reviewed_by = $2,
			reviewed_at = $3,
			reviewer_comments = $4,
			updated_at = NOW()
		WHERE id = $5
	`

	result, err := q.Exec(ctx, query, status, reviewerID, reviewedAt, comments, id)
	if err != nil {
		return fmt.Errorf("failed to update leave request review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

// UpdateStatus implements leave.RequestRepository.
func (repo *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus) error {
	q := GetQuerier(ctx, repo.db)

	query := `
		UPDATE leave_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}
