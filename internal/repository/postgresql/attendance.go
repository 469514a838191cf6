package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// MarkLeaveDay implements attendance.Repository. The upsert overwrites any
// existing marking for the day, including check-in data entered before the
// leave was approved.
func (r *attendanceRepositoryImpl) MarkLeaveDay(ctx context.Context, employeeID string, date time.Time, notes string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, status, notes, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, NOW(), NOW()
		)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			check_in = NULL,
			check_out = NULL,
			work_hours = NULL,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, employeeID, date, attendance.StatusLeave, notes)
	if err != nil {
		return fmt.Errorf("failed to mark leave day: %w", err)
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, work_hours,
			   status, notes, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.WorkHours,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

// ListByEmployeeRange implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, work_hours,
			   status, notes, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.WorkHours,
			&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
