package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// Create implements leave.BalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.Balance) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (
			id, employee_id, leave_type, year,
			total_allocated, used, remaining,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6,
			NOW(), NOW()
		)
		ON CONFLICT (employee_id, leave_type, year) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.EmployeeID, balance.LeaveType, balance.Year,
		balance.TotalAllocated, balance.Used, balance.Remaining,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, leave.ErrBalanceExists
		}
		return leave.Balance{}, err
	}

	return balance, nil
}

// GetByEmployeeTypeYear implements leave.BalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeTypeYear(ctx context.Context, employeeID string, leaveType leave.Type, year int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, year,
			   total_allocated, used, remaining,
			   created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type = $2 AND year = $3
	`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, leaveType, year).Scan(
		&b.ID, &b.EmployeeID, &b.LeaveType, &b.Year,
		&b.TotalAllocated, &b.Used, &b.Remaining,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, err
	}

	return b, nil
}

// GetByEmployeeYear implements leave.BalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, year,
			   total_allocated, used, remaining,
			   created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make([]leave.Balance, 0)
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.LeaveType, &b.Year,
			&b.TotalAllocated, &b.Used, &b.Remaining,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

// ApplyUsage implements leave.BalanceRepository.
//
// The guard clause makes the decrement refuse rather than go negative, and
// the row write serializes concurrent approvals on the same balance: the
// second transaction blocks on the row lock, re-evaluates the guard after
// the first commits, and reports the integrity fault if the days are gone.
func (r *leaveBalanceRepositoryImpl) ApplyUsage(ctx context.Context, balanceID string, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET used = used + $1,
			remaining = remaining - $1,
			updated_at = NOW()
		WHERE id = $2
		  AND remaining >= $1
	`

	result, err := q.Exec(ctx, query, days, balanceID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return leave.ErrBalanceIntegrity
	}

	return nil
}
