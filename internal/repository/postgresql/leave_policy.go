package postgresql

import (
	"context"

	"github.com/peoplehr/hrms-backend-go/internal/domain/leave"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/database"
)

type leavePolicyRepositoryImpl struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) leave.PolicyRepository {
	return &leavePolicyRepositoryImpl{db: db}
}

// List implements leave.PolicyRepository.
func (r *leavePolicyRepositoryImpl) List(ctx context.Context) ([]leave.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, description, annual_quota, carry_forward_allowed,
			   max_carry_forward, requires_documentation, created_at, updated_at
		FROM leave_policies
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := make([]leave.Policy, 0)
	for rows.Next() {
		var p leave.Policy
		if err := rows.Scan(
			&p.LeaveType, &p.Description, &p.AnnualQuota, &p.CarryForwardAllowed,
			&p.MaxCarryForward, &p.RequiresDocumentation, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}
