package attendance

import (
	"context"
	"time"

	"github.com/peoplehr/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/clock"
)

// Service implements attendance.Service over the attendances ledger.
type Service struct {
	repo  attendance.Repository
	clock clock.Clock
}

func NewService(repo attendance.Repository, clk clock.Clock) *Service {
	return &Service{repo: repo, clock: clk}
}

// MyAttendance implements attendance.Service. Without explicit bounds the
// window is the first of the current month through today.
func (s *Service) MyAttendance(ctx context.Context, employeeID string, from, to *time.Time) ([]attendance.AttendanceResponse, error) {
	now := s.clock.Now().UTC()

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	if start.After(end) {
		return nil, attendance.ErrInvalidPeriod
	}

	rows, err := s.repo.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, attendance.NewAttendanceResponse(row))
	}

	return responses, nil
}
