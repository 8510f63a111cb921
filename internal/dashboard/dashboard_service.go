package dashboard

import (
	"context"
	"time"

	"campus-hrms/internal/employee"
)

type Service interface {
	GetStats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetStats recomputes every figure on each call. "Today" and the payroll
// period both follow the server clock in UTC; the payroll month is matched by
// its English name ("January") as stored at generation time.
func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	var stats StatsResponse
	var err error

	if stats.TotalEmployees, err = s.repo.CountEmployees(ctx); err != nil {
		return StatsResponse{}, err
	}
	if stats.TotalStudents, err = s.repo.CountStudents(ctx); err != nil {
		return StatsResponse{}, err
	}
	if stats.TotalFaculty, err = s.repo.CountEmployeesByType(ctx, employee.TypeFaculty); err != nil {
		return StatsResponse{}, err
	}
	if stats.TotalManagement, err = s.repo.CountEmployeesByType(ctx, employee.TypeManagement); err != nil {
		return StatsResponse{}, err
	}

	now := time.Now().UTC()

	if stats.TodayAttendance, err = s.repo.CountPresentOn(ctx, now.Format("2006-01-02")); err != nil {
		return StatsResponse{}, err
	}
	if stats.MonthlyPayroll, err = s.repo.SumNetSalary(ctx, now.Month().String(), now.Year()); err != nil {
		return StatsResponse{}, err
	}

	return stats, nil
}
