package dashboard

import (
	"context"
	"testing"
	"time"

	"campus-hrms/internal/employee"

	"github.com/stretchr/testify/assert"
)

type fakeDashboardRepo struct {
	employees      int64
	students       int64
	byType         map[string]int64
	presentByDate  map[string]int64
	netSalarySums  map[string]float64
	lastSalaryArgs []any
}

func (f *fakeDashboardRepo) CountEmployees(ctx context.Context) (int64, error) {
	return f.employees, nil
}

func (f *fakeDashboardRepo) CountEmployeesByType(ctx context.Context, employeeType string) (int64, error) {
	return f.byType[employeeType], nil
}

func (f *fakeDashboardRepo) CountStudents(ctx context.Context) (int64, error) {
	return f.students, nil
}

func (f *fakeDashboardRepo) CountPresentOn(ctx context.Context, date string) (int64, error) {
	return f.presentByDate[date], nil
}

func (f *fakeDashboardRepo) SumNetSalary(ctx context.Context, month string, year int) (float64, error) {
	f.lastSalaryArgs = []any{month, year}
	return f.netSalarySums[month], nil
}

func TestGetStats(t *testing.T) {
	t.Run("empty store yields all zeros", func(t *testing.T) {
		repo := &fakeDashboardRepo{
			byType:        map[string]int64{},
			presentByDate: map[string]int64{},
			netSalarySums: map[string]float64{},
		}
		svc := NewService(repo)

		stats, err := svc.GetStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, StatsResponse{}, stats)
	})

	t.Run("aggregates the current period", func(t *testing.T) {
		now := time.Now().UTC()
		today := now.Format("2006-01-02")
		monthName := now.Month().String()

		repo := &fakeDashboardRepo{
			employees: 12,
			students:  240,
			byType: map[string]int64{
				employee.TypeFaculty:    9,
				employee.TypeManagement: 3,
			},
			presentByDate: map[string]int64{today: 180},
			netSalarySums: map[string]float64{monthName: 738000},
		}
		svc := NewService(repo)

		stats, err := svc.GetStats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(12), stats.TotalEmployees)
		assert.Equal(t, int64(240), stats.TotalStudents)
		assert.Equal(t, int64(9), stats.TotalFaculty)
		assert.Equal(t, int64(3), stats.TotalManagement)
		assert.Equal(t, int64(180), stats.TodayAttendance)
		assert.Equal(t, 738000.0, stats.MonthlyPayroll)

		// payroll period is matched by English month name and numeric year
		assert.Equal(t, []any{monthName, now.Year()}, repo.lastSalaryArgs)
	})
}
