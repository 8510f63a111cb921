package dashboard

import (
	"context"

	"campus-hrms/internal/attendance"
	"campus-hrms/internal/employee"
	"campus-hrms/internal/payroll"
	"campus-hrms/internal/student"

	"gorm.io/gorm"
)

type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountEmployeesByType(ctx context.Context, employeeType string) (int64, error)
	CountStudents(ctx context.Context) (int64, error)
	CountPresentOn(ctx context.Context, date string) (int64, error)
	SumNetSalary(ctx context.Context, month string, year int) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&employee.Employee{}).Count(&count).Error
	return count, err
}

func (r *repository) CountEmployeesByType(ctx context.Context, employeeType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employee.Employee{}).
		Where("employee_type = ?", employeeType).
		Count(&count).Error
	return count, err
}

func (r *repository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&student.Student{}).Count(&count).Error
	return count, err
}

func (r *repository) CountPresentOn(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&attendance.Attendance{}).
		Where("date = ? AND status = ?", date, attendance.StatusPresent).
		Count(&count).Error
	return count, err
}

func (r *repository) SumNetSalary(ctx context.Context, month string, year int) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&payroll.Payroll{}).
		Where("month = ? AND year = ?", month, year).
		Select("COALESCE(SUM(net_salary), 0)").
		Scan(&total).Error
	return total, err
}
