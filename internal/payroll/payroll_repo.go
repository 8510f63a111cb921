package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	ExistsForPeriod(ctx context.Context, employeeID, month string, year int) (bool, error)
	Search(ctx context.Context, q PayrollQuery, limit int) ([]Payroll, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID, month string, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Search(ctx context.Context, q PayrollQuery, limit int) ([]Payroll, error) {
	db := r.db.WithContext(ctx)
	if q.EmployeeID != "" {
		db = db.Where("employee_id = ?", q.EmployeeID)
	}
	if q.Month != "" {
		db = db.Where("month = ?", q.Month)
	}
	if q.Year != 0 {
		db = db.Where("year = ?", q.Year)
	}

	var rows []Payroll
	err := db.Order("year DESC, month ASC, employee_id ASC").Limit(limit).Find(&rows).Error
	return rows, err
}
