package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, limit int) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds the repository to an in-flight transaction so writes commit
// together with outbox rows.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, limit int) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Order("employee_id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Select("id", "employee_id", "name").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "employee_id = ?", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "employee_id = ?", employeeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
