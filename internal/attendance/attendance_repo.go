package attendance

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	Save(ctx context.Context, a *Attendance) error
	FindByPersonAndDate(ctx context.Context, personID, date string) (*Attendance, error)
	Search(ctx context.Context, q AttendanceQuery, limit int) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Save(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindByPersonAndDate(ctx context.Context, personID, date string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		First(&a, "person_id = ? AND date = ?", personID, date).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Search(ctx context.Context, q AttendanceQuery, limit int) ([]Attendance, error) {
	db := r.db.WithContext(ctx)
	if q.PersonID != "" {
		db = db.Where("person_id = ?", q.PersonID)
	}
	if q.PersonType != "" {
		db = db.Where("person_type = ?", q.PersonType)
	}
	if q.Date != "" {
		db = db.Where("date = ?", q.Date)
	}

	var rows []Attendance
	err := db.Order("date DESC, person_id ASC").Limit(limit).Find(&rows).Error
	return rows, err
}
