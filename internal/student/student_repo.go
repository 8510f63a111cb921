package student

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, s *Student) error
	FindAll(ctx context.Context, limit int) ([]Student, error)
	FindByStudentID(ctx context.Context, studentID string) (*Student, error)
	Update(ctx context.Context, s *Student) error
	DeleteByStudentID(ctx context.Context, studentID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Student) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindAll(ctx context.Context, limit int) ([]Student, error) {
	var rows []Student
	err := r.db.WithContext(ctx).
		Order("student_id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStudentID(ctx context.Context, studentID string) (*Student, error) {
	var s Student
	err := r.db.WithContext(ctx).First(&s, "student_id = ?", studentID).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Student) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) DeleteByStudentID(ctx context.Context, studentID string) error {
	res := r.db.WithContext(ctx).Delete(&Student{}, "student_id = ?", studentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
