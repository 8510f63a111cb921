package student

import (
	"context"
	"errors"
	"time"

	"campus-hrms/internal/shared/contextutil"
	studenterrors "campus-hrms/internal/student/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const listCap = 1000

type Service interface {
	Create(ctx context.Context, req CreateStudentRequest) (StudentResponse, error)
	GetAll(ctx context.Context) ([]StudentResponse, error)
	GetByStudentID(ctx context.Context, studentID string) (StudentResponse, error)
	Update(ctx context.Context, studentID string, req UpdateStudentRequest) (StudentResponse, error)
	Delete(ctx context.Context, studentID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateStudentRequest) (StudentResponse, error) {
	if existing, err := s.repo.FindByStudentID(ctx, req.StudentID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return StudentResponse{}, err
	} else if existing != nil {
		return StudentResponse{}, studenterrors.ErrStudentIDAlreadyExists
	}

	st := &Student{
		ID:        uuid.New(),
		StudentID: req.StudentID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Course:    req.Course,
		Year:      req.Year,
		Semester:  req.Semester,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx).Info("student created", zap.String("student_id", st.StudentID))

	return toStudentResponse(st), nil
}

func (s *service) GetAll(ctx context.Context) ([]StudentResponse, error) {
	rows, err := s.repo.FindAll(ctx, listCap)
	if err != nil {
		return nil, err
	}

	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toStudentResponse(&rows[i]))
	}
	return out, nil
}

func (s *service) GetByStudentID(ctx context.Context, studentID string) (StudentResponse, error) {
	st, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}
	return toStudentResponse(st), nil
}

func (s *service) Update(ctx context.Context, studentID string, req UpdateStudentRequest) (StudentResponse, error) {
	st, err := s.repo.FindByStudentID(ctx, studentID)
	if err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}

	st.Name = req.Name
	st.Email = req.Email
	st.Phone = req.Phone
	st.Course = req.Course
	st.Year = req.Year
	st.Semester = req.Semester

	if err := s.repo.Update(ctx, st); err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}

	return toStudentResponse(st), nil
}

func (s *service) Delete(ctx context.Context, studentID string) error {
	if err := s.repo.DeleteByStudentID(ctx, studentID); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx).Info("student deleted", zap.String("student_id", studentID))
	return nil
}

func toStudentResponse(st *Student) StudentResponse {
	return StudentResponse{
		ID:        st.ID.String(),
		StudentID: st.StudentID,
		Name:      st.Name,
		Email:     st.Email,
		Phone:     st.Phone,
		Course:    st.Course,
		Year:      st.Year,
		Semester:  st.Semester,
		CreatedAt: st.CreatedAt.UTC().Format(time.RFC3339),
	}
}
