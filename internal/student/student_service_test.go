package student

import (
	"context"
	"testing"

	studenterrors "campus-hrms/internal/student/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeStudentRepo struct {
	byNumber map[string]*Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byNumber: map[string]*Student{}}
}

func (f *fakeStudentRepo) Create(ctx context.Context, s *Student) error {
	f.byNumber[s.StudentID] = s
	return nil
}

func (f *fakeStudentRepo) FindAll(ctx context.Context, limit int) ([]Student, error) {
	out := make([]Student, 0, len(f.byNumber))
	for _, s := range f.byNumber {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStudentRepo) FindByStudentID(ctx context.Context, studentID string) (*Student, error) {
	if s, ok := f.byNumber[studentID]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStudentRepo) Update(ctx context.Context, s *Student) error {
	f.byNumber[s.StudentID] = s
	return nil
}

func (f *fakeStudentRepo) DeleteByStudentID(ctx context.Context, studentID string) error {
	if _, ok := f.byNumber[studentID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byNumber, studentID)
	return nil
}

func validStudentRequest() CreateStudentRequest {
	return CreateStudentRequest{
		StudentID: "STU-2024-001",
		Name:      "Meera Nair",
		Email:     "meera@campus.edu",
		Phone:     "7777777777",
		Course:    "B.Sc Physics",
		Year:      2,
		Semester:  4,
	}
}

func TestCreateStudent(t *testing.T) {
	t.Run("stores and echoes the record", func(t *testing.T) {
		svc := NewService(newFakeStudentRepo())

		resp, err := svc.Create(context.Background(), validStudentRequest())
		assert.NoError(t, err)
		assert.Equal(t, "STU-2024-001", resp.StudentID)
		assert.Equal(t, 4, resp.Semester)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("conflict on duplicate student_id", func(t *testing.T) {
		svc := NewService(newFakeStudentRepo())

		_, err := svc.Create(context.Background(), validStudentRequest())
		assert.NoError(t, err)

		_, err = svc.Create(context.Background(), validStudentRequest())
		assert.ErrorIs(t, err, studenterrors.ErrStudentIDAlreadyExists)
	})
}

func TestUpdateStudent(t *testing.T) {
	t.Run("full replace keeps the natural key", func(t *testing.T) {
		repo := newFakeStudentRepo()
		svc := NewService(repo)

		_, err := svc.Create(context.Background(), validStudentRequest())
		assert.NoError(t, err)

		resp, err := svc.Update(context.Background(), "STU-2024-001", UpdateStudentRequest{
			Name:     "Meera Nair",
			Email:    "meera.nair@campus.edu",
			Phone:    "7777777777",
			Course:   "M.Sc Physics",
			Year:     1,
			Semester: 1,
		})
		assert.NoError(t, err)
		assert.Equal(t, "STU-2024-001", resp.StudentID)
		assert.Equal(t, "M.Sc Physics", resp.Course)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeStudentRepo())

		_, err := svc.Update(context.Background(), "STU-MISSING", UpdateStudentRequest{
			Name: "X", Email: "x@campus.edu", Phone: "1", Course: "C", Year: 1, Semester: 1,
		})
		assert.ErrorIs(t, err, studenterrors.ErrStudentNotFound)
	})
}

func TestDeleteStudent(t *testing.T) {
	svc := NewService(newFakeStudentRepo())

	_, err := svc.Create(context.Background(), validStudentRequest())
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), "STU-2024-001"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "STU-2024-001"), studenterrors.ErrStudentNotFound)
}
