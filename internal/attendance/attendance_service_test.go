package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepo struct {
	rows []*Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *Attendance) error {
	f.rows = append(f.rows, a)
	return nil
}

func (f *fakeAttendanceRepo) Save(ctx context.Context, a *Attendance) error {
	for i, row := range f.rows {
		if row.ID == a.ID {
			f.rows[i] = a
			return nil
		}
	}
	f.rows = append(f.rows, a)
	return nil
}

func (f *fakeAttendanceRepo) FindByPersonAndDate(ctx context.Context, personID, date string) (*Attendance, error) {
	for _, row := range f.rows {
		if row.PersonID == personID && row.Date == date {
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Search(ctx context.Context, q AttendanceQuery, limit int) ([]Attendance, error) {
	var out []Attendance
	for _, row := range f.rows {
		if q.PersonID != "" && row.PersonID != q.PersonID {
			continue
		}
		if q.PersonType != "" && row.PersonType != q.PersonType {
			continue
		}
		if q.Date != "" && row.Date != q.Date {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func TestMarkAttendance(t *testing.T) {
	t.Run("creates a record on first mark", func(t *testing.T) {
		repo := &fakeAttendanceRepo{}
		svc := NewService(repo)

		resp, err := svc.Mark(context.Background(), MarkAttendanceRequest{
			PersonID:   "EMP-000001",
			PersonType: PersonTypeEmployee,
			Date:       "2026-08-30",
			Status:     StatusPresent,
			MarkedBy:   "hr@campus.edu",
		})

		assert.NoError(t, err)
		assert.Equal(t, StatusPresent, resp.Status)
		assert.Len(t, repo.rows, 1)
	})

	t.Run("second mark for the same person and date overwrites the first", func(t *testing.T) {
		repo := &fakeAttendanceRepo{}
		svc := NewService(repo)

		first, err := svc.Mark(context.Background(), MarkAttendanceRequest{
			PersonID:   "STU-2024-001",
			PersonType: PersonTypeStudent,
			Date:       "2026-08-30",
			Status:     StatusPresent,
		})
		assert.NoError(t, err)

		second, err := svc.Mark(context.Background(), MarkAttendanceRequest{
			PersonID:   "STU-2024-001",
			PersonType: PersonTypeStudent,
			Date:       "2026-08-30",
			Status:     StatusHalfDay,
			Remarks:    "left early",
		})
		assert.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, repo.rows, 1)
		assert.Equal(t, StatusHalfDay, repo.rows[0].Status)
		assert.Equal(t, "left early", repo.rows[0].Remarks)
	})

	t.Run("different dates produce separate records", func(t *testing.T) {
		repo := &fakeAttendanceRepo{}
		svc := NewService(repo)

		for _, date := range []string{"2026-08-29", "2026-08-30"} {
			_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
				PersonID:   "EMP-000001",
				PersonType: PersonTypeEmployee,
				Date:       date,
				Status:     StatusPresent,
			})
			assert.NoError(t, err)
		}

		assert.Len(t, repo.rows, 2)
	})
}

func TestSearchAttendance(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := NewService(repo)

	seed := []MarkAttendanceRequest{
		{PersonID: "EMP-000001", PersonType: PersonTypeEmployee, Date: "2026-08-30", Status: StatusPresent},
		{PersonID: "EMP-000002", PersonType: PersonTypeEmployee, Date: "2026-08-30", Status: StatusAbsent},
		{PersonID: "STU-2024-001", PersonType: PersonTypeStudent, Date: "2026-08-30", Status: StatusPresent},
	}
	for _, req := range seed {
		_, err := svc.Mark(context.Background(), req)
		assert.NoError(t, err)
	}

	t.Run("filters by person_type", func(t *testing.T) {
		rows, err := svc.Search(context.Background(), AttendanceQuery{PersonType: PersonTypeStudent})
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, "STU-2024-001", rows[0].PersonID)
	})

	t.Run("filters by person_id and date", func(t *testing.T) {
		rows, err := svc.Search(context.Background(), AttendanceQuery{
			PersonID: "EMP-000002", Date: "2026-08-30",
		})
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, StatusAbsent, rows[0].Status)
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		rows, err := svc.Search(context.Background(), AttendanceQuery{})
		assert.NoError(t, err)
		assert.Len(t, rows, 3)
	})
}
