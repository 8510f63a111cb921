package attendance

import (
	"context"
	"errors"
	"time"

	"campus-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const listCap = 1000

type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	Search(ctx context.Context, q AttendanceQuery) ([]AttendanceResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Mark upserts by (person_id, date): a second submission for the same key
// overwrites the first entirely, last write wins. The read and the write are
// separate statements with no transaction between them.
func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	existing, err := s.repo.FindByPersonAndDate(ctx, req.PersonID, req.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	if existing != nil {
		existing.PersonType = req.PersonType
		existing.Status = req.Status
		existing.Remarks = req.Remarks
		existing.MarkedBy = req.MarkedBy

		if err := s.repo.Save(ctx, existing); err != nil {
			return AttendanceResponse{}, err
		}

		contextutil.GetLogger(ctx).Info("attendance overwritten",
			zap.String("person_id", req.PersonID),
			zap.String("date", req.Date),
			zap.String("status", req.Status),
		)

		return toAttendanceResponse(existing), nil
	}

	a := &Attendance{
		ID:         uuid.New(),
		PersonID:   req.PersonID,
		PersonType: req.PersonType,
		Date:       req.Date,
		Status:     req.Status,
		Remarks:    req.Remarks,
		MarkedBy:   req.MarkedBy,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return AttendanceResponse{}, err
	}

	return toAttendanceResponse(a), nil
}

func (s *service) Search(ctx context.Context, q AttendanceQuery) ([]AttendanceResponse, error) {
	rows, err := s.repo.Search(ctx, q, listCap)
	if err != nil {
		return nil, err
	}

	out := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toAttendanceResponse(&rows[i]))
	}
	return out, nil
}

func toAttendanceResponse(a *Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID.String(),
		PersonID:   a.PersonID,
		PersonType: a.PersonType,
		Date:       a.Date,
		Status:     a.Status,
		Remarks:    a.Remarks,
		MarkedBy:   a.MarkedBy,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
