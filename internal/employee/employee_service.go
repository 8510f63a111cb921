package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	employeeerrors "campus-hrms/internal/employee/errors"
	"campus-hrms/internal/events"
	"campus-hrms/internal/messaging/kafka"
	"campus-hrms/internal/shared/contextutil"
	"campus-hrms/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	listCap          = 1000
	optionsCacheKey  = "employees:options"
	optionsCacheTTL  = time.Hour
	counterTypeEmpNo = "employee_number"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	counterRepo counter.Repository
	outboxRepo  kafka.OutboxRepository
	rdb         *redis.Client
	sf          singleflight.Group
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
) Service {
	return &service{
		db:          db,
		repo:        repo,
		counterRepo: counterRepo,
		outboxRepo:  outboxRepo,
		rdb:         rdb,
		logger:      zap.L().Named("employee_service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	logger := contextutil.GetLogger(ctx)

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	employeeID := req.EmployeeID
	if employeeID == "" {
		next, err := s.counterRepo.GetNextValue(ctx, counterTypeEmpNo)
		if err != nil {
			logger.Error("failed to mint employee number", zap.Error(err))
			return EmployeeResponse{}, err
		}
		employeeID = fmt.Sprintf("EMP-%06d", next)
	}

	if existing, err := s.repo.FindByEmployeeID(ctx, employeeID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return EmployeeResponse{}, err
	} else if existing != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeIDAlreadyExists
	}

	allowances := req.Allowances
	if allowances == nil {
		allowances = map[string]float64{}
	}

	e := &Employee{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Designation:  req.Designation,
		EmployeeType: req.EmployeeType,
		JoiningDate:  joiningDate,
		BasicSalary:  req.BasicSalary,
		CTC:          req.CTC,
		Allowances:   datatypes.NewJSONType(allowances),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	requestID := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  requestID,
		EmployeeID: e.EmployeeID,
		Department: e.Department,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "employee",
		AggregateID:   e.EmployeeID,
		EventType:     "employee_created",
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return EmployeeResponse{}, err
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	logger.Info("employee created",
		zap.String("employee_id", e.EmployeeID),
		zap.String("department", e.Department),
	)

	return toEmployeeResponse(e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx, listCap)
	if err != nil {
		return nil, err
	}

	out := make([]EmployeeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toEmployeeResponse(&rows[i]))
	}
	return out, nil
}

// GetOptions serves the slim picker projection from Redis, falling back to the
// database behind a singleflight gate so concurrent misses hit it once.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, optionsCacheKey).Result()
		if err == nil {
			var options []EmployeeOption
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return options, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("options cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(optionsCacheKey, func() (any, error) {
		rows, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, err
		}

		options := make([]EmployeeOption, 0, len(rows))
		for i := range rows {
			options = append(options, EmployeeOption{
				EmployeeID: rows[i].EmployeeID,
				Name:       rows[i].Name,
			})
		}

		if s.rdb != nil {
			if data, err := json.Marshal(options); err == nil {
				if err := s.rdb.Set(ctx, optionsCacheKey, data, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("options cache write failed", zap.Error(err))
				}
			}
		}

		return options, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	e, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return toEmployeeResponse(e), nil
}

func (s *service) Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	allowances := req.Allowances
	if allowances == nil {
		allowances = map[string]float64{}
	}

	e.Name = req.Name
	e.Email = req.Email
	e.Phone = req.Phone
	e.Department = req.Department
	e.Designation = req.Designation
	e.EmployeeType = req.EmployeeType
	e.JoiningDate = joiningDate
	e.BasicSalary = req.BasicSalary
	e.CTC = req.CTC
	e.Allowances = datatypes.NewJSONType(allowances)

	if err := s.repo.Update(ctx, e); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	contextutil.GetLogger(ctx).Info("employee updated", zap.String("employee_id", employeeID))

	return toEmployeeResponse(e), nil
}

func (s *service) Delete(ctx context.Context, employeeID string) error {
	if err := s.repo.DeleteByEmployeeID(ctx, employeeID); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)

	contextutil.GetLogger(ctx).Info("employee deleted", zap.String("employee_id", employeeID))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, optionsCacheKey).Err(); err != nil {
		s.logger.Warn("options cache invalidation failed", zap.Error(err))
	}
}

func toEmployeeResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID.String(),
		EmployeeID:   e.EmployeeID,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Designation:  e.Designation,
		EmployeeType: e.EmployeeType,
		JoiningDate:  e.JoiningDate.Format("2006-01-02"),
		BasicSalary:  e.BasicSalary,
		CTC:          e.CTC,
		Allowances:   e.Allowances.Data(),
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
