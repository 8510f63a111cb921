package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"campus-hrms/internal/employee"
	"campus-hrms/internal/events"
	"campus-hrms/internal/messaging/kafka"
	payrollerrors "campus-hrms/internal/payroll/errors"
	"campus-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	listCap = 1000

	// Statutory EPF contribution rate, fixed policy, not configurable.
	epfRate = 0.12
)

type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error)
	Search(ctx context.Context, q PayrollQuery) ([]PayrollResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outboxRepo   kafka.OutboxRepository
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		outboxRepo:   outboxRepo,
	}
}

// Generate snapshots the employee's current compensation into a payroll record
// for the requested period. The employer EPF contribution is informational and
// not subtracted from net pay.
func (s *service) Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error) {
	logger := contextutil.GetLogger(ctx)

	emp, err := s.employeeRepo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayrollResponse{}, err
	}

	exists, err := s.repo.ExistsForPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return PayrollResponse{}, err
	}
	if exists {
		return PayrollResponse{}, payrollerrors.ErrAlreadyGenerated
	}

	allowances := emp.Allowances.Data()
	if allowances == nil {
		allowances = map[string]float64{}
	}

	epfEmployee := emp.BasicSalary * epfRate
	epfEmployer := emp.BasicSalary * epfRate

	totalAllowances := 0.0
	for _, v := range allowances {
		totalAllowances += v
	}

	grossSalary := emp.BasicSalary + totalAllowances
	netSalary := grossSalary - epfEmployee

	p := &Payroll{
		ID:          uuid.New(),
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: emp.BasicSalary,
		Allowances:  datatypes.NewJSONType(allowances),
		Deductions:  datatypes.NewJSONType(map[string]float64{"epf": epfEmployee}),
		EPFEmployee: epfEmployee,
		EPFEmployer: epfEmployer,
		GrossSalary: grossSalary,
		NetSalary:   netSalary,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	requestID := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.PayrollGeneratedEvent{
		EventType:  "payroll_generated",
		RequestID:  requestID,
		PayrollID:  p.ID.String(),
		EmployeeID: p.EmployeeID,
		Month:      p.Month,
		Year:       p.Year,
		NetSalary:  p.NetSalary,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return PayrollResponse{}, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "payroll",
		AggregateID:   p.ID.String(),
		EventType:     "payroll_generated",
		Topic:         events.PayrollGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return PayrollResponse{}, err
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	logger.Info("payroll generated",
		zap.String("employee_id", p.EmployeeID),
		zap.String("month", p.Month),
		zap.Int("year", p.Year),
		zap.Float64("net_salary", p.NetSalary),
	)

	return toPayrollResponse(p), nil
}

func (s *service) Search(ctx context.Context, q PayrollQuery) ([]PayrollResponse, error) {
	rows, err := s.repo.Search(ctx, q, listCap)
	if err != nil {
		return nil, err
	}

	out := make([]PayrollResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toPayrollResponse(&rows[i]))
	}
	return out, nil
}

func toPayrollResponse(p *Payroll) PayrollResponse {
	return PayrollResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID,
		Month:       p.Month,
		Year:        p.Year,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances.Data(),
		Deductions:  p.Deductions.Data(),
		EPFEmployee: p.EPFEmployee,
		EPFEmployer: p.EPFEmployer,
		GrossSalary: p.GrossSalary,
		NetSalary:   p.NetSalary,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
