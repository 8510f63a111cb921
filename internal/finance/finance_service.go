package finance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"campus-hrms/internal/events"
	financeerrors "campus-hrms/internal/finance/errors"
	"campus-hrms/internal/messaging/kafka"
	"campus-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const listCap = 1000

type Service interface {
	CreateBudget(ctx context.Context, req CreateBudgetRequest) (BudgetResponse, error)
	ListBudgets(ctx context.Context, fiscalYear string) ([]BudgetResponse, error)
	UpdateBudget(ctx context.Context, id string, req UpdateBudgetRequest) (BudgetResponse, error)
	CreateTransaction(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	ListTransactions(ctx context.Context, q TransactionQuery) ([]TransactionResponse, error)
}

type service struct {
	db              *sql.DB
	budgetRepo      BudgetRepository
	transactionRepo TransactionRepository
	outboxRepo      kafka.OutboxRepository
}

func NewService(
	db *sql.DB,
	budgetRepo BudgetRepository,
	transactionRepo TransactionRepository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:              db,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		outboxRepo:      outboxRepo,
	}
}

// CreateBudget inserts unconditionally; duplicate (fiscal_year, category)
// pairs are allowed.
func (s *service) CreateBudget(ctx context.Context, req CreateBudgetRequest) (BudgetResponse, error) {
	b := &Budget{
		ID:              uuid.New(),
		FiscalYear:      req.FiscalYear,
		Category:        req.Category,
		AllocatedAmount: req.AllocatedAmount,
		SpentAmount:     0,
		Description:     req.Description,
	}

	if err := s.budgetRepo.Create(ctx, b); err != nil {
		return BudgetResponse{}, err
	}

	contextutil.GetLogger(ctx).Info("budget created",
		zap.String("fiscal_year", b.FiscalYear),
		zap.String("category", b.Category),
	)

	return toBudgetResponse(b), nil
}

func (s *service) ListBudgets(ctx context.Context, fiscalYear string) ([]BudgetResponse, error) {
	rows, err := s.budgetRepo.FindAll(ctx, fiscalYear, listCap)
	if err != nil {
		return nil, err
	}

	out := make([]BudgetResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toBudgetResponse(&rows[i]))
	}
	return out, nil
}

// UpdateBudget treats a malformed id like any other miss; the lookup keys on
// the id alone, so an unparseable value can never match a stored budget.
func (s *service) UpdateBudget(ctx context.Context, id string, req UpdateBudgetRequest) (BudgetResponse, error) {
	budgetID, err := uuid.Parse(id)
	if err != nil {
		return BudgetResponse{}, financeerrors.ErrBudgetNotFound
	}

	b, err := s.budgetRepo.FindByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BudgetResponse{}, financeerrors.ErrBudgetNotFound
		}
		return BudgetResponse{}, err
	}

	b.FiscalYear = req.FiscalYear
	b.Category = req.Category
	b.AllocatedAmount = req.AllocatedAmount
	b.Description = req.Description

	if err := s.budgetRepo.Update(ctx, b); err != nil {
		return BudgetResponse{}, err
	}

	return toBudgetResponse(b), nil
}

// CreateTransaction stores the ledger row, then applies the debit cascade
// outside the transaction: the increment is best-effort and its failure does
// not roll back the already-committed ledger entry.
func (s *service) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error) {
	logger := contextutil.GetLogger(ctx)

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = contextutil.GetUserID(ctx)
	}

	t := &Transaction{
		ID:              uuid.New(),
		TransactionDate: req.TransactionDate,
		Category:        req.Category,
		Amount:          req.Amount,
		Type:            req.Type,
		Description:     req.Description,
		CreatedBy:       createdBy,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TransactionResponse{}, err
	}
	defer tx.Rollback()

	if err := s.transactionRepo.WithTx(tx).Create(ctx, t); err != nil {
		return TransactionResponse{}, err
	}

	requestID := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.TransactionRecordedEvent{
		EventType:     "transaction_recorded",
		RequestID:     requestID,
		TransactionID: t.ID.String(),
		Category:      t.Category,
		Type:          t.Type,
		Amount:        t.Amount,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return TransactionResponse{}, err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "transaction",
		AggregateID:   t.ID.String(),
		EventType:     "transaction_recorded",
		Topic:         events.TransactionRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return TransactionResponse{}, err
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return TransactionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TransactionResponse{}, err
	}

	if t.Type == TypeDebit {
		matched, err := s.budgetRepo.IncrementSpent(ctx, t.Category, t.Amount)
		if err != nil {
			logger.Warn("budget increment failed after ledger commit",
				zap.String("transaction_id", t.ID.String()),
				zap.String("category", t.Category),
				zap.Error(err),
			)
		} else {
			logger.Info("transaction recorded",
				zap.String("transaction_id", t.ID.String()),
				zap.String("category", t.Category),
				zap.Int64("budgets_incremented", matched),
			)
		}
	}

	return toTransactionResponse(t), nil
}

func (s *service) ListTransactions(ctx context.Context, q TransactionQuery) ([]TransactionResponse, error) {
	rows, err := s.transactionRepo.Search(ctx, q, listCap)
	if err != nil {
		return nil, err
	}

	out := make([]TransactionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toTransactionResponse(&rows[i]))
	}
	return out, nil
}

func toBudgetResponse(b *Budget) BudgetResponse {
	return BudgetResponse{
		ID:              b.ID.String(),
		FiscalYear:      b.FiscalYear,
		Category:        b.Category,
		AllocatedAmount: b.AllocatedAmount,
		SpentAmount:     b.SpentAmount,
		Description:     b.Description,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toTransactionResponse(t *Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID.String(),
		TransactionDate: t.TransactionDate,
		Category:        t.Category,
		Amount:          t.Amount,
		Type:            t.Type,
		Description:     t.Description,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
