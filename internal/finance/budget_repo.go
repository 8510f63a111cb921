package finance

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BudgetRepository interface {
	Create(ctx context.Context, b *Budget) error
	FindAll(ctx context.Context, fiscalYear string, limit int) ([]Budget, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	Update(ctx context.Context, b *Budget) error
	IncrementSpent(ctx context.Context, category string, amount float64) (int64, error)
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, b *Budget) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *budgetRepository) FindAll(ctx context.Context, fiscalYear string, limit int) ([]Budget, error) {
	db := r.db.WithContext(ctx)
	if fiscalYear != "" {
		db = db.Where("fiscal_year = ?", fiscalYear)
	}

	var rows []Budget
	err := db.Order("fiscal_year DESC, category ASC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	var b Budget
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update replaces the descriptive fields only; spent_amount is excluded so
// the ledger stays the single writer of that column.
func (r *budgetRepository) Update(ctx context.Context, b *Budget) error {
	return r.db.WithContext(ctx).
		Model(&Budget{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"fiscal_year":      b.FiscalYear,
			"category":         b.Category,
			"allocated_amount": b.AllocatedAmount,
			"description":      b.Description,
		}).Error
}

// IncrementSpent bumps every budget in the category; with duplicate budgets
// per category all matches receive the increment.
func (r *budgetRepository) IncrementSpent(ctx context.Context, category string, amount float64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Budget{}).
		Where("category = ?", category).
		Update("spent_amount", gorm.Expr("spent_amount + ?", amount))
	return res.RowsAffected, res.Error
}
