package finance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	WithTx(tx *sql.Tx) TransactionRepository
	Create(ctx context.Context, t *Transaction) error
	Search(ctx context.Context, q TransactionQuery, limit int) ([]Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) WithTx(tx *sql.Tx) TransactionRepository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &transactionRepository{db: session}
}

func (r *transactionRepository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepository) Search(ctx context.Context, q TransactionQuery, limit int) ([]Transaction, error) {
	db := r.db.WithContext(ctx)
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Type != "" {
		db = db.Where("type = ?", q.Type)
	}

	var rows []Transaction
	err := db.Order("transaction_date DESC, created_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
