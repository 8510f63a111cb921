package finance

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// Budget has no uniqueness constraint on (fiscal_year, category): duplicates
// are permitted and a debit in a shared category increments every match.
type Budget struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	FiscalYear      string    `gorm:"column:fiscal_year;type:varchar(20);index;not null"`
	Category        string    `gorm:"column:category;type:varchar(100);index;not null"`
	AllocatedAmount float64   `gorm:"column:allocated_amount;not null"`
	SpentAmount     float64   `gorm:"column:spent_amount;not null"`
	Description     string    `gorm:"column:description;type:varchar(500)"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}

// Transaction rows are immutable once stored.
type Transaction struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	TransactionDate string    `gorm:"column:transaction_date;type:varchar(10);not null"`
	Category        string    `gorm:"column:category;type:varchar(100);index;not null"`
	Amount          float64   `gorm:"column:amount;not null"`
	Type            string    `gorm:"column:type;type:varchar(10);not null"`
	Description     string    `gorm:"column:description;type:varchar(500)"`
	CreatedBy       string    `gorm:"column:created_by;type:varchar(255)"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
