package finance

type CreateBudgetRequest struct {
	FiscalYear      string  `json:"fiscal_year" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	AllocatedAmount float64 `json:"allocated_amount" binding:"gte=0"`
	Description     string  `json:"description"`
}

// UpdateBudgetRequest never carries spent_amount; only debit transactions
// move that counter.
type UpdateBudgetRequest struct {
	FiscalYear      string  `json:"fiscal_year" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	AllocatedAmount float64 `json:"allocated_amount" binding:"gte=0"`
	Description     string  `json:"description"`
}

type BudgetResponse struct {
	ID              string  `json:"id"`
	FiscalYear      string  `json:"fiscal_year"`
	Category        string  `json:"category"`
	AllocatedAmount float64 `json:"allocated_amount"`
	SpentAmount     float64 `json:"spent_amount"`
	Description     string  `json:"description,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type CreateTransactionRequest struct {
	TransactionDate string  `json:"transaction_date" binding:"required,datetime=2006-01-02"`
	Category        string  `json:"category" binding:"required"`
	Amount          float64 `json:"amount" binding:"gte=0"`
	Type            string  `json:"type" binding:"required,oneof=credit debit"`
	Description     string  `json:"description" binding:"required"`
	CreatedBy       string  `json:"created_by"`
}

type TransactionQuery struct {
	Category string `form:"category"`
	Type     string `form:"type"`
}

type TransactionResponse struct {
	ID              string  `json:"id"`
	TransactionDate string  `json:"transaction_date"`
	Category        string  `json:"category"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	Description     string  `json:"description"`
	CreatedBy       string  `json:"created_by"`
	CreatedAt       string  `json:"created_at"`
}
