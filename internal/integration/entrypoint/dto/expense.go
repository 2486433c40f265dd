package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for adding an expense.
// Amounts are accepted as JSON numbers or strings.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateExpenseResponse is returned after adding an expense.
type CreateExpenseResponse struct {
	Expense       ExpenseResponse  `json:"expense"`
	LimitExceeded bool             `json:"limit_exceeded"`
	MonthlyTotal  decimal.Decimal  `json:"monthly_total"`
	Limit         *decimal.Decimal `json:"limit,omitempty"`
	Warning       string           `json:"warning,omitempty"`
}

// ExpenseListResponse represents a list of expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
	Total    decimal.Decimal   `json:"total"`
	Month    string            `json:"month,omitempty"`
}

// SuggestCategoryRequest represents the request body for category suggestion.
type SuggestCategoryRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// SuggestCategoryResponse is the suggested category.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ToExpenseResponse converts a domain Expense entity.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date.Format(entity.DateLayout),
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a list of expenses.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ToExpenseResponse(e))
	}
	return out
}
