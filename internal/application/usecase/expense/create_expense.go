// Package expense contains expense use cases.
package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
	// LimitExceeded reports whether the current month is over the limit after this expense.
	LimitExceeded bool
	Limit         decimal.Decimal
	MonthlyTotal  decimal.Decimal
}

// CreateExpenseUseCase records a new expense.
type CreateExpenseUseCase struct {
	sessions *session.Manager
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(sessions *session.Manager) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{sessions: sessions}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	e, err := s.AddExpense(ctx, session.ExpenseInput{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
	})
	if err != nil {
		return nil, err
	}

	limit := s.Limit()
	total := s.CurrentMonthTotal()

	return &CreateExpenseOutput{
		Expense:       e,
		LimitExceeded: limit.Exceeded(total),
		Limit:         limit.Amount,
		MonthlyTotal:  total,
	}, nil
}
