package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/domain/spending"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID uuid.UUID
	// Month is an optional YYYY-MM filter.
	Month string
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
	Year     int
	Month    time.Month
}

// ListExpensesUseCase returns expenses in the order they were added.
type ListExpensesUseCase struct {
	sessions *session.Manager
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(sessions *session.Manager) *ListExpensesUseCase {
	return &ListExpensesUseCase{sessions: sessions}
}

// Execute lists the expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	out := &ListExpensesOutput{}

	filter := strings.TrimSpace(input.Month)
	if filter != "" {
		year, month, err := entity.ParseMonth(filter)
		if err != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidMonthFilter,
				"month must be in YYYY-MM format",
				domainerror.ErrInvalidMonthFilter,
			)
		}
		out.Year, out.Month = year, month
	}

	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out.Expenses = s.Expenses()
	if filter != "" {
		out.Expenses = spending.FilterMonth(out.Expenses, out.Year, out.Month)
	}

	out.Total = decimal.Zero
	for _, e := range out.Expenses {
		out.Total = out.Total.Add(e.Amount)
	}

	return out, nil
}
