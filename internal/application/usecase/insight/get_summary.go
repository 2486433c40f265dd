package insight

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// GetSummaryInput represents the input for the spending summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// CategoryShare is one category's total and percentage of all spending.
type CategoryShare struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal
}

// GetSummaryOutput is the dashboard summary.
type GetSummaryOutput struct {
	TotalSpent        decimal.Decimal
	AverageDaily      decimal.Decimal
	ExpenseCount      int
	HighestCategory   string
	Categories        []CategoryShare // first-seen order
	CurrentMonthTotal decimal.Decimal
	Limit             decimal.Decimal
	Streak            entity.Streak
}

// GetSummaryUseCase aggregates the user's expenses.
type GetSummaryUseCase struct {
	sessions *session.Manager
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(sessions *session.Manager) *GetSummaryUseCase {
	return &GetSummaryUseCase{sessions: sessions}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	summary := s.Summary()
	shares := make([]CategoryShare, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		shares = append(shares, CategoryShare{
			Category: c,
			Amount:   summary.CategoryTotals[c],
			Percent:  summary.Share(c).Mul(hundred).Round(1),
		})
	}

	return &GetSummaryOutput{
		TotalSpent:        summary.TotalSpent,
		AverageDaily:      summary.AverageDaily.Round(2),
		ExpenseCount:      summary.Count,
		HighestCategory:   summary.HighestCategory,
		Categories:        shares,
		CurrentMonthTotal: s.CurrentMonthTotal(),
		Limit:             s.Limit().Amount,
		Streak:            s.Streak(),
	}, nil
}
