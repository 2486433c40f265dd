package dto

import (
	"github.com/shopspring/decimal"

	insightuc "github.com/cashease/backend/internal/application/usecase/insight"
	"github.com/cashease/backend/internal/domain/entity"
	"github.com/cashease/backend/internal/domain/insight"
)

// InsightResponse is one advisory message.
type InsightResponse struct {
	Group   string `json:"group"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// InsightListResponse holds insights in display order.
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
}

// CategoryShareResponse is one row of the category breakdown.
type CategoryShareResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// StreakResponse is the savings streak.
type StreakResponse struct {
	Count        int     `json:"count"`
	LastActivity *string `json:"last_activity"`
}

// SummaryResponse is the dashboard summary.
type SummaryResponse struct {
	TotalSpent        decimal.Decimal         `json:"total_spent"`
	AverageDaily      decimal.Decimal         `json:"average_daily"`
	ExpenseCount      int                     `json:"expense_count"`
	HighestCategory   string                  `json:"highest_category,omitempty"`
	Categories        []CategoryShareResponse `json:"categories"`
	CurrentMonthTotal decimal.Decimal         `json:"current_month_total"`
	Limit             decimal.Decimal         `json:"limit"`
	Streak            StreakResponse          `json:"streak"`
}

// ToInsightListResponse converts engine output.
func ToInsightListResponse(insights []insight.Insight) InsightListResponse {
	out := make([]InsightResponse, 0, len(insights))
	for _, i := range insights {
		out = append(out, InsightResponse{
			Group:   string(i.Group),
			Level:   string(i.Level),
			Message: i.Message,
		})
	}
	return InsightListResponse{Insights: out}
}

// ToSummaryResponse converts the summary use case output.
func ToSummaryResponse(o *insightuc.GetSummaryOutput) SummaryResponse {
	shares := make([]CategoryShareResponse, 0, len(o.Categories))
	for _, c := range o.Categories {
		shares = append(shares, CategoryShareResponse{Category: c.Category, Amount: c.Amount, Percent: c.Percent})
	}

	streak := StreakResponse{Count: o.Streak.Count}
	if o.Streak.LastActivity != nil {
		day := o.Streak.LastActivity.Format(entity.DateLayout)
		streak.LastActivity = &day
	}

	return SummaryResponse{
		TotalSpent:        o.TotalSpent,
		AverageDaily:      o.AverageDaily,
		ExpenseCount:      o.ExpenseCount,
		HighestCategory:   o.HighestCategory,
		Categories:        shares,
		CurrentMonthTotal: o.CurrentMonthTotal,
		Limit:             o.Limit,
		Streak:            streak,
	}
}
