package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/usecase/budget"
)

// SetLimitRequest represents the request body for the monthly limit. Zero clears it.
type SetLimitRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// LimitResponse represents the monthly limit status.
type LimitResponse struct {
	Limit        decimal.Decimal `json:"limit"`
	IsSet        bool            `json:"is_set"`
	Month        string          `json:"month"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
	Usage        decimal.Decimal `json:"usage_percent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Exceeded     bool            `json:"exceeded"`
}

// ToLimitResponse converts a limit status.
func ToLimitResponse(s budget.Status) LimitResponse {
	return LimitResponse{
		Limit:        s.Limit.Amount,
		IsSet:        s.Limit.IsSet(),
		Month:        fmt.Sprintf("%04d-%02d", s.Year, int(s.Month)),
		MonthlyTotal: s.MonthlyTotal,
		Usage:        s.Usage.Mul(decimal.NewFromInt(100)).Round(1),
		Remaining:    s.Remaining,
		Exceeded:     s.Exceeded,
	}
}
