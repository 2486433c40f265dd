package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyLimit is the per-user spending ceiling. Zero means no limit.
type MonthlyLimit struct {
	UserID    uuid.UUID
	Amount    decimal.Decimal
	UpdatedAt time.Time
}

// IsSet reports whether a limit is active.
func (l MonthlyLimit) IsSet() bool {
	return l.Amount.IsPositive()
}

// Usage returns spent/limit, or zero when no limit is set.
func (l MonthlyLimit) Usage(spent decimal.Decimal) decimal.Decimal {
	if !l.IsSet() {
		return decimal.Zero
	}
	return spent.Div(l.Amount)
}

// Exceeded reports whether spent is above the limit.
func (l MonthlyLimit) Exceeded(spent decimal.Decimal) bool {
	return l.IsSet() && spent.GreaterThan(l.Amount)
}
