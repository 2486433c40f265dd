// Package budget contains monthly spending limit use cases.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/entity"
)

// Status is the monthly limit measured against the current month's spending.
type Status struct {
	Limit        entity.MonthlyLimit
	MonthlyTotal decimal.Decimal
	// Usage is MonthlyTotal/Limit, zero when no limit is set.
	Usage     decimal.Decimal
	Remaining decimal.Decimal
	Exceeded  bool
	Year      int
	Month     time.Month
}

func statusOf(s *session.Session) Status {
	limit := s.Limit()
	total := s.CurrentMonthTotal()
	now := s.Now()

	st := Status{
		Limit:        limit,
		MonthlyTotal: total,
		Usage:        limit.Usage(total),
		Remaining:    decimal.Zero,
		Exceeded:     limit.Exceeded(total),
		Year:         now.Year(),
		Month:        now.Month(),
	}
	if limit.IsSet() {
		st.Remaining = decimal.Max(decimal.Zero, limit.Amount.Sub(total))
	}
	return st
}
