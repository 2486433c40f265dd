// Package spending reduces expense lists into the totals the dashboard and insights work from.
package spending

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
)

// Summary is the aggregate view over a list of expenses.
type Summary struct {
	CategoryTotals  map[string]decimal.Decimal
	Categories      []string // first-seen order
	TotalSpent      decimal.Decimal
	DistinctDays    int
	AverageDaily    decimal.Decimal
	HighestCategory string
	Count           int
}

// Summarize aggregates expenses. An empty list yields zero totals and no highest category.
func Summarize(expenses []*entity.Expense) Summary {
	s := Summary{
		CategoryTotals: make(map[string]decimal.Decimal),
		TotalSpent:     decimal.Zero,
		AverageDaily:   decimal.Zero,
		Count:          len(expenses),
	}
	if len(expenses) == 0 {
		return s
	}

	days := make(map[time.Time]struct{})
	for _, e := range expenses {
		if _, ok := s.CategoryTotals[e.Category]; !ok {
			s.Categories = append(s.Categories, e.Category)
		}
		s.CategoryTotals[e.Category] = s.CategoryTotals[e.Category].Add(e.Amount)
		s.TotalSpent = s.TotalSpent.Add(e.Amount)
		days[entity.DateOf(e.Date)] = struct{}{}
	}

	s.DistinctDays = max(len(days), 1)
	s.AverageDaily = s.TotalSpent.Div(decimal.NewFromInt(int64(s.DistinctDays)))
	s.HighestCategory = highest(s.CategoryTotals, s.Categories)

	return s
}

// HasHighest reports whether a highest category exists.
func (s Summary) HasHighest() bool {
	return len(s.Categories) > 0
}

// Share returns the category's fraction of total spending.
func (s Summary) Share(category string) decimal.Decimal {
	if !s.TotalSpent.IsPositive() {
		return decimal.Zero
	}
	return s.CategoryTotals[category].Div(s.TotalSpent)
}

// highest picks the category with the largest total, breaking ties alphabetically.
func highest(totals map[string]decimal.Decimal, categories []string) string {
	var best string
	for i, c := range categories {
		if i == 0 {
			best = c
			continue
		}
		cmp := totals[c].Cmp(totals[best])
		if cmp > 0 || (cmp == 0 && c < best) {
			best = c
		}
	}
	return best
}

// MonthlyTotal sums the amounts of expenses dated in the given calendar month.
func MonthlyTotal(expenses []*entity.Expense, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.InMonth(year, month) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// FilterMonth returns the expenses dated in the given calendar month, keeping order.
func FilterMonth(expenses []*entity.Expense, year int, month time.Month) []*entity.Expense {
	out := make([]*entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.InMonth(year, month) {
			out = append(out, e)
		}
	}
	return out
}
