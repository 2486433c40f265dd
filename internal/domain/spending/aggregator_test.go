package spending

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
)

var (
	d1 = time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	d2 = time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)
	d3 = time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)
)

func expense(amount, category string, date time.Time) *entity.Expense {
	return entity.NewExpense(uuid.Nil, "test", decimal.RequireFromString(amount), category, date)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarize_Scenario(t *testing.T) {
	s := Summarize([]*entity.Expense{
		expense("100", "Food", d1),
		expense("50", "Food", d1),
		expense("200", "Rent", d2),
	})

	if !s.CategoryTotals["Food"].Equal(dec("150")) || !s.CategoryTotals["Rent"].Equal(dec("200")) {
		t.Errorf("CategoryTotals = %v", s.CategoryTotals)
	}
	if len(s.CategoryTotals) != 2 {
		t.Errorf("len(CategoryTotals) = %d, want 2", len(s.CategoryTotals))
	}
	if !s.TotalSpent.Equal(dec("350")) {
		t.Errorf("TotalSpent = %s, want 350", s.TotalSpent)
	}
	if s.DistinctDays != 2 {
		t.Errorf("DistinctDays = %d, want 2", s.DistinctDays)
	}
	if !s.AverageDaily.Equal(dec("175")) {
		t.Errorf("AverageDaily = %s, want 175", s.AverageDaily)
	}
	if s.HighestCategory != "Rent" {
		t.Errorf("HighestCategory = %q, want Rent", s.HighestCategory)
	}
	if got := []string{"Food", "Rent"}; s.Categories[0] != got[0] || s.Categories[1] != got[1] {
		t.Errorf("Categories = %v, want %v", s.Categories, got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if !s.TotalSpent.IsZero() || len(s.CategoryTotals) != 0 {
		t.Errorf("expected zero totals, got %s / %v", s.TotalSpent, s.CategoryTotals)
	}
	if s.HasHighest() {
		t.Error("empty summary must not have a highest category")
	}
	if s.DistinctDays != 0 || !s.AverageDaily.IsZero() {
		t.Errorf("DistinctDays = %d, AverageDaily = %s", s.DistinctDays, s.AverageDaily)
	}
}

func TestSummarize_TotalsMatch(t *testing.T) {
	lists := [][]*entity.Expense{
		{expense("0.10", "A", d1), expense("0.20", "B", d1), expense("0.30", "A", d2)},
		{expense("19.99", "Food", d1), expense("0.01", "Food", d2), expense("1234.56", "Rent", d3)},
		{expense("0", "Zero", d1)},
	}

	for i, list := range lists {
		s := Summarize(list)
		sum := decimal.Zero
		for _, v := range s.CategoryTotals {
			sum = sum.Add(v)
		}
		if !sum.Equal(s.TotalSpent) {
			t.Errorf("list %d: sum(categoryTotals) = %s, TotalSpent = %s", i, sum, s.TotalSpent)
		}
		if s.DistinctDays < 1 {
			t.Errorf("list %d: DistinctDays = %d, want >= 1", i, s.DistinctDays)
		}
		want := s.TotalSpent.Div(decimal.NewFromInt(int64(s.DistinctDays)))
		if !s.AverageDaily.Equal(want) {
			t.Errorf("list %d: AverageDaily = %s, want %s", i, s.AverageDaily, want)
		}
	}
}

func TestSummarize_HighestTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		expenses []*entity.Expense
		want     string
	}{
		{
			name:     "tie resolved alphabetically regardless of order",
			expenses: []*entity.Expense{expense("100", "Travel", d1), expense("100", "Food", d1)},
			want:     "Food",
		},
		{
			name:     "same tie in the other order",
			expenses: []*entity.Expense{expense("100", "Food", d1), expense("100", "Travel", d1)},
			want:     "Food",
		},
		{
			name:     "strict maximum wins",
			expenses: []*entity.Expense{expense("100", "Food", d1), expense("101", "Travel", d1)},
			want:     "Travel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.expenses).HighestCategory; got != tt.want {
				t.Errorf("HighestCategory = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMonthlyTotal(t *testing.T) {
	list := []*entity.Expense{
		expense("100", "Food", d1),
		expense("50", "Food", d2),
		expense("200", "Rent", d3),
		expense("75", "Rent", time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)),
	}

	if got := MonthlyTotal(list, 2025, time.January); !got.Equal(dec("150")) {
		t.Errorf("January = %s, want 150", got)
	}
	if got := MonthlyTotal(list, 2025, time.February); !got.Equal(dec("200")) {
		t.Errorf("February = %s, want 200", got)
	}
	if got := MonthlyTotal(list, 2025, time.March); !got.IsZero() {
		t.Errorf("March = %s, want 0", got)
	}
	if got := FilterMonth(list, 2025, time.January); len(got) != 2 {
		t.Errorf("FilterMonth len = %d, want 2", len(got))
	}
}
