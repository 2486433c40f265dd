package insight

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
	"github.com/cashease/backend/internal/domain/spending"
)

var (
	jan10 = time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	jan11 = time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func expense(amount, category string, date time.Time) *entity.Expense {
	return entity.NewExpense(uuid.Nil, "test", dec(amount), category, date)
}

func goal(name, amount, saved string) *entity.Goal {
	g := entity.NewGoal(uuid.Nil, name, dec(amount), jan10)
	g.Saved = dec(saved)
	return g
}

func first(int) int { return 0 }

func byGroup(insights []Insight, g Group) []Insight {
	var out []Insight
	for _, in := range insights {
		if in.Group == g {
			out = append(out, in)
		}
	}
	return out
}

func scenarioSummary() spending.Summary {
	return spending.Summarize([]*entity.Expense{
		expense("100", "Food", jan10),
		expense("50", "Food", jan10),
		expense("200", "Rent", jan11),
	})
}

func TestEngine_EmptyExpensesShortCircuits(t *testing.T) {
	e := NewEngine(WithPicker(first))

	got := e.Generate(Input{
		Summary:     spending.Summarize(nil),
		Limit:       dec("1000"),
		Goals:       []*entity.Goal{goal("Car", "1000", "0")},
		StreakCount: 9,
	})

	want := []string{"Start adding expenses to receive smart financial insights."}
	if !reflect.DeepEqual(Messages(got), want) {
		t.Errorf("Generate() = %v, want %v", Messages(got), want)
	}
}

func TestEngine_GroupOrder(t *testing.T) {
	e := NewEngine(WithPicker(first))

	got := e.Generate(Input{Summary: scenarioSummary(), Limit: dec("1000"), StreakCount: 1})

	var order []Group
	for _, in := range got {
		if len(order) == 0 || order[len(order)-1] != in.Group {
			order = append(order, in.Group)
		}
	}
	want := []Group{GroupBudget, GroupCategory, GroupDaily, GroupGoal, GroupStreak, GroupTip}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("group order = %v, want %v", order, want)
	}
}

func TestEngine_Budget(t *testing.T) {
	tests := []struct {
		name  string
		spent string
		limit string
		want  string
		level Level
	}{
		{name: "exceeded at exactly the limit", spent: "1000", limit: "1000", want: "Budget exceeded! Immediately cut non-essential expenses.", level: LevelCritical},
		{name: "ninety percent tier", spent: "950", limit: "1000", want: "You've used 90% of your budget. Avoid shopping and eating out.", level: LevelHigh},
		{name: "ninety percent boundary", spent: "900", limit: "1000", want: "You've used 90% of your budget. Avoid shopping and eating out.", level: LevelHigh},
		{name: "high tier", spent: "750", limit: "1000", want: "Spending is high. Review discretionary expenses.", level: LevelModerate},
		{name: "healthy", spent: "749.99", limit: "1000", want: "Budget usage is healthy. Keep it up!", level: LevelPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(WithPicker(first))
			s := spending.Summarize([]*entity.Expense{expense(tt.spent, "Food", jan10)})

			got := byGroup(e.Generate(Input{Summary: s, Limit: dec(tt.limit)}), GroupBudget)
			if len(got) != 1 {
				t.Fatalf("budget insights = %d, want 1", len(got))
			}
			if got[0].Message != tt.want || got[0].Level != tt.level {
				t.Errorf("budget = %q (%s), want %q (%s)", got[0].Message, got[0].Level, tt.want, tt.level)
			}
		})
	}
}

func TestEngine_BudgetSkippedWithoutLimit(t *testing.T) {
	e := NewEngine(WithPicker(first))

	got := byGroup(e.Generate(Input{Summary: scenarioSummary()}), GroupBudget)
	if len(got) != 0 {
		t.Errorf("expected no budget insight, got %v", got)
	}
}

func TestEngine_Categories(t *testing.T) {
	e := NewEngine(WithPicker(first))
	s := spending.Summarize([]*entity.Expense{
		expense("500", "Rent", jan10),
		expense("300", "Food", jan10),
		expense("150", "Travel", jan11),
		expense("50", "Books", jan11),
	})

	got := Messages(byGroup(e.Generate(Input{Summary: s}), GroupCategory))
	want := []string{
		"Rent makes up 50.0% of your spending. Set a strict limit.",
		"Food spending is moderate. Try small reductions.",
		"Highest spending category: Rent.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("category insights = %v, want %v", got, want)
	}
}

func TestEngine_CategoryBoundaries(t *testing.T) {
	e := NewEngine(WithPicker(first))
	s := spending.Summarize([]*entity.Expense{
		expense("40", "A", jan10),
		expense("25", "B", jan10),
		expense("35", "C", jan10),
	})

	got := Messages(byGroup(e.Generate(Input{Summary: s}), GroupCategory))
	want := []string{
		"A spending is moderate. Try small reductions.",
		"C spending is moderate. Try small reductions.",
		"Highest spending category: A.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("category insights = %v, want %v", got, want)
	}
}

func TestEngine_Daily(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		threshold string
		want      []string
	}{
		{
			name:   "controlled",
			amount: "350",
			want:   []string{"Average daily spending: ₹350.00.", "Daily spending looks controlled."},
		},
		{
			name:   "threshold itself is controlled",
			amount: "1000",
			want:   []string{"Average daily spending: ₹1000.00.", "Daily spending looks controlled."},
		},
		{
			name:   "above threshold",
			amount: "1000.01",
			want:   []string{"Average daily spending: ₹1000.01.", "Daily expenses are high. Try a no-spend day weekly."},
		},
		{
			name:      "custom threshold",
			amount:    "600",
			threshold: "500",
			want:      []string{"Average daily spending: ₹600.00.", "Daily expenses are high. Try a no-spend day weekly."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []Option{WithPicker(first)}
			if tt.threshold != "" {
				opts = append(opts, WithDailyThreshold(dec(tt.threshold)))
			}
			e := NewEngine(opts...)
			s := spending.Summarize([]*entity.Expense{expense(tt.amount, "Food", jan10)})

			got := Messages(byGroup(e.Generate(Input{Summary: s}), GroupDaily))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("daily insights = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEngine_Goals(t *testing.T) {
	e := NewEngine(WithPicker(first))

	got := Messages(byGroup(e.Generate(Input{
		Summary: scenarioSummary(),
		Goals: []*entity.Goal{
			goal("Laptop", "1000", "100"),
			goal("Bike", "1000", "300"),
			goal("Phone", "1000", "700"),
			goal("Trip", "1000", "1000"),
			goal("Watch", "1000", "1200"),
			goal("Camera", "1000", "699.99"),
		},
	}), GroupGoal))

	want := []string{
		`Goal "Laptop" is slow. Save ₹30 per day.`,
		`You're close to achieving "Phone". Stay consistent!`,
		`Goal "Trip" achieved! Set a new goal.`,
		`Goal "Watch" achieved! Set a new goal.`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("goal insights = %v, want %v", got, want)
	}
}

func TestEngine_NoGoals(t *testing.T) {
	e := NewEngine(WithPicker(first))

	got := Messages(byGroup(e.Generate(Input{Summary: scenarioSummary()}), GroupGoal))
	want := []string{"Add financial goals to unlock goal-based insights."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("goal insights = %v, want %v", got, want)
	}
}

func TestEngine_Streak(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "No strong savings streak yet. Start small, consistency matters."},
		{count: 2, want: "No strong savings streak yet. Start small, consistency matters."},
		{count: 3, want: "Good savings habit forming. Keep going!"},
		{count: 6, want: "Good savings habit forming. Keep going!"},
		{count: 7, want: "7-day savings streak! Excellent discipline."},
		{count: 12, want: "12-day savings streak! Excellent discipline."},
	}

	e := NewEngine(WithPicker(first))
	for _, tt := range tests {
		got := byGroup(e.Generate(Input{Summary: scenarioSummary(), StreakCount: tt.count}), GroupStreak)
		if len(got) != 1 || got[0].Message != tt.want {
			t.Errorf("streak %d = %v, want %q", tt.count, got, tt.want)
		}
	}
}

func TestEngine_TipUsesPicker(t *testing.T) {
	for i := range Tips {
		e := NewEngine(WithPicker(func(n int) int {
			if n != len(Tips) {
				t.Fatalf("picker called with n = %d, want %d", n, len(Tips))
			}
			return i
		}))

		got := byGroup(e.Generate(Input{Summary: scenarioSummary()}), GroupTip)
		if len(got) != 1 || got[0].Message != Tips[i] {
			t.Errorf("tip = %v, want %q", got, Tips[i])
		}
	}
}

func TestEngine_DefaultPickerReturnsKnownTip(t *testing.T) {
	e := NewEngine()

	for range 20 {
		got := byGroup(e.Generate(Input{Summary: scenarioSummary()}), GroupTip)
		if len(got) != 1 || !slices.Contains(Tips, got[0].Message) {
			t.Fatalf("unexpected tip %v", got)
		}
	}
}

func TestEngine_CurrencyOption(t *testing.T) {
	e := NewEngine(WithPicker(first), WithCurrency("$"))

	got := Messages(byGroup(e.Generate(Input{Summary: scenarioSummary()}), GroupDaily))
	if got[0] != "Average daily spending: $175.00." {
		t.Errorf("daily = %q", got[0])
	}
}
