// Package insight turns aggregate spending, goal and streak state into ordered advice.
//
// The engine is pure: it performs no I/O and, apart from the injected tip picker,
// produces the same output for the same input.
package insight

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
	"github.com/cashease/backend/internal/domain/spending"
)

// Group identifies the rule group an insight came from.
type Group string

const (
	GroupOnboarding Group = "onboarding"
	GroupBudget     Group = "budget"
	GroupCategory   Group = "category"
	GroupDaily      Group = "daily"
	GroupGoal       Group = "goal"
	GroupStreak     Group = "streak"
	GroupTip        Group = "tip"
)

// Level is the severity attached to an insight.
type Level string

const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelModerate Level = "moderate"
	LevelPositive Level = "positive"
	LevelInfo     Level = "info"
)

// Insight is a single advisory message.
type Insight struct {
	Group   Group
	Level   Level
	Message string
}

// Input is everything the engine evaluates.
type Input struct {
	Summary     spending.Summary
	Limit       decimal.Decimal
	Goals       []*entity.Goal
	StreakCount int
}

// Picker returns an index in [0, n).
type Picker func(n int) int

const (
	defaultCurrency       = "₹"
	defaultDailyThreshold = 1000
	paceHorizonDays       = 30
)

var (
	budgetExceeded  = decimal.NewFromInt(1)
	budgetNinety    = decimal.RequireFromString("0.9")
	budgetHigh      = decimal.RequireFromString("0.75")
	shareStrict     = decimal.RequireFromString("0.40")
	shareModerate   = decimal.RequireFromString("0.25")
	goalSlow        = decimal.RequireFromString("0.3")
	goalClose       = decimal.RequireFromString("0.7")
	goalDone        = decimal.NewFromInt(1)
	hundred         = decimal.NewFromInt(100)
	streakExcellent = 7
	streakForming   = 3
)

// Engine evaluates the rule groups in a fixed order.
type Engine struct {
	currency       string
	dailyThreshold decimal.Decimal
	pick           Picker
	tips           []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithCurrency sets the symbol prefixed to amounts.
func WithCurrency(symbol string) Option {
	return func(e *Engine) { e.currency = symbol }
}

// WithDailyThreshold sets the average daily spend above which a warning is emitted.
func WithDailyThreshold(threshold decimal.Decimal) Option {
	return func(e *Engine) { e.dailyThreshold = threshold }
}

// WithPicker replaces the random tip selection.
func WithPicker(p Picker) Option {
	return func(e *Engine) { e.pick = p }
}

// NewEngine creates an engine with the default currency, threshold and a random picker.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		currency:       defaultCurrency,
		dailyThreshold: decimal.NewFromInt(defaultDailyThreshold),
		pick:           rand.IntN,
		tips:           Tips,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate produces the ordered insights for in.
func (e *Engine) Generate(in Input) []Insight {
	if in.Summary.Count == 0 {
		return []Insight{{
			Group:   GroupOnboarding,
			Level:   LevelInfo,
			Message: "Start adding expenses to receive smart financial insights.",
		}}
	}

	var out []Insight
	out = append(out, e.budget(in.Summary.TotalSpent, in.Limit)...)
	out = append(out, e.categories(in.Summary)...)
	out = append(out, e.daily(in.Summary.AverageDaily)...)
	out = append(out, e.goals(in.Goals)...)
	out = append(out, e.streak(in.StreakCount))
	out = append(out, e.tip())

	return out
}

func (e *Engine) budget(spent, limit decimal.Decimal) []Insight {
	if !limit.IsPositive() {
		return nil
	}

	usage := spent.Div(limit)
	switch {
	case usage.GreaterThanOrEqual(budgetExceeded):
		return []Insight{{GroupBudget, LevelCritical, "Budget exceeded! Immediately cut non-essential expenses."}}
	case usage.GreaterThanOrEqual(budgetNinety):
		return []Insight{{GroupBudget, LevelHigh, "You've used 90% of your budget. Avoid shopping and eating out."}}
	case usage.GreaterThanOrEqual(budgetHigh):
		return []Insight{{GroupBudget, LevelModerate, "Spending is high. Review discretionary expenses."}}
	default:
		return []Insight{{GroupBudget, LevelPositive, "Budget usage is healthy. Keep it up!"}}
	}
}

func (e *Engine) categories(s spending.Summary) []Insight {
	var out []Insight

	for _, c := range s.Categories {
		share := s.Share(c)
		switch {
		case share.GreaterThan(shareStrict):
			out = append(out, Insight{GroupCategory, LevelHigh,
				fmt.Sprintf("%s makes up %s%% of your spending. Set a strict limit.", c, share.Mul(hundred).StringFixed(1))})
		case share.GreaterThan(shareModerate):
			out = append(out, Insight{GroupCategory, LevelModerate,
				fmt.Sprintf("%s spending is moderate. Try small reductions.", c)})
		}
	}

	if s.HasHighest() {
		out = append(out, Insight{GroupCategory, LevelInfo,
			fmt.Sprintf("Highest spending category: %s.", s.HighestCategory)})
	}

	return out
}

func (e *Engine) daily(avg decimal.Decimal) []Insight {
	out := []Insight{{GroupDaily, LevelInfo,
		fmt.Sprintf("Average daily spending: %s%s.", e.currency, avg.StringFixed(2))}}

	if avg.GreaterThan(e.dailyThreshold) {
		out = append(out, Insight{GroupDaily, LevelHigh, "Daily expenses are high. Try a no-spend day weekly."})
	} else {
		out = append(out, Insight{GroupDaily, LevelPositive, "Daily spending looks controlled."})
	}

	return out
}

func (e *Engine) goals(goals []*entity.Goal) []Insight {
	if len(goals) == 0 {
		return []Insight{{GroupGoal, LevelInfo, "Add financial goals to unlock goal-based insights."}}
	}

	var out []Insight
	for _, g := range goals {
		progress := g.Progress()
		switch {
		case progress.LessThan(goalSlow):
			out = append(out, Insight{GroupGoal, LevelModerate,
				fmt.Sprintf("Goal %q is slow. Save %s%s per day.", g.Name, e.currency, g.DailyPace(paceHorizonDays).StringFixed(0))})
		case progress.GreaterThanOrEqual(goalDone):
			out = append(out, Insight{GroupGoal, LevelPositive,
				fmt.Sprintf("Goal %q achieved! Set a new goal.", g.Name)})
		case progress.GreaterThanOrEqual(goalClose):
			out = append(out, Insight{GroupGoal, LevelPositive,
				fmt.Sprintf("You're close to achieving %q. Stay consistent!", g.Name)})
		}
	}

	return out
}

func (e *Engine) streak(count int) Insight {
	switch {
	case count >= streakExcellent:
		return Insight{GroupStreak, LevelPositive, fmt.Sprintf("%d-day savings streak! Excellent discipline.", count)}
	case count >= streakForming:
		return Insight{GroupStreak, LevelPositive, "Good savings habit forming. Keep going!"}
	default:
		return Insight{GroupStreak, LevelModerate, "No strong savings streak yet. Start small, consistency matters."}
	}
}

func (e *Engine) tip() Insight {
	idx := e.pick(len(e.tips))
	if idx < 0 || idx >= len(e.tips) {
		idx = 0
	}
	return Insight{GroupTip, LevelInfo, e.tips[idx]}
}

// Messages flattens insights into their message strings.
func Messages(insights []Insight) []string {
	out := make([]string, len(insights))
	for i, in := range insights {
		out[i] = in.Message
	}
	return out
}
