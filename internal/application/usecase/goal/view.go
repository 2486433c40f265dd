// Package goal contains savings goal use cases.
package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
)

// View is a goal with its progress figures computed for a given day.
type View struct {
	Goal            *entity.Goal
	PercentComplete decimal.Decimal
	Remaining       decimal.Decimal
	DaysLeft        int
	DailyPace       decimal.Decimal
	Completed       bool
}

func newView(g *entity.Goal, today time.Time) View {
	days := g.DaysLeft(today)
	return View{
		Goal:            g,
		PercentComplete: g.PercentComplete(),
		Remaining:       g.Remaining(),
		DaysLeft:        days,
		DailyPace:       g.DailyPace(days),
		Completed:       g.IsComplete(),
	}
}
