// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/cashease/backend/internal/domain/error"
)

var hundred = decimal.NewFromInt(100)

// Goal represents a savings target in the CashEase system.
type Goal struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal // Target, always positive
	Saved      decimal.Decimal // Accumulated, starts at zero
	TargetDate time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGoal creates a new Goal with nothing saved yet.
func NewGoal(userID uuid.UUID, name string, amount decimal.Decimal, targetDate time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		Saved:      decimal.Zero,
		TargetDate: DateOf(targetDate),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Progress returns saved/amount, unclamped.
func (g *Goal) Progress() decimal.Decimal {
	if !g.Amount.IsPositive() {
		return decimal.Zero
	}
	return g.Saved.Div(g.Amount)
}

// PercentComplete returns the progress as a percentage clamped to 100.
func (g *Goal) PercentComplete() decimal.Decimal {
	return decimal.Min(hundred, g.Progress().Mul(hundred))
}

// Remaining returns how much is left to reach the target, never negative.
func (g *Goal) Remaining() decimal.Decimal {
	return decimal.Max(decimal.Zero, g.Amount.Sub(g.Saved))
}

// IsComplete reports whether the saved amount has reached the target.
func (g *Goal) IsComplete() bool {
	return g.Saved.GreaterThanOrEqual(g.Amount)
}

// DailyPace returns the whole amount per day needed to finish within days, rounded up.
func (g *Goal) DailyPace(days int) decimal.Decimal {
	if days <= 0 {
		return g.Remaining().Ceil()
	}
	return g.Remaining().Div(decimal.NewFromInt(int64(days))).Ceil()
}

// DaysLeft returns the whole days from today until the target date, zero once it passed.
func (g *Goal) DaysLeft(today time.Time) int {
	days := int(DateOf(g.TargetDate).Sub(DateOf(today)).Hours() / 24)
	return max(days, 0)
}

// AddSavings deposits amount into the goal and reports whether this deposit completed it.
// The goal is left untouched when the amount is not positive or the goal is already complete.
func (g *Goal) AddSavings(amount decimal.Decimal) (bool, error) {
	if !amount.IsPositive() {
		return false, domainerror.ErrInvalidSavingsAmount
	}
	if g.IsComplete() {
		return false, domainerror.ErrGoalAlreadyCompleted
	}

	g.Saved = g.Saved.Add(amount)
	g.UpdatedAt = time.Now().UTC()

	return g.IsComplete(), nil
}

// Clone returns a copy of the goal.
func (g *Goal) Clone() *Goal {
	c := *g
	return &c
}
