// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCompletedEvent is fired when a savings deposit reaches a goal's target.
type GoalCompletedEvent struct {
	UserID   uuid.UUID
	GoalID   uuid.UUID
	GoalName string
	Target   decimal.Decimal
	Saved    decimal.Decimal
}

// LimitExceededEvent is fired when the current month's spending goes over the monthly limit.
type LimitExceededEvent struct {
	UserID       uuid.UUID
	Limit        decimal.Decimal
	MonthlyTotal decimal.Decimal
	Month        time.Month
	Year         int
}

// Notifier consumes the events raised by session mutations.
type Notifier interface {
	// GoalCompleted handles a goal completion.
	GoalCompleted(ctx context.Context, event GoalCompletedEvent) error

	// LimitExceeded handles a monthly limit breach.
	LimitExceeded(ctx context.Context, event LimitExceededEvent) error
}
