package email

import (
	"context"
	"log/slog"

	"github.com/cashease/backend/internal/application/adapter"
)

// LogNotifier records events in the log instead of emailing. It is used when
// email delivery is disabled.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that only logs.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: slog.Default().With("component", "notifier")}
}

// GoalCompleted logs the completion.
func (n *LogNotifier) GoalCompleted(_ context.Context, event adapter.GoalCompletedEvent) error {
	n.logger.Info("goal completed",
		"user_id", event.UserID,
		"goal_id", event.GoalID,
		"goal", event.GoalName,
		"saved", event.Saved.String(),
	)
	return nil
}

// LimitExceeded logs the breach.
func (n *LogNotifier) LimitExceeded(_ context.Context, event adapter.LimitExceededEvent) error {
	n.logger.Warn("monthly limit exceeded",
		"user_id", event.UserID,
		"limit", event.Limit.String(),
		"total", event.MonthlyTotal.String(),
	)
	return nil
}

var _ adapter.Notifier = (*LogNotifier)(nil)
