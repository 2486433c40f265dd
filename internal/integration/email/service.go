// Package email queues notification emails and delivers them through Resend.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

// Service turns session events into queued email jobs. It implements adapter.Notifier.
type Service struct {
	queue    adapter.EmailQueueRepository
	users    adapter.UserRepository
	currency string
	now      func() time.Time
	logger   *slog.Logger
}

// NewService creates a new email service. Amounts in emails are prefixed with currency.
func NewService(queue adapter.EmailQueueRepository, users adapter.UserRepository, currency string) *Service {
	return &Service{
		queue:    queue,
		users:    users,
		currency: currency,
		now:      time.Now,
		logger:   slog.Default().With("component", "email-service"),
	}
}

// GoalCompleted queues a congratulation email for the goal's owner.
func (s *Service) GoalCompleted(ctx context.Context, event adapter.GoalCompletedEvent) error {
	return s.enqueue(ctx, event.UserID, entity.EmailGoalCompleted,
		fmt.Sprintf("You reached your goal %q - CashEase", event.GoalName),
		map[string]string{
			"goal_name": event.GoalName,
			"target":    s.money(event.Target),
			"saved":     s.money(event.Saved),
		})
}

// LimitExceeded queues a warning email when the monthly limit is crossed.
func (s *Service) LimitExceeded(ctx context.Context, event adapter.LimitExceededEvent) error {
	return s.enqueue(ctx, event.UserID, entity.EmailLimitExceeded,
		"Monthly spending limit exceeded - CashEase",
		map[string]string{
			"month": fmt.Sprintf("%s %d", event.Month, event.Year),
			"limit": s.money(event.Limit),
			"total": s.money(event.MonthlyTotal),
			"over":  s.money(event.MonthlyTotal.Sub(event.Limit)),
		})
}

// enqueue queues an email for the user unless they opted out of notifications.
func (s *Service) enqueue(ctx context.Context, userID uuid.UUID, kind entity.EmailKind, subject string, data map[string]string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to load email recipient", err)
	}
	if !user.EmailNotifications {
		s.logger.Debug("user opted out of notification emails", "user_id", user.ID, "kind", kind)
		return nil
	}

	data["user_name"] = user.Name
	job := entity.NewEmailJob(user.ID, kind, user.Email, user.Name, subject, data, s.now())
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			fmt.Sprintf("failed to queue %s email", kind),
			err,
		)
	}

	s.logger.Info("email queued", "job_id", job.ID, "kind", kind, "user_id", user.ID)
	return nil
}

func (s *Service) money(d decimal.Decimal) string {
	return s.currency + d.StringFixed(2)
}

// Ensure Service implements adapter.Notifier.
var _ adapter.Notifier = (*Service)(nil)
