// Package session holds the per-user working state: the in-memory snapshot of
// expenses, goals, the monthly limit and the savings streak.
//
// A Session is created when the user logs in and discarded on logout. Every
// mutation is persisted first and applied to the snapshot only once the store
// accepted it, so a failed write never leaves memory ahead of the store.
package session

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/domain/insight"
	"github.com/cashease/backend/internal/domain/spending"
)

// Store groups the repositories a session reads from and writes to.
type Store struct {
	Expenses adapter.ExpenseRepository
	Goals    adapter.GoalRepository
	Budget   adapter.BudgetRepository
	Streaks  adapter.StreakRepository
}

// Session is the working state of one logged-in user.
type Session struct {
	mu sync.Mutex

	userID   uuid.UUID
	expenses []*entity.Expense
	goals    []*entity.Goal
	limit    entity.MonthlyLimit
	streak   entity.Streak

	store    Store
	notifier adapter.Notifier
	now      func() time.Time
	logger   *slog.Logger
}

// ExpenseInput is a new expense before validation.
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}

// GoalInput is a new goal before validation.
type GoalInput struct {
	Name       string
	Amount     decimal.Decimal
	TargetDate time.Time
}

// SavingsResult is the outcome of a successful deposit.
type SavingsResult struct {
	Goal      *entity.Goal
	Completed bool
	Streak    entity.Streak
}

// UserID returns the owner of the session.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// Now returns the current time on the session clock.
func (s *Session) Now() time.Time {
	return s.now()
}

func (s *Session) load(ctx context.Context) error {
	expenses, err := s.store.Expenses.FindByUserID(ctx, s.userID)
	if err != nil {
		return domainerror.NewSessionError(domainerror.ErrCodeSessionLoadFailed, "failed to load expenses", err)
	}

	goals, err := s.store.Goals.FindByUserID(ctx, s.userID)
	if err != nil {
		return domainerror.NewSessionError(domainerror.ErrCodeSessionLoadFailed, "failed to load goals", err)
	}

	limit, err := s.store.Budget.Get(ctx, s.userID)
	if err != nil {
		return domainerror.NewSessionError(domainerror.ErrCodeSessionLoadFailed, "failed to load monthly limit", err)
	}

	streak, err := s.store.Streaks.Get(ctx, s.userID)
	if err != nil {
		return domainerror.NewSessionError(domainerror.ErrCodeSessionLoadFailed, "failed to load streak", err)
	}

	s.expenses = expenses
	s.goals = goals
	s.limit = limit
	s.streak = streak

	return nil
}

// AddExpense validates, stores and appends a new expense.
func (s *Session) AddExpense(ctx context.Context, in ExpenseInput) (*entity.Expense, error) {
	description := strings.TrimSpace(in.Description)
	category := strings.TrimSpace(in.Category)

	switch {
	case description == "":
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeMissingExpenseFields, "description is required", nil)
	case len(description) > entity.MaxDescriptionLength:
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeDescriptionTooLong, "description must be 255 characters or less", domainerror.ErrDescriptionTooLong)
	case !in.Amount.IsPositive():
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeInvalidExpenseAmount, "amount must be greater than zero", domainerror.ErrInvalidExpenseAmount)
	case category == "":
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeInvalidCategory, "category is required", domainerror.ErrInvalidCategory)
	case in.Date.IsZero():
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeInvalidExpenseDate, "date is required", domainerror.ErrInvalidExpenseDate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expense := entity.NewExpense(s.userID, description, in.Amount, category, in.Date)
	if err := s.store.Expenses.Create(ctx, expense); err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeExpensePersistFailed, "failed to save expense", err)
	}

	now := s.now()
	before := spending.MonthlyTotal(s.expenses, now.Year(), now.Month())
	s.expenses = append(s.expenses, expense)
	after := spending.MonthlyTotal(s.expenses, now.Year(), now.Month())

	if !s.limit.Exceeded(before) && s.limit.Exceeded(after) {
		s.notifyLimitExceeded(ctx, adapter.LimitExceededEvent{
			UserID:       s.userID,
			Limit:        s.limit.Amount,
			MonthlyTotal: after,
			Month:        now.Month(),
			Year:         now.Year(),
		})
	}

	return copyExpense(expense), nil
}

// DeleteExpense removes an expense from the store and the snapshot.
func (s *Session) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.expenses, func(e *entity.Expense) bool { return e.ID == id })
	if idx < 0 {
		return domainerror.NewExpenseError(domainerror.ErrCodeExpenseNotFound, "expense not found", domainerror.ErrExpenseNotFound)
	}

	if err := s.store.Expenses.Delete(ctx, s.userID, id); err != nil {
		return domainerror.NewExpenseError(domainerror.ErrCodeExpensePersistFailed, "failed to delete expense", err)
	}

	s.expenses = slices.Delete(s.expenses, idx, idx+1)
	return nil
}

// CreateGoal validates, stores and appends a new goal with nothing saved.
func (s *Session) CreateGoal(ctx context.Context, in GoalInput) (*entity.Goal, error) {
	name := strings.TrimSpace(in.Name)

	switch {
	case name == "":
		return nil, domainerror.NewGoalError(domainerror.ErrCodeMissingGoalFields, "goal name is required", nil)
	case !in.Amount.IsPositive():
		return nil, domainerror.NewGoalError(domainerror.ErrCodeInvalidGoalAmount, "goal amount must be greater than zero", domainerror.ErrInvalidGoalAmount)
	case in.TargetDate.IsZero():
		return nil, domainerror.NewGoalError(domainerror.ErrCodeInvalidGoalDate, "goal date is required", domainerror.ErrInvalidGoalDate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := entity.NewGoal(s.userID, name, in.Amount, in.TargetDate)
	if err := s.store.Goals.Create(ctx, goal); err != nil {
		return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalPersistFailed, "failed to save goal", err)
	}

	s.goals = append(s.goals, goal)
	return goal.Clone(), nil
}

// DeleteGoal removes a goal from the store and the snapshot.
func (s *Session) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.goalIndex(id)
	if idx < 0 {
		return domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
	}

	if err := s.store.Goals.Delete(ctx, s.userID, id); err != nil {
		return domainerror.NewGoalError(domainerror.ErrCodeGoalPersistFailed, "failed to delete goal", err)
	}

	s.goals = slices.Delete(s.goals, idx, idx+1)
	return nil
}

// AddSavings deposits amount into a goal, advances the streak and fires the
// completion event when the deposit reaches the target.
func (s *Session) AddSavings(ctx context.Context, goalID uuid.UUID, amount decimal.Decimal) (*SavingsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.goalIndex(goalID)
	if idx < 0 {
		return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
	}

	updated := s.goals[idx].Clone()
	completed, err := updated.AddSavings(amount)
	if err != nil {
		return nil, savingsError(err)
	}

	if err := s.store.Goals.UpdateSaved(ctx, updated); err != nil {
		return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalPersistFailed, "failed to save goal progress", err)
	}
	s.goals[idx] = updated

	// The streak only advances in memory once stored, so a reload agrees.
	streak := s.streak
	streak.RecordActivity(s.now())
	if err := s.store.Streaks.Save(ctx, s.userID, streak); err != nil {
		s.logger.Warn("Failed to store savings streak",
			"user_id", s.userID,
			"error", err,
		)
	} else {
		s.streak = streak
	}

	if completed {
		event := adapter.GoalCompletedEvent{
			UserID:   s.userID,
			GoalID:   updated.ID,
			GoalName: updated.Name,
			Target:   updated.Amount,
			Saved:    updated.Saved,
		}
		if s.notifier != nil {
			if err := s.notifier.GoalCompleted(ctx, event); err != nil {
				s.logger.Error("Failed to notify goal completion",
					"user_id", s.userID,
					"goal_id", updated.ID,
					"error", err,
				)
			}
		}
	}

	return &SavingsResult{
		Goal:      updated.Clone(),
		Completed: completed,
		Streak:    s.streak,
	}, nil
}

// SetLimit stores a new monthly limit. Zero clears it.
func (s *Session) SetLimit(ctx context.Context, amount decimal.Decimal) (entity.MonthlyLimit, error) {
	if amount.IsNegative() {
		return entity.MonthlyLimit{}, domainerror.NewBudgetError(domainerror.ErrCodeInvalidLimitAmount, "limit must not be negative", domainerror.ErrInvalidLimitAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	limit := entity.MonthlyLimit{
		UserID:    s.userID,
		Amount:    amount,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.store.Budget.Save(ctx, limit); err != nil {
		return entity.MonthlyLimit{}, domainerror.NewBudgetError(domainerror.ErrCodeLimitPersistFailed, "failed to save limit", err)
	}

	s.limit = limit
	return limit, nil
}

// Expenses returns a copy of the expense list in insertion order.
func (s *Session) Expenses() []*entity.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Expense, len(s.expenses))
	for i, e := range s.expenses {
		out[i] = copyExpense(e)
	}
	return out
}

// Goals returns a copy of the goal list.
func (s *Session) Goals() []*entity.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.goalsCopy()
}

// Goal returns a copy of one goal.
func (s *Session) Goal(id uuid.UUID) (*entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.goalIndex(id)
	if idx < 0 {
		return nil, domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound)
	}
	return s.goals[idx].Clone(), nil
}

// Limit returns the current monthly limit.
func (s *Session) Limit() entity.MonthlyLimit {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.limit
}

// Streak returns the current savings streak.
func (s *Session) Streak() entity.Streak {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.streak
}

// Summary aggregates the session's expenses.
func (s *Session) Summary() spending.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return spending.Summarize(s.expenses)
}

// CurrentMonthTotal sums the expenses dated in the current calendar month.
func (s *Session) CurrentMonthTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	return spending.MonthlyTotal(s.expenses, now.Year(), now.Month())
}

// Insights evaluates the engine over the current snapshot.
func (s *Session) Insights(engine *insight.Engine) []insight.Insight {
	s.mu.Lock()
	defer s.mu.Unlock()

	return engine.Generate(insight.Input{
		Summary:     spending.Summarize(s.expenses),
		Limit:       s.limit.Amount,
		Goals:       s.goalsCopy(),
		StreakCount: s.streak.Count,
	})
}

func (s *Session) goalIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.goals, func(g *entity.Goal) bool { return g.ID == id })
}

func (s *Session) goalsCopy() []*entity.Goal {
	out := make([]*entity.Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.Clone()
	}
	return out
}

func (s *Session) notifyLimitExceeded(ctx context.Context, event adapter.LimitExceededEvent) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.LimitExceeded(ctx, event); err != nil {
		s.logger.Error("Failed to notify monthly limit breach",
			"user_id", s.userID,
			"error", err,
		)
	}
}

func savingsError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrInvalidSavingsAmount):
		return domainerror.NewGoalError(domainerror.ErrCodeInvalidSavingsAmount, "savings amount must be greater than zero", err)
	case errors.Is(err, domainerror.ErrGoalAlreadyCompleted):
		return domainerror.NewGoalError(domainerror.ErrCodeGoalAlreadyCompleted, "goal already completed, you cannot add more savings", err)
	default:
		return err
	}
}

func copyExpense(e *entity.Expense) *entity.Expense {
	c := *e
	return &c
}
