// Package memory provides in-process repositories. They back the offline CLI
// and tests that do not need a database.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

// ExpenseRepository keeps expenses in insertion order.
type ExpenseRepository struct {
	mu    sync.RWMutex
	items []entity.Expense
}

// NewExpenseRepository creates an empty expense repository.
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{}
}

// Create stores a copy of the expense.
func (r *ExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *expense)
	return nil
}

// FindByUserID returns copies of the user's expenses.
func (r *ExpenseRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Expense, 0)
	for _, e := range r.items {
		if e.UserID == userID {
			out = append(out, &e)
		}
	}
	return out, nil
}

// Delete removes an expense owned by the user.
func (r *ExpenseRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := slices.IndexFunc(r.items, func(e entity.Expense) bool { return e.ID == id && e.UserID == userID })
	if idx < 0 {
		return domainerror.ErrExpenseNotFound
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return nil
}

// GoalRepository keeps goals in creation order.
type GoalRepository struct {
	mu    sync.RWMutex
	items []entity.Goal
}

// NewGoalRepository creates an empty goal repository.
func NewGoalRepository() *GoalRepository {
	return &GoalRepository{}
}

// Create stores a copy of the goal.
func (r *GoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *goal)
	return nil
}

// FindByID returns a copy of the goal.
func (r *GoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.index(id)
	if idx < 0 {
		return nil, domainerror.ErrGoalNotFound
	}
	g := r.items[idx]
	return &g, nil
}

// FindByUserID returns copies of the user's goals.
func (r *GoalRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Goal, 0)
	for _, g := range r.items {
		if g.UserID == userID {
			out = append(out, &g)
		}
	}
	return out, nil
}

// UpdateSaved stores the goal's saved amount.
func (r *GoalRepository) UpdateSaved(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.index(goal.ID)
	if idx < 0 {
		return domainerror.ErrGoalNotFound
	}
	r.items[idx].Saved = goal.Saved
	r.items[idx].UpdatedAt = goal.UpdatedAt
	return nil
}

// Delete removes a goal owned by the user.
func (r *GoalRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.index(id)
	if idx < 0 || r.items[idx].UserID != userID {
		return domainerror.ErrGoalNotFound
	}
	r.items = slices.Delete(r.items, idx, idx+1)
	return nil
}

func (r *GoalRepository) index(id uuid.UUID) int {
	return slices.IndexFunc(r.items, func(g entity.Goal) bool { return g.ID == id })
}

// BudgetRepository keeps one monthly limit per user.
type BudgetRepository struct {
	mu     sync.RWMutex
	limits map[uuid.UUID]entity.MonthlyLimit
}

// NewBudgetRepository creates an empty budget repository.
func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{limits: make(map[uuid.UUID]entity.MonthlyLimit)}
}

// Get returns the user's limit, a zero limit when none was saved.
func (r *BudgetRepository) Get(_ context.Context, userID uuid.UUID) (entity.MonthlyLimit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if l, ok := r.limits[userID]; ok {
		return l, nil
	}
	return entity.MonthlyLimit{UserID: userID}, nil
}

// Save replaces the user's limit.
func (r *BudgetRepository) Save(_ context.Context, limit entity.MonthlyLimit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limits[limit.UserID] = limit
	return nil
}

// StreakRepository keeps one savings streak per user.
type StreakRepository struct {
	mu      sync.RWMutex
	streaks map[uuid.UUID]entity.Streak
}

// NewStreakRepository creates an empty streak repository.
func NewStreakRepository() *StreakRepository {
	return &StreakRepository{streaks: make(map[uuid.UUID]entity.Streak)}
}

// Get returns the stored streak, a zero streak when none exists.
func (r *StreakRepository) Get(_ context.Context, userID uuid.UUID) (entity.Streak, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.streaks[userID], nil
}

// Save replaces the stored streak.
func (r *StreakRepository) Save(_ context.Context, userID uuid.UUID, streak entity.Streak) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streaks[userID] = streak
	return nil
}

// UserRepository keeps users keyed by ID with unique emails.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
}

// NewUserRepository creates an empty user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]entity.User)}
}

// Create stores the user, rejecting a duplicate email.
func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByEmail(user.Email) != nil {
		return domainerror.ErrEmailAlreadyExists
	}
	r.users[user.ID] = *user
	return nil
}

// FindByID returns a copy of the user.
func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return &u, nil
}

// FindByEmail returns a copy of the user with the given email.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u := r.findByEmail(email)
	if u == nil {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

// ExistsByEmail reports whether the email is taken.
func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByEmail(email) != nil, nil
}

func (r *UserRepository) findByEmail(email string) *entity.User {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u
		}
	}
	return nil
}

var (
	_ adapter.ExpenseRepository = (*ExpenseRepository)(nil)
	_ adapter.GoalRepository    = (*GoalRepository)(nil)
	_ adapter.BudgetRepository  = (*BudgetRepository)(nil)
	_ adapter.StreakRepository  = (*StreakRepository)(nil)
	_ adapter.UserRepository    = (*UserRepository)(nil)
)
