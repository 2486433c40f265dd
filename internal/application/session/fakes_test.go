package session

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
)

var errStore = errors.New("store unavailable")

type fakeExpenses struct {
	items     []*entity.Expense
	createErr error
	deleteErr error
	findErr   error
}

func (f *fakeExpenses) Create(_ context.Context, e *entity.Expense) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, e)
	return nil
}

func (f *fakeExpenses) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*entity.Expense
	for _, e := range f.items {
		if e.UserID == userID {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeExpenses) Delete(_ context.Context, _, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.items = slices.DeleteFunc(f.items, func(e *entity.Expense) bool { return e.ID == id })
	return nil
}

type fakeGoals struct {
	items     map[uuid.UUID]*entity.Goal
	order     []uuid.UUID
	createErr error
	updateErr error
	deleteErr error
}

func newFakeGoals() *fakeGoals {
	return &fakeGoals{items: make(map[uuid.UUID]*entity.Goal)}
}

func (f *fakeGoals) Create(_ context.Context, g *entity.Goal) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items[g.ID] = g.Clone()
	f.order = append(f.order, g.ID)
	return nil
}

func (f *fakeGoals) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	g, ok := f.items[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return g.Clone(), nil
}

func (f *fakeGoals) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, id := range f.order {
		if g, ok := f.items[id]; ok && g.UserID == userID {
			out = append(out, g.Clone())
		}
	}
	return out, nil
}

func (f *fakeGoals) UpdateSaved(_ context.Context, g *entity.Goal) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.items[g.ID] = g.Clone()
	return nil
}

func (f *fakeGoals) Delete(_ context.Context, _, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.items, id)
	return nil
}

type fakeBudget struct {
	limits  map[uuid.UUID]entity.MonthlyLimit
	saveErr error
}

func (f *fakeBudget) Get(_ context.Context, userID uuid.UUID) (entity.MonthlyLimit, error) {
	l, ok := f.limits[userID]
	if !ok {
		return entity.MonthlyLimit{UserID: userID}, nil
	}
	return l, nil
}

func (f *fakeBudget) Save(_ context.Context, l entity.MonthlyLimit) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.limits[l.UserID] = l
	return nil
}

type fakeStreaks struct {
	streaks map[uuid.UUID]entity.Streak
	saveErr error
}

func (f *fakeStreaks) Get(_ context.Context, userID uuid.UUID) (entity.Streak, error) {
	return f.streaks[userID], nil
}

func (f *fakeStreaks) Save(_ context.Context, userID uuid.UUID, s entity.Streak) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.streaks[userID] = s
	return nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	completed []adapter.GoalCompletedEvent
	exceeded  []adapter.LimitExceededEvent
	err       error
}

func (n *recordingNotifier) GoalCompleted(_ context.Context, e adapter.GoalCompletedEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.completed = append(n.completed, e)
	return n.err
}

func (n *recordingNotifier) LimitExceeded(_ context.Context, e adapter.LimitExceededEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.exceeded = append(n.exceeded, e)
	return n.err
}
