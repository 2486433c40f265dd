package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashease/backend/internal/application/session"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence/memory"
)

var today = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	sessions *session.Manager
	streaks  *memory.StreakRepository
	userID   uuid.UUID
}

func newFixture() fixture {
	streaks := memory.NewStreakRepository()
	return fixture{
		sessions: session.NewManager(session.Store{
			Expenses: memory.NewExpenseRepository(),
			Goals:    memory.NewGoalRepository(),
			Budget:   memory.NewBudgetRepository(),
			Streaks:  streaks,
		}, nil, session.WithClock(func() time.Time { return today })),
		streaks: streaks,
		userID:  uuid.New(),
	}
}

func (f fixture) create(t *testing.T, name string, amount int64) View {
	t.Helper()
	out, err := NewCreateGoalUseCase(f.sessions).Execute(context.Background(), CreateGoalInput{
		UserID:     f.userID,
		Name:       name,
		Amount:     decimal.NewFromInt(amount),
		TargetDate: today.AddDate(0, 0, 20),
	})
	require.NoError(t, err)
	return out.Goal
}

func TestCreateAndListGoals(t *testing.T) {
	f := newFixture()
	created := f.create(t, "Phone", 2000)

	assert.Equal(t, 20, created.DaysLeft)
	assert.True(t, created.DailyPace.Equal(decimal.NewFromInt(100)))
	assert.True(t, created.PercentComplete.IsZero())
	assert.False(t, created.Completed)

	f.create(t, "Trip", 500)

	out, err := NewListGoalsUseCase(f.sessions).Execute(context.Background(), ListGoalsInput{UserID: f.userID})
	require.NoError(t, err)
	require.Len(t, out.Goals, 2)
	assert.Equal(t, "Phone", out.Goals[0].Goal.Name)
	assert.Equal(t, "Trip", out.Goals[1].Goal.Name)
}

func TestCreateGoal_Invalid(t *testing.T) {
	f := newFixture()
	_, err := NewCreateGoalUseCase(f.sessions).Execute(context.Background(), CreateGoalInput{
		UserID:     f.userID,
		Name:       "Nothing",
		Amount:     decimal.Zero,
		TargetDate: today,
	})
	assert.ErrorIs(t, err, domainerror.ErrInvalidGoalAmount)
}

func TestAddSavings_CompletesGoalOnce(t *testing.T) {
	f := newFixture()
	g := f.create(t, "Bike", 300)
	uc := NewAddSavingsUseCase(f.sessions)
	ctx := context.Background()

	out, err := uc.Execute(ctx, AddSavingsInput{UserID: f.userID, GoalID: g.Goal.ID, Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.False(t, out.JustCompleted)
	assert.Equal(t, 1, out.StreakCount)
	assert.True(t, out.Goal.Remaining.Equal(decimal.NewFromInt(200)))

	out, err = uc.Execute(ctx, AddSavingsInput{UserID: f.userID, GoalID: g.Goal.ID, Amount: decimal.NewFromInt(250)})
	require.NoError(t, err)
	assert.True(t, out.JustCompleted)
	assert.True(t, out.Goal.Completed)
	assert.True(t, out.Goal.PercentComplete.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, out.StreakCount, "same-day deposits do not extend the streak")

	_, err = uc.Execute(ctx, AddSavingsInput{UserID: f.userID, GoalID: g.Goal.ID, Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domainerror.ErrGoalAlreadyCompleted)

	stored, _ := f.streaks.Get(ctx, f.userID)
	assert.Equal(t, 1, stored.Count)
}

func TestGetAndDeleteGoal(t *testing.T) {
	f := newFixture()
	g := f.create(t, "Course", 900)
	ctx := context.Background()

	got, err := NewGetGoalUseCase(f.sessions).Execute(ctx, GetGoalInput{UserID: f.userID, GoalID: g.Goal.ID})
	require.NoError(t, err)
	assert.Equal(t, "Course", got.Goal.Goal.Name)

	require.NoError(t, NewDeleteGoalUseCase(f.sessions).Execute(ctx, DeleteGoalInput{UserID: f.userID, GoalID: g.Goal.ID}))

	_, err = NewGetGoalUseCase(f.sessions).Execute(ctx, GetGoalInput{UserID: f.userID, GoalID: g.Goal.ID})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)

	err = NewDeleteGoalUseCase(f.sessions).Execute(ctx, DeleteGoalInput{UserID: f.userID, GoalID: uuid.New()})
	assert.ErrorIs(t, err, domainerror.ErrGoalNotFound)
}
