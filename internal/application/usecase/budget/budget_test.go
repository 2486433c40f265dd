package budget

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

func TestSetAndGetLimit(t *testing.T) {
	now := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)
	budgets := memory.NewBudgetRepository()
	m := session.NewManager(session.Store{
		Expenses: memory.NewExpenseRepository(),
		Goals:    memory.NewGoalRepository(),
		Budget:   budgets,
		Streaks:  memory.NewStreakRepository(),
	}, nil, session.WithClock(func() time.Time { return now }))
	ctx := context.Background()
	userID := uuid.New()

	got, err := NewGetLimitUseCase(m).Execute(ctx, GetLimitInput{UserID: userID})
	require.NoError(t, err)
	assert.False(t, got.Status.Limit.IsSet())
	assert.True(t, got.Status.Usage.IsZero())

	s, err := m.Get(ctx, userID)
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, session.ExpenseInput{Description: "Rent", Amount: decimal.NewFromInt(600), Category: "Bills", Date: now})
	require.NoError(t, err)
	_, err = s.AddExpense(ctx, session.ExpenseInput{Description: "Old", Amount: decimal.NewFromInt(900), Category: "Bills", Date: now.AddDate(0, -1, 0)})
	require.NoError(t, err)

	set, err := NewSetLimitUseCase(m).Execute(ctx, SetLimitInput{UserID: userID, Amount: decimal.NewFromInt(800)})
	require.NoError(t, err)
	assert.True(t, set.Status.MonthlyTotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, set.Status.Usage.Equal(decimal.RequireFromString("0.75")))
	assert.True(t, set.Status.Remaining.Equal(decimal.NewFromInt(200)))
	assert.False(t, set.Status.Exceeded)
	assert.Equal(t, time.February, set.Status.Month)

	stored, _ := budgets.Get(ctx, userID)
	assert.True(t, stored.Amount.Equal(decimal.NewFromInt(800)))

	set, err = NewSetLimitUseCase(m).Execute(ctx, SetLimitInput{UserID: userID, Amount: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.True(t, set.Status.Exceeded)
	assert.True(t, set.Status.Remaining.IsZero())

	_, err = NewSetLimitUseCase(m).Execute(ctx, SetLimitInput{UserID: userID, Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domainerror.ErrInvalidLimitAmount)

	set, err = NewSetLimitUseCase(m).Execute(ctx, SetLimitInput{UserID: userID, Amount: decimal.Zero})
	require.NoError(t, err)
	assert.False(t, set.Status.Exceeded)
}
