package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/session"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence/memory"
)

var now = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

type limitRecorder struct {
	events []adapter.LimitExceededEvent
}

func (r *limitRecorder) GoalCompleted(context.Context, adapter.GoalCompletedEvent) error { return nil }

func (r *limitRecorder) LimitExceeded(_ context.Context, e adapter.LimitExceededEvent) error {
	r.events = append(r.events, e)
	return nil
}

func newManager(n adapter.Notifier) *session.Manager {
	return session.NewManager(session.Store{
		Expenses: memory.NewExpenseRepository(),
		Goals:    memory.NewGoalRepository(),
		Budget:   memory.NewBudgetRepository(),
		Streaks:  memory.NewStreakRepository(),
	}, n, session.WithClock(func() time.Time { return now }))
}

func add(t *testing.T, m *session.Manager, userID uuid.UUID, desc, amount, category string, date time.Time) {
	t.Helper()
	_, err := NewCreateExpenseUseCase(m).Execute(context.Background(), CreateExpenseInput{
		UserID:      userID,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        date,
	})
	require.NoError(t, err)
}

func TestCreateAndListExpenses(t *testing.T) {
	m := newManager(nil)
	userID := uuid.New()

	add(t, m, userID, "Groceries", "450.25", "Food", now)
	add(t, m, userID, "Train", "60", "Transport", now.AddDate(0, -1, 0))
	add(t, m, userID, "Dinner", "300", "Food", now.AddDate(0, 0, -2))

	list := NewListExpensesUseCase(m)

	all, err := list.Execute(context.Background(), ListExpensesInput{UserID: userID})
	require.NoError(t, err)
	require.Len(t, all.Expenses, 3)
	assert.Equal(t, "Groceries", all.Expenses[0].Description)
	assert.True(t, all.Total.Equal(decimal.RequireFromString("810.25")))

	april, err := list.Execute(context.Background(), ListExpensesInput{UserID: userID, Month: "2026-04"})
	require.NoError(t, err)
	assert.Len(t, april.Expenses, 2)
	assert.Equal(t, time.April, april.Month)
	assert.True(t, april.Total.Equal(decimal.RequireFromString("750.25")))

	_, err = list.Execute(context.Background(), ListExpensesInput{UserID: userID, Month: "April"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidMonthFilter)
}

func TestCreateExpense_Validation(t *testing.T) {
	m := newManager(nil)
	uc := NewCreateExpenseUseCase(m)
	userID := uuid.New()

	tests := []struct {
		name  string
		input CreateExpenseInput
		want  domainerror.ExpenseErrorCode
	}{
		{name: "missing description", input: CreateExpenseInput{Amount: decimal.NewFromInt(1), Category: "Food", Date: now}, want: domainerror.ErrCodeMissingExpenseFields},
		{name: "zero amount", input: CreateExpenseInput{Description: "x", Category: "Food", Date: now}, want: domainerror.ErrCodeInvalidExpenseAmount},
		{name: "no category", input: CreateExpenseInput{Description: "x", Amount: decimal.NewFromInt(1), Date: now}, want: domainerror.ErrCodeInvalidCategory},
		{name: "no date", input: CreateExpenseInput{Description: "x", Amount: decimal.NewFromInt(1), Category: "Food"}, want: domainerror.ErrCodeInvalidExpenseDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = userID
			_, err := uc.Execute(context.Background(), tt.input)
			var expErr *domainerror.ExpenseError
			require.True(t, errors.As(err, &expErr), "got %v", err)
			assert.Equal(t, tt.want, expErr.Code)
		})
	}
}

func TestCreateExpense_FiresLimitExceededOnce(t *testing.T) {
	rec := &limitRecorder{}
	m := newManager(rec)
	userID := uuid.New()

	s, err := m.Get(context.Background(), userID)
	require.NoError(t, err)
	_, err = s.SetLimit(context.Background(), decimal.NewFromInt(1000))
	require.NoError(t, err)

	add(t, m, userID, "Rent share", "900", "Bills", now)
	assert.Empty(t, rec.events)

	add(t, m, userID, "Shoes", "200", "Shopping", now)
	require.Len(t, rec.events, 1)
	assert.True(t, rec.events[0].MonthlyTotal.Equal(decimal.NewFromInt(1100)))

	out, err := NewCreateExpenseUseCase(m).Execute(context.Background(), CreateExpenseInput{
		UserID:      userID,
		Description: "Snacks",
		Amount:      decimal.NewFromInt(50),
		Category:    "Food",
		Date:        now,
	})
	require.NoError(t, err)
	assert.Len(t, rec.events, 1)
	assert.True(t, out.LimitExceeded)
	assert.True(t, out.MonthlyTotal.Equal(decimal.NewFromInt(1150)))
}

func TestDeleteExpense(t *testing.T) {
	m := newManager(nil)
	userID := uuid.New()
	add(t, m, userID, "Cab", "120", "Transport", now)

	list, _ := NewListExpensesUseCase(m).Execute(context.Background(), ListExpensesInput{UserID: userID})
	id := list.Expenses[0].ID

	uc := NewDeleteExpenseUseCase(m)
	require.NoError(t, uc.Execute(context.Background(), DeleteExpenseInput{UserID: userID, ExpenseID: id}))
	assert.ErrorIs(t, uc.Execute(context.Background(), DeleteExpenseInput{UserID: userID, ExpenseID: id}), domainerror.ErrExpenseNotFound)
}

type captureSuggester struct {
	available bool
	req       adapter.CategorySuggestionRequest
	err       error
}

func (c *captureSuggester) IsAvailable() bool { return c.available }

func (c *captureSuggester) Suggest(_ context.Context, req adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	c.req = req
	if c.err != nil {
		return nil, c.err
	}
	return &adapter.CategorySuggestion{Category: "Pets", Confidence: 0.9}, nil
}

func TestSuggestCategory(t *testing.T) {
	m := newManager(nil)
	userID := uuid.New()
	add(t, m, userID, "Vet visit", "700", "Pets", now)
	add(t, m, userID, "Pizza", "250", "food", now)

	sugg := &captureSuggester{available: true}
	out, err := NewSuggestCategoryUseCase(m, sugg).Execute(context.Background(), SuggestCategoryInput{
		UserID:      userID,
		Description: "dog food",
		Amount:      decimal.NewFromInt(300),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pets", out.Category)
	assert.Contains(t, sugg.req.Categories, "Pets")
	assert.NotContains(t, sugg.req.Categories, "food")
	assert.Equal(t, "300.00", sugg.req.Amount)
}

func TestSuggestCategory_Errors(t *testing.T) {
	m := newManager(nil)
	userID := uuid.New()

	_, err := NewSuggestCategoryUseCase(m, &captureSuggester{available: true}).Execute(context.Background(), SuggestCategoryInput{UserID: userID})
	assert.Error(t, err)

	_, err = NewSuggestCategoryUseCase(m, &captureSuggester{}).Execute(context.Background(), SuggestCategoryInput{UserID: userID, Description: "x"})
	var expErr *domainerror.ExpenseError
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, domainerror.ErrCodeSuggestionFailed, expErr.Code)

	_, err = NewSuggestCategoryUseCase(m, &captureSuggester{available: true, err: errors.New("quota")}).Execute(context.Background(), SuggestCategoryInput{UserID: userID, Description: "x"})
	require.ErrorAs(t, err, &expErr)
	assert.Equal(t, domainerror.ErrCodeSuggestionFailed, expErr.Code)
}
