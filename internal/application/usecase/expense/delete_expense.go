package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/session"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase removes an expense.
type DeleteExpenseUseCase struct {
	sessions *session.Manager
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(sessions *session.Manager) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{sessions: sessions}
}

// Execute deletes the expense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return err
	}

	return s.DeleteExpense(ctx, input.ExpenseID)
}
