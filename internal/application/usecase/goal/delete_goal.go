package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/session"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	sessions *session.Manager
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(sessions *session.Manager) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{sessions: sessions}
}

// Execute deletes the goal.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return err
	}

	return s.DeleteGoal(ctx, input.GoalID)
}
