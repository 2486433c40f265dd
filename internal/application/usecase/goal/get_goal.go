package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/session"
)

// GetGoalInput represents the input for fetching one goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of fetching one goal.
type GetGoalOutput struct {
	Goal View
}

// GetGoalUseCase returns a single goal of the user.
type GetGoalUseCase struct {
	sessions *session.Manager
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(sessions *session.Manager) *GetGoalUseCase {
	return &GetGoalUseCase{sessions: sessions}
}

// Execute fetches the goal.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	g, err := s.Goal(input.GoalID)
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{Goal: newView(g, s.Now())}, nil
}
