package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/session"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []View
}

// ListGoalsUseCase returns the user's goals in creation order.
type ListGoalsUseCase struct {
	sessions *session.Manager
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(sessions *session.Manager) *ListGoalsUseCase {
	return &ListGoalsUseCase{sessions: sessions}
}

// Execute lists the goals.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	today := s.Now()
	goals := s.Goals()
	views := make([]View, 0, len(goals))
	for _, g := range goals {
		views = append(views, newView(g, today))
	}

	return &ListGoalsOutput{Goals: views}, nil
}
