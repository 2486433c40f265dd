package goal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/session"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID     uuid.UUID
	Name       string
	Amount     decimal.Decimal
	TargetDate time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal View
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	sessions *session.Manager
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(sessions *session.Manager) *CreateGoalUseCase {
	return &CreateGoalUseCase{sessions: sessions}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	g, err := s.CreateGoal(ctx, session.GoalInput{
		Name:       input.Name,
		Amount:     input.Amount,
		TargetDate: input.TargetDate,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGoalOutput{Goal: newView(g, s.Now())}, nil
}
