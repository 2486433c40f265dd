package goal

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/session"
)

// AddSavingsInput represents a deposit into a goal.
type AddSavingsInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
}

// AddSavingsOutput represents the outcome of a deposit.
type AddSavingsOutput struct {
	Goal View
	// JustCompleted is true only for the deposit that reached the target.
	JustCompleted bool
	StreakCount   int
}

// AddSavingsUseCase deposits into a goal and advances the savings streak.
type AddSavingsUseCase struct {
	sessions *session.Manager
}

// NewAddSavingsUseCase creates a new AddSavingsUseCase instance.
func NewAddSavingsUseCase(sessions *session.Manager) *AddSavingsUseCase {
	return &AddSavingsUseCase{sessions: sessions}
}

// Execute performs the deposit.
func (uc *AddSavingsUseCase) Execute(ctx context.Context, input AddSavingsInput) (*AddSavingsOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	result, err := s.AddSavings(ctx, input.GoalID, input.Amount)
	if err != nil {
		return nil, err
	}

	return &AddSavingsOutput{
		Goal:          newView(result.Goal, s.Now()),
		JustCompleted: result.Completed,
		StreakCount:   result.Streak.Count,
	}, nil
}
