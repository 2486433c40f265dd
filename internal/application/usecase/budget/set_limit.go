package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/session"
)

// SetLimitInput represents the new monthly limit. Zero clears it.
type SetLimitInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// SetLimitOutput represents the limit after the update.
type SetLimitOutput struct {
	Status Status
}

// SetLimitUseCase stores the monthly spending limit.
type SetLimitUseCase struct {
	sessions *session.Manager
}

// NewSetLimitUseCase creates a new SetLimitUseCase instance.
func NewSetLimitUseCase(sessions *session.Manager) *SetLimitUseCase {
	return &SetLimitUseCase{sessions: sessions}
}

// Execute stores the limit.
func (uc *SetLimitUseCase) Execute(ctx context.Context, input SetLimitInput) (*SetLimitOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.SetLimit(ctx, input.Amount); err != nil {
		return nil, err
	}

	return &SetLimitOutput{Status: statusOf(s)}, nil
}
