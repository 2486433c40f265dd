package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/session"
)

// GetLimitInput represents the input for reading the limit.
type GetLimitInput struct {
	UserID uuid.UUID
}

// GetLimitOutput represents the current limit status.
type GetLimitOutput struct {
	Status Status
}

// GetLimitUseCase reports the limit and how much of it the current month used.
type GetLimitUseCase struct {
	sessions *session.Manager
}

// NewGetLimitUseCase creates a new GetLimitUseCase instance.
func NewGetLimitUseCase(sessions *session.Manager) *GetLimitUseCase {
	return &GetLimitUseCase{sessions: sessions}
}

// Execute reads the limit status.
func (uc *GetLimitUseCase) Execute(ctx context.Context, input GetLimitInput) (*GetLimitOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetLimitOutput{Status: statusOf(s)}, nil
}
