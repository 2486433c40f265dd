// Package insight contains the dashboard read use cases: insights and summary.
package insight

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/insight"
)

// GetInsightsInput represents the input for generating insights.
type GetInsightsInput struct {
	UserID uuid.UUID
}

// GetInsightsOutput holds the insights in display order.
type GetInsightsOutput struct {
	Insights []insight.Insight
}

// GetInsightsUseCase runs the insight engine over the user's session.
type GetInsightsUseCase struct {
	sessions *session.Manager
	engine   *insight.Engine
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(sessions *session.Manager, engine *insight.Engine) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		sessions: sessions,
		engine:   engine,
	}
}

// Execute generates the insights.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetInsightsOutput{Insights: s.Insights(uc.engine)}, nil
}
