// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/domain/entity"
)

// StreakRepository stores the savings streak of each user.
type StreakRepository interface {
	// Get returns the stored streak, a zero streak when none exists.
	Get(ctx context.Context, userID uuid.UUID) (entity.Streak, error)

	// Save replaces the stored streak.
	Save(ctx context.Context, userID uuid.UUID, streak entity.Streak) error
}
