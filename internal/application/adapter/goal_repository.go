// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user in creation order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// UpdateSaved stores the accumulated amount of a goal.
	UpdateSaved(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal owned by the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
