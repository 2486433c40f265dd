// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/domain/entity"
)

// BudgetRepository stores the singleton monthly limit of each user.
type BudgetRepository interface {
	// Get returns the user's limit, a zero limit when none was saved.
	Get(ctx context.Context, userID uuid.UUID) (entity.MonthlyLimit, error)

	// Save creates or replaces the user's limit.
	Save(ctx context.Context, limit entity.MonthlyLimit) error
}
