// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create stores a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByUserID retrieves all expenses of a user in insertion order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// Delete removes an expense owned by the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
