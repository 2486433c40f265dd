// Package persistence holds the gorm repositories behind the application ports.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence/model"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates the gorm-backed expense store.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error
}

// FindByUserID returns expenses in the order they were recorded.
func (r *expenseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var rows []model.ExpenseModel
	if err := r.db.WithContext(ctx).Scopes(ownedBy(userID), oldestFirst).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows, (*model.ExpenseModel).ToEntity), nil
}

func (r *expenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&model.ExpenseModel{})
	return affected(result, domainerror.ErrExpenseNotFound)
}
