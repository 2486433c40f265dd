package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	"github.com/cashease/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Get returns the user's limit, a zero limit when none was saved.
func (r *budgetRepository) Get(ctx context.Context, userID uuid.UUID) (entity.MonthlyLimit, error) {
	var m model.MonthlyLimitModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.MonthlyLimit{UserID: userID}, nil
		}
		return entity.MonthlyLimit{}, result.Error
	}
	return m.ToEntity(), nil
}

// Save creates or replaces the user's limit.
func (r *budgetRepository) Save(ctx context.Context, limit entity.MonthlyLimit) error {
	m := &model.MonthlyLimitModel{
		UserID:    limit.UserID,
		Amount:    limit.Amount,
		UpdatedAt: limit.UpdatedAt,
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(m).Error
}
