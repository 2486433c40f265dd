package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence/model"
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates the gorm-backed goal store.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error
}

func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var row model.GoalModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var rows []model.GoalModel
	if err := r.db.WithContext(ctx).Scopes(ownedBy(userID), oldestFirst).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toEntities(rows, (*model.GoalModel).ToEntity), nil
}

// UpdateSaved writes only the saved amount so a concurrent rename cannot be lost.
func (r *goalRepository) UpdateSaved(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Scopes(ownedBy(goal.UserID)).
		Where("id = ?", goal.ID).
		Updates(map[string]any{"saved": goal.Saved, "updated_at": goal.UpdatedAt})
	return affected(result, domainerror.ErrGoalNotFound)
}

func (r *goalRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&model.GoalModel{})
	return affected(result, domainerror.ErrGoalNotFound)
}
