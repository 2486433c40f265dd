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

// streakRepository implements the adapter.StreakRepository interface on the database.
// It is used when no Redis instance is configured.
type streakRepository struct {
	db *gorm.DB
}

// NewStreakRepository creates a new database-backed streak repository.
func NewStreakRepository(db *gorm.DB) adapter.StreakRepository {
	return &streakRepository{
		db: db,
	}
}

// Get returns the stored streak, a zero streak when none exists.
func (r *streakRepository) Get(ctx context.Context, userID uuid.UUID) (entity.Streak, error) {
	var m model.StreakModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.Streak{}, nil
		}
		return entity.Streak{}, result.Error
	}
	return m.ToEntity(), nil
}

// Save replaces the stored streak.
func (r *streakRepository) Save(ctx context.Context, userID uuid.UUID, streak entity.Streak) error {
	m := &model.StreakModel{
		UserID:       userID,
		Count:        streak.Count,
		LastActivity: streak.LastActivity,
		UpdatedAt:    time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"count", "last_activity", "updated_at"}),
		}).
		Create(m).Error
}
