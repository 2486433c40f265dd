package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence/model"
)

type emailQueueRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewEmailQueueRepository creates the gorm-backed email queue.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, "failed to queue email", err)
	}
	return nil
}

func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	var rows []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", entity.EmailQueued, now).
		Order("scheduled_at").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows, (*model.EmailQueueModel).ToEntity), nil
}

func (r *emailQueueRepository) Claim(ctx context.Context, job *entity.EmailJob) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("id = ? AND status = ?", job.ID, entity.EmailQueued).
		Updates(map[string]any{"status": job.Status, "claimed_at": job.ClaimedAt})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *emailQueueRepository) RequeueStale(ctx context.Context, claimedBefore, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("status = ? AND claimed_at < ?", entity.EmailSending, claimedBefore).
		Updates(map[string]any{"status": entity.EmailQueued, "scheduled_at": now, "claimed_at": nil})
	return result.RowsAffected, result.Error
}

func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	return r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error
}

func (r *emailQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	var row model.EmailQueueModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domainerror.ErrEmailJobNotFound
	case err != nil:
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *emailQueueRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.EmailJob, error) {
	var rows []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toEntities(rows, (*model.EmailQueueModel).ToEntity), nil
}

func (r *emailQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := r.now().AddDate(0, 0, -olderThanDays)
	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", entity.EmailDelivered, cutoff).
		Delete(&model.EmailQueueModel{})
	return result.RowsAffected, result.Error
}
