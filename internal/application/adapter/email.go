package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/domain/entity"
)

// OutgoingEmail is a rendered message ready for delivery.
type OutgoingEmail struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// DeliveryReceipt carries the provider's message ID.
type DeliveryReceipt struct {
	ProviderID string
}

// EmailSender delivers rendered emails through a provider such as Resend.
type EmailSender interface {
	Send(ctx context.Context, msg OutgoingEmail) (*DeliveryReceipt, error)
}

// EmailQueueRepository persists notification jobs until the worker delivers them.
type EmailQueueRepository interface {
	Create(ctx context.Context, job *entity.EmailJob) error
	// GetPendingJobs returns up to limit jobs due at now, oldest schedule first.
	GetPendingJobs(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error)
	// Claim marks a queued job as sending. It reports false when another
	// worker already took the job.
	Claim(ctx context.Context, job *entity.EmailJob) (bool, error)
	// RequeueStale returns jobs claimed before claimedBefore to the queue,
	// due at now.
	RequeueStale(ctx context.Context, claimedBefore, now time.Time) (int64, error)
	Update(ctx context.Context, job *entity.EmailJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)
	// GetByUserID lists a user's jobs, newest first.
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.EmailJob, error)
	// DeleteOldSentJobs purges delivered jobs older than the retention window.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
