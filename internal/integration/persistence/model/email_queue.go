package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/domain/entity"
)

// EmailQueueModel is a row of the email_queue table. Data is stored as a JSON object.
type EmailQueueModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;index"`
	Kind              string    `gorm:"type:varchar(50);not null"`
	Recipient         string    `gorm:"type:varchar(255);not null"`
	RecipientName     string    `gorm:"type:varchar(255)"`
	Subject           string    `gorm:"type:varchar(500);not null"`
	Data              string    `gorm:"type:text;not null;default:'{}'"`
	Status            string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_email_queue_due,priority:1"`
	Attempts          int       `gorm:"not null;default:0"`
	MaxAttempts       int       `gorm:"not null;default:3"`
	LastError         string    `gorm:"type:text"`
	ProviderMessageID string    `gorm:"type:varchar(100)"`
	CreatedAt         time.Time `gorm:"not null"`
	ScheduledAt       time.Time `gorm:"not null;index:idx_email_queue_due,priority:2"`
	ClaimedAt         *time.Time
	ProcessedAt       *time.Time
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts the row to a domain EmailJob. Undecodable data is logged and dropped.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := map[string]string{}
	if m.Data != "" {
		if err := json.Unmarshal([]byte(m.Data), &data); err != nil {
			slog.Warn("Discarding undecodable email data", "error", err, "job_id", m.ID)
		}
	}

	job := &entity.EmailJob{
		ID:                m.ID,
		UserID:            m.UserID,
		Kind:              entity.EmailKind(m.Kind),
		To:                m.Recipient,
		ToName:            m.RecipientName,
		Subject:           m.Subject,
		Data:              data,
		Status:            entity.EmailStatus(m.Status),
		Attempts:          m.Attempts,
		MaxAttempts:       m.MaxAttempts,
		LastError:         m.LastError,
		ProviderMessageID: m.ProviderMessageID,
		CreatedAt:         m.CreatedAt,
		ScheduledAt:       m.ScheduledAt,
		ClaimedAt:         copyTime(m.ClaimedAt),
		ProcessedAt:       copyTime(m.ProcessedAt),
	}
	return job
}

// EmailQueueModelFromEntity converts a domain EmailJob to a row.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	data := "{}"
	if len(job.Data) > 0 {
		// A map[string]string always marshals.
		raw, _ := json.Marshal(job.Data)
		data = string(raw)
	}

	row := &EmailQueueModel{
		ID:                job.ID,
		UserID:            job.UserID,
		Kind:              string(job.Kind),
		Recipient:         job.To,
		RecipientName:     job.ToName,
		Subject:           job.Subject,
		Data:              data,
		Status:            string(job.Status),
		Attempts:          job.Attempts,
		MaxAttempts:       job.MaxAttempts,
		LastError:         job.LastError,
		ProviderMessageID: job.ProviderMessageID,
		CreatedAt:         job.CreatedAt,
		ScheduledAt:       job.ScheduledAt,
		ClaimedAt:         copyTime(job.ClaimedAt),
		ProcessedAt:       copyTime(job.ProcessedAt),
	}
	return row
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
