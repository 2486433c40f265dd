package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailKind selects the template an email job is rendered with.
type EmailKind string

const (
	EmailGoalCompleted EmailKind = "goal_completed"
	EmailLimitExceeded EmailKind = "limit_exceeded"
)

// EmailStatus tracks a job through the queue.
type EmailStatus string

const (
	EmailQueued    EmailStatus = "pending"
	EmailSending   EmailStatus = "processing"
	EmailDelivered EmailStatus = "sent"
	EmailFailed    EmailStatus = "failed"
)

const defaultEmailAttempts = 3

// emailBackoff is indexed by the number of failed attempts so far, minus one.
var emailBackoff = []time.Duration{30 * time.Second, 2 * time.Minute, 10 * time.Minute}

// EmailJob is a queued notification. Data holds preformatted template values.
type EmailJob struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Kind              EmailKind
	To                string
	ToName            string
	Subject           string
	Data              map[string]string
	Status            EmailStatus
	Attempts          int
	MaxAttempts       int
	LastError         string
	ProviderMessageID string
	CreatedAt         time.Time
	ScheduledAt       time.Time
	ClaimedAt         *time.Time
	ProcessedAt       *time.Time
}

// NewEmailJob queues an email for immediate delivery.
func NewEmailJob(userID uuid.UUID, kind EmailKind, to, toName, subject string, data map[string]string, now time.Time) *EmailJob {
	now = now.UTC()
	return &EmailJob{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		To:          to,
		ToName:      toName,
		Subject:     subject,
		Data:        data,
		Status:      EmailQueued,
		MaxAttempts: defaultEmailAttempts,
		CreatedAt:   now,
		ScheduledAt: now,
	}
}

// Due reports whether the worker should pick the job up at now.
func (j *EmailJob) Due(now time.Time) bool {
	return j.Status == EmailQueued && !now.Before(j.ScheduledAt)
}

// Claim marks the job as being sent. Only the worker whose conditional store
// update succeeds may send it.
func (j *EmailJob) Claim(at time.Time) {
	at = at.UTC()
	j.Status = EmailSending
	j.ClaimedAt = &at
}

// Stale reports whether a claimed job has been processing since before cutoff,
// which means its worker died between claim and outcome.
func (j *EmailJob) Stale(cutoff time.Time) bool {
	return j.Status == EmailSending && j.ClaimedAt != nil && j.ClaimedAt.Before(cutoff)
}

// Delivered records a successful send.
func (j *EmailJob) Delivered(providerMessageID string, at time.Time) {
	at = at.UTC()
	j.Status = EmailDelivered
	j.ProviderMessageID = providerMessageID
	j.ProcessedAt = &at
}

// Failed records a failed attempt. The job is requeued with backoff unless the
// failure is permanent or attempts are used up.
func (j *EmailJob) Failed(err error, permanent bool, at time.Time) {
	at = at.UTC()
	j.Attempts++
	j.LastError = err.Error()

	if permanent || j.Attempts >= j.MaxAttempts {
		j.Status = EmailFailed
		j.ProcessedAt = &at
		return
	}

	step := min(j.Attempts-1, len(emailBackoff)-1)
	j.Status = EmailQueued
	j.ScheduledAt = at.Add(emailBackoff[max(step, 0)])
}
