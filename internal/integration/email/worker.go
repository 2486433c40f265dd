package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/email/templates"
)

// Worker polls the email queue, renders due jobs and hands them to the sender.
// Sent jobs older than the retention window are deleted once a day.
type Worker struct {
	queue           adapter.EmailQueueRepository
	sender          adapter.EmailSender
	renderer        *templates.Renderer
	pollInterval    time.Duration
	batchSize       int
	retentionDays   int
	claimTimeout    time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	// RetentionDays is how long sent jobs are kept. Zero disables cleanup.
	RetentionDays int
	// ClaimTimeout is how long a job may stay processing before it is
	// requeued for another attempt.
	ClaimTimeout time.Duration
}

func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:  5 * time.Second,
		BatchSize:     10,
		RetentionDays: 30,
		ClaimTimeout:  10 * time.Minute,
	}
}

// NewWorker fills zero PollInterval, BatchSize and ClaimTimeout from DefaultWorkerConfig.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.ClaimTimeout <= 0 {
		config.ClaimTimeout = defaults.ClaimTimeout
	}

	return &Worker{
		queue:           queue,
		sender:          sender,
		renderer:        renderer,
		pollInterval:    config.PollInterval,
		batchSize:       config.BatchSize,
		retentionDays:   config.RetentionDays,
		claimTimeout:    config.ClaimTimeout,
		cleanupInterval: 24 * time.Hour,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          slog.Default().With("component", "email-worker"),
	}
}

// Start runs the worker loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	cleanup := time.NewTicker(w.cleanupInterval)
	defer cleanup.Stop()

	w.processBatch(ctx)
	w.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		case <-cleanup.C:
			w.cleanup(ctx)
		}
	}
}

// ProcessNow processes one batch of due emails immediately.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}

func (w *Worker) processBatch(ctx context.Context) {
	w.requeueStale(ctx)

	jobs, err := w.queue.GetPendingJobs(ctx, w.now(), w.batchSize)
	if err != nil {
		w.logger.Error("failed to get pending email jobs", "error", err)
		return
	}
	if len(jobs) > 0 {
		w.logger.Debug("processing email batch", "count", len(jobs))
	}
	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.processJob(ctx, job)
	}
}

// requeueStale hands jobs whose worker died mid-send back to the queue.
// Delivery is at least once: a job that was sent but never settled goes out again.
func (w *Worker) requeueStale(ctx context.Context) {
	now := w.now()
	n, err := w.queue.RequeueStale(ctx, now.Add(-w.claimTimeout), now)
	if err != nil {
		w.logger.Error("failed to requeue stale email jobs", "error", err)
		return
	}
	if n > 0 {
		w.logger.Warn("requeued stale email jobs", "count", n)
	}
}

// processJob claims a job before sending so a second worker polling the same
// table skips it.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := w.logger.With("job_id", job.ID, "kind", job.Kind, "user_id", job.UserID)

	job.Claim(w.now())
	claimed, err := w.queue.Claim(ctx, job)
	if err != nil {
		logger.Error("failed to claim email job", "error", err)
		return
	}
	if !claimed {
		logger.Debug("email job already claimed")
		return
	}

	providerID, err := w.deliver(ctx, job)
	w.settle(job, providerID, err)
	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		logger.Error("failed to store email job outcome", "status", job.Status, "error", updateErr)
		return
	}

	switch job.Status {
	case entity.EmailDelivered:
		logger.Info("email sent", "provider_id", providerID)
	case entity.EmailFailed:
		logger.Warn("email job gave up", "attempts", job.Attempts, "last_error", job.LastError)
	default:
		logger.Info("email job scheduled for retry", "attempts", job.Attempts, "scheduled_at", job.ScheduledAt, "error", err)
	}
}

func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) (string, error) {
	html, text, err := w.render(job)
	if err != nil {
		return "", err
	}
	receipt, err := w.sender.Send(ctx, adapter.OutgoingEmail{
		To:      job.To,
		Name:    job.ToName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return "", err
	}
	return receipt.ProviderID, nil
}

// settle records the outcome on the job. Template problems and permanent
// provider rejections are not retried.
func (w *Worker) settle(job *entity.EmailJob, providerID string, err error) {
	if err == nil {
		job.Delivered(providerID, w.now())
		return
	}
	var emailErr *domainerror.EmailError
	permanent := errors.As(err, &emailErr) && emailErr.Code != domainerror.ErrCodeTemporaryEmailFailure
	job.Failed(err, permanent, w.now())
}

func (w *Worker) render(job *entity.EmailJob) (string, string, error) {
	var data any
	switch job.Kind {
	case entity.EmailGoalCompleted:
		data = templates.GoalCompletedData{
			UserName: job.Data["user_name"],
			GoalName: job.Data["goal_name"],
			Target:   job.Data["target"],
			Saved:    job.Data["saved"],
		}
	case entity.EmailLimitExceeded:
		data = templates.LimitExceededData{
			UserName: job.Data["user_name"],
			Month:    job.Data["month"],
			Limit:    job.Data["limit"],
			Total:    job.Data["total"],
			Over:     job.Data["over"],
		}
	default:
		return "", "", domainerror.NewEmailError(domainerror.ErrCodeInvalidTemplate,
			fmt.Sprintf("no template for %q emails", job.Kind), domainerror.ErrInvalidTemplate)
	}

	html, text, err := w.renderer.Render(string(job.Kind), data)
	if err != nil {
		return "", "", domainerror.NewEmailError(domainerror.ErrCodeTemplateRenderFailed, "render failed", err)
	}
	return html, text, nil
}

func (w *Worker) cleanup(ctx context.Context) {
	if w.retentionDays <= 0 {
		return
	}
	n, err := w.queue.DeleteOldSentJobs(ctx, w.retentionDays)
	if err != nil {
		w.logger.Error("failed to delete old sent jobs", "error", err)
		return
	}
	if n > 0 {
		w.logger.Info("deleted old sent email jobs", "count", n)
	}
}
