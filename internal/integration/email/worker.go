package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/email/templates"
)

// Worker drains the email queue through the sender.
type Worker struct {
	queue           adapter.EmailQueueRepository
	sender          adapter.EmailSender
	renderer        *templates.Renderer
	pollInterval    time.Duration
	batchSize       int
	cleanupInterval time.Duration
	retentionDays   int
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	// CleanupInterval is how often sent jobs older than RetentionDays are purged.
	CleanupInterval time.Duration
	RetentionDays   int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:    5 * time.Second,
		BatchSize:       10,
		CleanupInterval: time.Hour,
		RetentionDays:   30,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = defaults.CleanupInterval
	}
	if config.RetentionDays <= 0 {
		config.RetentionDays = defaults.RetentionDays
	}

	return &Worker{
		queue:           queue,
		sender:          sender,
		renderer:        renderer,
		pollInterval:    config.PollInterval,
		batchSize:       config.BatchSize,
		cleanupInterval: config.CleanupInterval,
		retentionDays:   config.RetentionDays,
	}
}

// Start runs the worker loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	poll := time.NewTicker(w.pollInterval)
	defer poll.Stop()
	cleanup := time.NewTicker(w.cleanupInterval)
	defer cleanup.Stop()

	// Drain whatever queued up while the process was down
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-poll.C:
			w.processBatch(ctx)
		case <-cleanup.C:
			w.purgeSent(ctx)
		}
	}
}

func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.processJob(ctx, job)
	}
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	// Claim the job so the next poll skips it
	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	// A template that fails to render will fail on every retry
	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)

		w.handleFailure(ctx, job, err, domainerror.IsPermanentEmailFailure(err))
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent successfully", "resend_id", result.ResendID)
}

func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplateWelcome:
		data = templates.WelcomeData{
			DisplayName: getString(job.TemplateData, "display_name"),
			Username:    getString(job.TemplateData, "username"),
			AppURL:      getString(job.TemplateData, "app_url"),
		}
	case entity.TemplatePasswordReset:
		data = templates.PasswordResetData{
			UserName:  getString(job.TemplateData, "user_name"),
			ResetURL:  getString(job.TemplateData, "reset_url"),
			ExpiresIn: getString(job.TemplateData, "expires_in"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeUnknownTemplate,
			"unknown template type",
			domainerror.ErrUnknownEmailTemplate,
		)
	}

	return w.renderer.Render(string(job.TemplateType), data)
}

// handleFailure records the attempt; MarkFailed decides between retry and
// giving up.
func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func (w *Worker) purgeSent(ctx context.Context) {
	deleted, err := w.queue.DeleteOldSentJobs(ctx, w.retentionDays)
	if err != nil {
		slog.Error("Failed to purge sent email jobs", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Purged sent email jobs", "count", deleted, "retention_days", w.retentionDays)
	}
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ProcessNow processes pending emails synchronously.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
