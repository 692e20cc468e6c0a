package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the lifecycle state of a queued email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType names the template an email job renders.
type EmailTemplateType string

const (
	TemplateWelcome       EmailTemplateType = "welcome"
	TemplatePasswordReset EmailTemplateType = "password_reset"
)

// IsValid reports whether a renderer exists for the template.
func (t EmailTemplateType) IsValid() bool {
	switch t {
	case TemplateWelcome, TemplatePasswordReset:
		return true
	}
	return false
}

// defaultMaxAttempts bounds delivery retries of a job.
const defaultMaxAttempts = 3

// retryDelays is indexed by the number of attempts already made.
var retryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is an email waiting in the outbound queue.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time

	// UserID links the job to the member it was queued for so it can be
	// discarded when the account goes away.
	UserID *uuid.UUID
}

// NewEmailJob queues a template for immediate delivery.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	if data == nil {
		data = map[string]interface{}{}
	}
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    defaultMaxAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// ForMember links the job to a member account. A nil ID leaves it unlinked.
func (e *EmailJob) ForMember(userID uuid.UUID) *EmailJob {
	if userID != uuid.Nil {
		e.UserID = &userID
	}
	return e
}

// MarkProcessing claims the job for a worker.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery.
func (e *EmailJob) MarkSent(resendID string) {
	now := time.Now().UTC()
	e.Status = EmailStatusSent
	e.ResendID = resendID
	e.ProcessedAt = &now
}

// MarkFailed records a failed attempt. The job goes back to pending with a
// backoff unless the failure is permanent or the attempts are used up.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	e.Attempts++
	e.LastError = err.Error()

	now := time.Now().UTC()
	if permanent || !e.CanRetry() {
		e.Status = EmailStatusFailed
		e.ProcessedAt = &now
		return
	}

	e.Status = EmailStatusPending
	e.ScheduledAt = now.Add(e.nextDelay())
}

func (e *EmailJob) nextDelay() time.Duration {
	if e.Attempts < len(retryDelays) {
		return retryDelays[e.Attempts]
	}
	return retryDelays[len(retryDelays)-1]
}

// CanRetry reports whether attempts remain.
func (e *EmailJob) CanRetry() bool {
	return e.Attempts < e.MaxAttempts
}

// IsReadyToProcess reports whether a worker may pick the job up now.
func (e *EmailJob) IsReadyToProcess() bool {
	return e.Status == EmailStatusPending && !time.Now().UTC().Before(e.ScheduledAt)
}
