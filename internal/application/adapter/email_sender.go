package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult carries the provider's message ID.
type SendEmailResult struct {
	ResendID string
}

// EmailSender delivers a rendered email through the provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService queues transactional emails for the worker.
type EmailService interface {
	// QueueWelcomeEmail queues the greeting sent after signup.
	QueueWelcomeEmail(ctx context.Context, input QueueWelcomeInput) error

	// QueuePasswordResetEmail queues a password reset email.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// DiscardPendingEmails drops undelivered mail queued for a member.
	DiscardPendingEmails(ctx context.Context, userID uuid.UUID) error
}

// QueueWelcomeInput represents the input for queueing a welcome email.
type QueueWelcomeInput struct {
	UserID      uuid.UUID
	UserEmail   string
	DisplayName string
	Username    string
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    uuid.UUID
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}
