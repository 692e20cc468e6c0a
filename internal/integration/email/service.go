// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const (
	welcomeSubject       = "Welcome to Pawz Connect, %s!"
	passwordResetSubject = "Reset your Pawz Connect password"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueWelcomeEmail queues the greeting sent after signup.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	templateData := map[string]interface{}{
		"display_name": input.DisplayName,
		"username":     input.Username,
		"app_url":      s.appBaseURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		input.UserEmail,
		input.DisplayName,
		fmt.Sprintf(welcomeSubject, input.DisplayName),
		templateData,
	).ForMember(input.UserID)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue welcome email",
			err,
		)
	}

	return nil
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	// Without a link the email is useless, so refuse it before it reaches the queue
	if strings.TrimSpace(input.ResetURL) == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeMissingResetLink,
			"password reset email has no link",
			domainerror.ErrMissingResetLink,
		)
	}

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		passwordResetSubject,
		templateData,
	).ForMember(input.UserID)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// DiscardPendingEmails drops welcome and reset emails still waiting for a
// deleted member, so nothing is sent to an address that left the platform.
func (s *Service) DiscardPendingEmails(ctx context.Context, userID uuid.UUID) error {
	discarded, err := s.queue.DeletePendingForUser(ctx, userID)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to discard queued emails",
			err,
		)
	}
	if discarded > 0 {
		slog.Info("Discarded queued emails", "userID", userID, "count", discarded)
	}
	return nil
}

var _ adapter.EmailService = (*Service)(nil)
