package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pawz-connect/backend/internal/application/adapter"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const forgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordInput represents the input for forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	profileRepo       adapter.ProfileRepository
	resetTokenService adapter.PasswordResetTokenService
	emailService      adapter.EmailService
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	profileRepo adapter.ProfileRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailService adapter.EmailService,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		resetTokenService: resetTokenService,
		emailService:      emailService,
		appBaseURL:        appBaseURL,
	}
}

// Execute performs the forgot password request.
// Always returns success to prevent email enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	output := &ForgotPasswordOutput{Message: forgotPasswordMessage}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		slog.Debug("Forgot password requested for non-existent email", "email", email)
		return output, nil
	}

	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to generate reset token", "error", err, "userID", user.ID)
		return output, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	if uc.emailService == nil {
		slog.Info("Password reset token generated (email service not configured)",
			"userID", user.ID,
			"resetURL", resetURL,
		)
		return output, nil
	}

	name := user.Email
	if profile, err := uc.profileRepo.FindByID(ctx, user.ID); err == nil {
		name = profile.DisplayName
	}

	err = uc.emailService.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  name,
		ResetURL:  resetURL,
		ExpiresIn: "1 hour",
	})
	if err != nil {
		slog.Error("Failed to queue password reset email", "error", err, "userID", user.ID)
	} else {
		slog.Info("Password reset email queued", "userID", user.ID)
	}

	return output, nil
}
