package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
	IPAddress   string
}

// ResetPasswordOutput represents the output of password reset.
type ResetPasswordOutput struct {
	Message string
}

// ResetPasswordUseCase handles password reset logic.
type ResetPasswordUseCase struct {
	userRepo          adapter.UserRepository
	passwordService   adapter.PasswordService
	resetTokenService adapter.PasswordResetTokenService
	tokenService      adapter.TokenService
	auditRecorder     *audit.Recorder
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	resetTokenService adapter.PasswordResetTokenService,
	tokenService adapter.TokenService,
	auditRecorder *audit.Recorder,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:          userRepo,
		passwordService:   passwordService,
		resetTokenService: resetTokenService,
		tokenService:      tokenService,
		auditRecorder:     auditRecorder,
	}
}

// Execute performs the password reset.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	if verdict := uc.passwordService.EvaluateStrength(input.NewPassword); !verdict.IsValid {
		return nil, weakPasswordError(verdict)
	}

	resetToken, err := uc.resetTokenService.ValidateResetToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"invalid or expired password reset token",
			domainerror.ErrInvalidResetToken,
		)
	}

	if time.Now().UTC().After(resetToken.ExpiresAt) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeExpiredResetToken,
			"password reset token has expired",
			domainerror.ErrInvalidResetToken,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, resetToken.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	if err := uc.resetTokenService.InvalidateResetToken(ctx, input.Token); err != nil {
		slog.Warn("Failed to invalidate reset token", "error", err, "userID", user.ID)
	}
	// Sessions opened with the old password end here.
	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		slog.Warn("Failed to invalidate refresh tokens", "error", err, "userID", user.ID)
	}

	uc.auditRecorder.Record(ctx, audit.Entry{
		UserID:       user.ID,
		Action:       entity.AuditPasswordReset,
		ResourceType: "user",
		ResourceID:   user.ID.String(),
		IPAddress:    input.IPAddress,
	})

	return &ResetPasswordOutput{
		Message: "Password has been successfully reset",
	}, nil
}
