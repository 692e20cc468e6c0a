package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// deleteConfirmation must be typed verbatim to delete an account.
const deleteConfirmation = "DELETE"

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID       uuid.UUID
	Password     string
	Confirmation string
	IPAddress    string
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
	auditRecorder   *audit.Recorder
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
	auditRecorder *audit.Recorder,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailService:    emailService,
		auditRecorder:   auditRecorder,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	if input.Confirmation != deleteConfirmation {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidConfirmation,
			"confirmation must be exactly 'DELETE'",
			nil,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			err,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Sign the member out everywhere before the rows disappear
	if err := uc.tokenService.InvalidateAllUserTokens(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to invalidate user tokens: %w", err)
	}

	// A welcome or reset email still in the queue must not go out afterwards.
	// The account is deleted either way.
	if err := uc.emailService.DiscardPendingEmails(ctx, input.UserID); err != nil {
		slog.Error("Failed to discard queued emails", "error", err, "userID", input.UserID)
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	uc.auditRecorder.Record(ctx, audit.Entry{
		UserID:       input.UserID,
		Action:       entity.AuditAccountDeleted,
		ResourceType: "user",
		ResourceID:   input.UserID.String(),
		IPAddress:    input.IPAddress,
	})

	return &DeleteAccountOutput{
		Success: true,
	}, nil
}
