package auth

import (
	"context"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
	IPAddress    string
}

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout logic.
type LogoutUserUseCase struct {
	tokenService  adapter.TokenService
	auditRecorder *audit.Recorder
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService, auditRecorder *audit.Recorder) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService:  tokenService,
		auditRecorder: auditRecorder,
	}
}

// Execute performs the user logout by invalidating the refresh token.
// Logging out with an unknown token still succeeds.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)

	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	if err == nil {
		uc.auditRecorder.Record(ctx, audit.Entry{
			UserID:       claims.UserID,
			Action:       entity.AuditUserLogout,
			ResourceType: "user",
			ResourceID:   claims.UserID.String(),
			IPAddress:    input.IPAddress,
		})
	}

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
