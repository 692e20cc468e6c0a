// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const (
	minUsernameLength    = 3
	maxUsernameLength    = 30
	maxDisplayNameLength = 100
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email       string
	Password    string
	Username    string
	DisplayName string
	IPAddress   string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Profile      *entity.Profile
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	profileRepo     adapter.ProfileRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
	auditRecorder   *audit.Recorder
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	profileRepo adapter.ProfileRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
	auditRecorder *audit.Recorder,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailService:    emailService,
		auditRecorder:   auditRecorder,
	}
}

// Execute performs the user registration. The password is judged before
// any repository is consulted.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if verdict := uc.passwordService.EvaluateStrength(input.Password); !verdict.IsValid {
		return nil, weakPasswordError(verdict)
	}

	username, err := normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			fmt.Sprintf("display name must be at most %d characters", maxDisplayNameLength),
			nil,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	taken, err := uc.profileRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if taken {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUsernameTaken,
			"username already taken",
			domainerror.ErrUsernameTaken,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(email, passwordHash)
	profile := entity.NewProfile(user.ID, username, displayName)

	if err := uc.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if uc.emailService != nil {
		err := uc.emailService.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
			UserID:      user.ID,
			UserEmail:   user.Email,
			DisplayName: profile.DisplayName,
			Username:    profile.Username,
		})
		if err != nil {
			slog.Error("Failed to queue welcome email", "error", err, "userID", user.ID)
		}
	}

	uc.auditRecorder.Record(ctx, audit.Entry{
		UserID:       user.ID,
		Action:       entity.AuditUserSignup,
		ResourceType: "user",
		ResourceID:   user.ID.String(),
		IPAddress:    input.IPAddress,
	})

	return &RegisterUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
		Profile:      profile,
	}, nil
}

// normalizeUsername trims, validates and lowercases a requested username.
func normalizeUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(username)

	if length < minUsernameLength || length > maxUsernameLength {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeInvalidUsername,
			fmt.Sprintf("username must be between %d and %d characters", minUsernameLength, maxUsernameLength),
			domainerror.ErrInvalidUsername,
		)
	}
	if !usernameRegex.MatchString(username) {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeInvalidUsername,
			"username can only contain letters, numbers, and underscores",
			domainerror.ErrInvalidUsername,
		)
	}

	return strings.ToLower(username), nil
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
