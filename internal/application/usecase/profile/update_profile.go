package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const (
	maxDisplayNameLength = 100
	maxBioLength         = 500
	maxLocationLength    = 100
)

// UpdateProfileInput holds a partial update; nil fields are left untouched.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	DisplayName *string
	Bio         *string
	Location    *string
	AvatarURL   *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	Profile *entity.Profile
}

// UpdateProfileUseCase handles profile edits.
type UpdateProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(profileRepo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute validates and applies the update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if input.DisplayName == nil && input.Bio == nil && input.Location == nil && input.AvatarURL == nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeMissingProfileFields,
			"at least one field must be provided",
			nil,
		)
	}

	profile, err := findProfile(ctx, uc.profileRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" || utf8.RuneCountInString(name) > maxDisplayNameLength {
			return nil, fieldError(domainerror.ErrCodeInvalidDisplayName,
				fmt.Sprintf("display name must be between 1 and %d characters", maxDisplayNameLength))
		}
		profile.DisplayName = name
	}

	if input.Bio != nil {
		bio := strings.TrimSpace(*input.Bio)
		if utf8.RuneCountInString(bio) > maxBioLength {
			return nil, fieldError(domainerror.ErrCodeInvalidBio,
				fmt.Sprintf("bio must be at most %d characters", maxBioLength))
		}
		profile.Bio = bio
	}

	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		if utf8.RuneCountInString(location) > maxLocationLength {
			return nil, fieldError(domainerror.ErrCodeInvalidLocation,
				fmt.Sprintf("location must be at most %d characters", maxLocationLength))
		}
		profile.Location = location
	}

	if input.AvatarURL != nil {
		profile.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}

	profile.UpdatedAt = time.Now().UTC()
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{Profile: profile}, nil
}

func fieldError(code domainerror.ProfileErrorCode, message string) error {
	return domainerror.NewProfileError(code, message, domainerror.ErrInvalidProfileField)
}

func findProfile(ctx context.Context, repo adapter.ProfileRepository, id uuid.UUID) (*entity.Profile, error) {
	profile, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrProfileNotFound) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeProfileNotFound,
				"profile not found",
				domainerror.ErrProfileNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}
