package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// UpdatePrivacyInput replaces the whole privacy document.
type UpdatePrivacyInput struct {
	UserID   uuid.UUID
	Settings entity.PrivacySettings
}

// UpdatePrivacyOutput represents the output of a privacy update.
type UpdatePrivacyOutput struct {
	Settings entity.PrivacySettings
}

// UpdatePrivacyUseCase handles privacy settings changes.
type UpdatePrivacyUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewUpdatePrivacyUseCase creates a new UpdatePrivacyUseCase instance.
func NewUpdatePrivacyUseCase(profileRepo adapter.ProfileRepository) *UpdatePrivacyUseCase {
	return &UpdatePrivacyUseCase{
		profileRepo: profileRepo,
	}
}

// Execute stores the new settings.
func (uc *UpdatePrivacyUseCase) Execute(ctx context.Context, input UpdatePrivacyInput) (*UpdatePrivacyOutput, error) {
	if !input.Settings.ProfileVisibility.IsValid() {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidProfileVisibility,
			"profile_visibility must be one of: public, friends, private",
			domainerror.ErrInvalidPrivacySettings,
		)
	}

	profile, err := findProfile(ctx, uc.profileRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	profile.Privacy = input.Settings
	profile.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update privacy settings: %w", err)
	}

	return &UpdatePrivacyOutput{Settings: profile.Privacy}, nil
}
