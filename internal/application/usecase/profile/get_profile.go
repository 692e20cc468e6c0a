// Package profile contains use cases for member profiles and privacy settings.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// GetProfileInput identifies the profile to load. Username empty means the viewer's own.
type GetProfileInput struct {
	ViewerID uuid.UUID
	Username string
}

// GetProfileOutput carries the profile. Limited is set when the viewer may
// only see the username, display name and avatar.
type GetProfileOutput struct {
	Profile *entity.Profile
	Limited bool
}

// GetProfileUseCase handles profile lookups.
type GetProfileUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(profileRepo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
	}
}

// Execute loads the profile and strips it down when privacy requires.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	var (
		profile *entity.Profile
		err     error
	)
	if input.Username == "" {
		profile, err = uc.profileRepo.FindByID(ctx, input.ViewerID)
	} else {
		profile, err = uc.profileRepo.FindByUsername(ctx, strings.ToLower(input.Username))
	}
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

	if profile.IsVisibleTo(input.ViewerID) {
		return &GetProfileOutput{Profile: profile}, nil
	}

	return &GetProfileOutput{
		Profile: &entity.Profile{
			ID:          profile.ID,
			Username:    profile.Username,
			DisplayName: profile.DisplayName,
			AvatarURL:   profile.AvatarURL,
			Privacy:     entity.PrivacySettings{ProfileVisibility: profile.Privacy.ProfileVisibility},
			CreatedAt:   profile.CreatedAt,
		},
		Limited: true,
	}, nil
}
