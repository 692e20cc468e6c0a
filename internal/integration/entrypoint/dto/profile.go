package dto

import (
	"time"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the request body for a profile edit.
// Omitted fields are left untouched.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Location    *string `json:"location,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// PrivacySettingsRequest represents the full privacy document.
type PrivacySettingsRequest struct {
	ProfileVisibility string `json:"profile_visibility" binding:"required"`
	LocationSharing   bool   `json:"location_sharing"`
	ShowPets          bool   `json:"show_pets"`
}

// PrivacySettingsResponse represents privacy settings in API responses.
type PrivacySettingsResponse struct {
	ProfileVisibility string `json:"profile_visibility"`
	LocationSharing   bool   `json:"location_sharing"`
	ShowPets          bool   `json:"show_pets"`
}

// ProfileResponse represents a profile in API responses. Limited views
// carry only the username, display name and avatar.
type ProfileResponse struct {
	ID          string                   `json:"id"`
	Username    string                   `json:"username"`
	DisplayName string                   `json:"display_name"`
	AvatarURL   string                   `json:"avatar_url"`
	Bio         string                   `json:"bio,omitempty"`
	Location    string                   `json:"location,omitempty"`
	Privacy     *PrivacySettingsResponse `json:"privacy_settings,omitempty"`
	Limited     bool                     `json:"limited,omitempty"`
	CreatedAt   *time.Time               `json:"created_at,omitempty"`
}

// ToPrivacySettingsResponse converts privacy settings to their DTO.
func ToPrivacySettingsResponse(settings entity.PrivacySettings) PrivacySettingsResponse {
	return PrivacySettingsResponse{
		ProfileVisibility: string(settings.ProfileVisibility),
		LocationSharing:   settings.LocationSharing,
		ShowPets:          settings.ShowPets,
	}
}

// ToProfileResponse converts a domain Profile entity to a ProfileResponse DTO.
func ToProfileResponse(p *entity.Profile) ProfileResponse {
	privacy := ToPrivacySettingsResponse(p.Privacy)
	createdAt := p.CreatedAt
	return ProfileResponse{
		ID:          p.ID.String(),
		Username:    p.Username,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		Bio:         p.Bio,
		Location:    p.Location,
		Privacy:     &privacy,
		CreatedAt:   &createdAt,
	}
}

// ToLimitedProfileResponse converts a profile hidden by its privacy settings.
func ToLimitedProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID.String(),
		Username:    p.Username,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		Limited:     true,
	}
}
