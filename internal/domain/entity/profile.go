package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileVisibility controls who can see a member's full profile.
type ProfileVisibility string

const (
	VisibilityPublic  ProfileVisibility = "public"
	VisibilityFriends ProfileVisibility = "friends"
	VisibilityPrivate ProfileVisibility = "private"
)

// IsValid reports whether v is a known visibility.
func (v ProfileVisibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityFriends, VisibilityPrivate:
		return true
	}
	return false
}

// PrivacySettings is stored as a JSON document on the profile row.
type PrivacySettings struct {
	ProfileVisibility ProfileVisibility `json:"profile_visibility"`
	LocationSharing   bool              `json:"location_sharing"`
	ShowPets          bool              `json:"show_pets"`
}

// DefaultPrivacySettings returns the settings every new profile starts with.
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		ProfileVisibility: VisibilityPublic,
		LocationSharing:   false,
		ShowPets:          true,
	}
}

// Profile is the public face of a user.
type Profile struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	Bio         string
	Location    string
	AvatarURL   string
	Privacy     PrivacySettings
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProfile creates the profile of a freshly registered user.
func NewProfile(userID uuid.UUID, username, displayName string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:          userID,
		Username:    username,
		DisplayName: displayName,
		Privacy:     DefaultPrivacySettings(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsVisibleTo reports whether viewerID may see the full profile. The
// friends level has no follow graph behind it yet, so it behaves as private.
func (p *Profile) IsVisibleTo(viewerID uuid.UUID) bool {
	if p.ID == viewerID {
		return true
	}
	return p.Privacy.ProfileVisibility == VisibilityPublic
}
