package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// ProfileModel represents the profiles table. The primary key is the user's ID.
type ProfileModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username        string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	DisplayName     string    `gorm:"type:varchar(100);not null"`
	Bio             string    `gorm:"type:varchar(500)"`
	Location        string    `gorm:"type:varchar(100)"`
	AvatarURL       string    `gorm:"type:text"`
	PrivacySettings string    `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity. Missing or
// unreadable settings fall back to the defaults.
func (m *ProfileModel) ToEntity() *entity.Profile {
	privacy := entity.DefaultPrivacySettings()
	if m.PrivacySettings != "" {
		if err := json.Unmarshal([]byte(m.PrivacySettings), &privacy); err != nil {
			slog.Warn("Failed to unmarshal privacy settings", "error", err, "id", m.ID)
			privacy = entity.DefaultPrivacySettings()
		}
	}
	if !privacy.ProfileVisibility.IsValid() {
		privacy.ProfileVisibility = entity.VisibilityPublic
	}

	return &entity.Profile{
		ID:          m.ID,
		Username:    m.Username,
		DisplayName: m.DisplayName,
		Bio:         m.Bio,
		Location:    m.Location,
		AvatarURL:   m.AvatarURL,
		Privacy:     privacy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProfileModelFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileModelFromEntity(profile *entity.Profile) *ProfileModel {
	privacyJSON, err := json.Marshal(profile.Privacy)
	if err != nil {
		slog.Error("Failed to marshal privacy settings", "error", err, "id", profile.ID)
		privacyJSON = []byte("{}")
	}

	return &ProfileModel{
		ID:              profile.ID,
		Username:        profile.Username,
		DisplayName:     profile.DisplayName,
		Bio:             profile.Bio,
		Location:        profile.Location,
		AvatarURL:       profile.AvatarURL,
		PrivacySettings: string(privacyJSON),
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}
