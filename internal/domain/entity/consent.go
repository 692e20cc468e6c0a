package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsentType names a data-use permission a member can grant or revoke.
type ConsentType string

const (
	ConsentDataProcessing ConsentType = "data_processing"
	ConsentMarketing      ConsentType = "marketing"
	ConsentLocation       ConsentType = "location"
	ConsentAnalytics      ConsentType = "analytics"
)

// AllConsentTypes lists every consent type in display order.
var AllConsentTypes = []ConsentType{
	ConsentDataProcessing,
	ConsentMarketing,
	ConsentLocation,
	ConsentAnalytics,
}

// IsValid reports whether t is a known consent type.
func (t ConsentType) IsValid() bool {
	for _, known := range AllConsentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsRequired reports whether the platform cannot be used without t.
func (t ConsentType) IsRequired() bool {
	return t == ConsentDataProcessing
}

// Consent is one recorded decision. History is append-only; the latest row
// per type is the current state.
type Consent struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ConsentType ConsentType
	Granted     bool
	IPAddress   string
	CreatedAt   time.Time
}

// NewConsent records a decision made from ipAddress.
func NewConsent(userID uuid.UUID, consentType ConsentType, granted bool, ipAddress string) *Consent {
	return &Consent{
		ID:          uuid.New(),
		UserID:      userID,
		ConsentType: consentType,
		Granted:     granted,
		IPAddress:   ipAddress,
		CreatedAt:   time.Now().UTC(),
	}
}
