package dto

import (
	"time"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// GrantConsentsRequest represents the decisions taken on the consent screen.
type GrantConsentsRequest struct {
	DataProcessing bool `json:"data_processing"`
	Marketing      bool `json:"marketing"`
	Location       bool `json:"location"`
	Analytics      bool `json:"analytics"`
}

// UpdateConsentRequest represents a single grant or revocation.
type UpdateConsentRequest struct {
	Granted *bool `json:"granted" binding:"required"`
}

// ConsentResponse represents a consent decision in API responses.
type ConsentResponse struct {
	ID          string    `json:"id"`
	ConsentType string    `json:"consent_type"`
	Granted     bool      `json:"granted"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConsentListResponse represents the current consent state.
type ConsentListResponse struct {
	Consents   []ConsentResponse `json:"consents"`
	HasConsent bool              `json:"has_consent"`
}

// ConsentStatusResponse reports whether the required consent is in place.
type ConsentStatusResponse struct {
	HasConsent bool `json:"has_consent"`
}

// ToConsentResponse converts a domain Consent entity to its DTO.
func ToConsentResponse(c *entity.Consent) ConsentResponse {
	return ConsentResponse{
		ID:          c.ID.String(),
		ConsentType: string(c.ConsentType),
		Granted:     c.Granted,
		CreatedAt:   c.CreatedAt,
	}
}

// ToConsentResponses converts consents to their DTOs.
func ToConsentResponses(consents []*entity.Consent) []ConsentResponse {
	responses := make([]ConsentResponse, len(consents))
	for i, c := range consents {
		responses[i] = ToConsentResponse(c)
	}
	return responses
}
