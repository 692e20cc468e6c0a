package consent

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// UpdateConsentInput represents a single grant or revocation.
type UpdateConsentInput struct {
	UserID      uuid.UUID
	ConsentType string
	Granted     bool
	IPAddress   string
}

// UpdateConsentOutput represents the stored decision.
type UpdateConsentOutput struct {
	Consent *entity.Consent
}

// UpdateConsentUseCase appends a decision for one consent type.
type UpdateConsentUseCase struct {
	consentRepo   adapter.ConsentRepository
	auditRecorder *audit.Recorder
}

// NewUpdateConsentUseCase creates a new UpdateConsentUseCase instance.
func NewUpdateConsentUseCase(consentRepo adapter.ConsentRepository, auditRecorder *audit.Recorder) *UpdateConsentUseCase {
	return &UpdateConsentUseCase{
		consentRepo:   consentRepo,
		auditRecorder: auditRecorder,
	}
}

// Execute records the decision.
func (uc *UpdateConsentUseCase) Execute(ctx context.Context, input UpdateConsentInput) (*UpdateConsentOutput, error) {
	consentType := entity.ConsentType(input.ConsentType)
	if !consentType.IsValid() {
		return nil, domainerror.NewConsentError(
			domainerror.ErrCodeInvalidConsentType,
			"consent type must be one of: data_processing, marketing, location, analytics",
			domainerror.ErrInvalidConsentType,
		)
	}

	if consentType.IsRequired() && !input.Granted {
		return nil, domainerror.NewConsentError(
			domainerror.ErrCodeRequiredConsentRevoke,
			"data processing consent cannot be revoked; delete your account instead",
			domainerror.ErrRequiredConsentRevoke,
		)
	}

	consent := entity.NewConsent(input.UserID, consentType, input.Granted, input.IPAddress)
	if err := uc.consentRepo.Create(ctx, consent); err != nil {
		return nil, fmt.Errorf("failed to record consent: %w", err)
	}

	action := entity.AuditConsentGranted
	if !input.Granted {
		action = entity.AuditConsentRevoked
	}
	uc.auditRecorder.Record(ctx, audit.Entry{
		UserID:       input.UserID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   string(consentType),
		IPAddress:    input.IPAddress,
	})

	return &UpdateConsentOutput{Consent: consent}, nil
}
