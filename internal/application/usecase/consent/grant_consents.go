// Package consent contains use cases for data-use consents.
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

const resourceType = "consent"

// GrantConsentsInput records the decisions taken on the consent screen.
type GrantConsentsInput struct {
	UserID         uuid.UUID
	DataProcessing bool
	Marketing      bool
	Location       bool
	Analytics      bool
	IPAddress      string
}

// GrantConsentsOutput represents the stored decisions.
type GrantConsentsOutput struct {
	Consents []*entity.Consent
}

// GrantConsentsUseCase stores the initial decision for every consent type.
type GrantConsentsUseCase struct {
	consentRepo   adapter.ConsentRepository
	auditRecorder *audit.Recorder
}

// NewGrantConsentsUseCase creates a new GrantConsentsUseCase instance.
func NewGrantConsentsUseCase(consentRepo adapter.ConsentRepository, auditRecorder *audit.Recorder) *GrantConsentsUseCase {
	return &GrantConsentsUseCase{
		consentRepo:   consentRepo,
		auditRecorder: auditRecorder,
	}
}

// Execute stores one row per consent type.
func (uc *GrantConsentsUseCase) Execute(ctx context.Context, input GrantConsentsInput) (*GrantConsentsOutput, error) {
	if !input.DataProcessing {
		return nil, domainerror.NewConsentError(
			domainerror.ErrCodeRequiredConsentMissing,
			"data processing consent is required to use the platform",
			domainerror.ErrRequiredConsentMissing,
		)
	}

	decisions := map[entity.ConsentType]bool{
		entity.ConsentDataProcessing: input.DataProcessing,
		entity.ConsentMarketing:      input.Marketing,
		entity.ConsentLocation:       input.Location,
		entity.ConsentAnalytics:      input.Analytics,
	}

	consents := make([]*entity.Consent, 0, len(entity.AllConsentTypes))
	for _, consentType := range entity.AllConsentTypes {
		consents = append(consents, entity.NewConsent(input.UserID, consentType, decisions[consentType], input.IPAddress))
	}

	if err := uc.consentRepo.CreateBatch(ctx, consents); err != nil {
		return nil, fmt.Errorf("failed to record consents: %w", err)
	}

	uc.auditRecorder.Record(ctx, audit.Entry{
		UserID:       input.UserID,
		Action:       entity.AuditConsentGranted,
		ResourceType: resourceType,
		ResourceID:   string(entity.ConsentDataProcessing),
		IPAddress:    input.IPAddress,
	})

	return &GrantConsentsOutput{Consents: consents}, nil
}
