package consent

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// GetConsentsInput represents the input for reading a member's consents.
type GetConsentsInput struct {
	UserID uuid.UUID
}

// GetConsentsOutput holds the latest decision per type and whether the
// required consent is in place.
type GetConsentsOutput struct {
	Consents   []*entity.Consent
	HasConsent bool
}

// GetConsentsUseCase reads the current consent state.
type GetConsentsUseCase struct {
	consentRepo adapter.ConsentRepository
}

// NewGetConsentsUseCase creates a new GetConsentsUseCase instance.
func NewGetConsentsUseCase(consentRepo adapter.ConsentRepository) *GetConsentsUseCase {
	return &GetConsentsUseCase{
		consentRepo: consentRepo,
	}
}

// Execute loads the latest decisions.
func (uc *GetConsentsUseCase) Execute(ctx context.Context, input GetConsentsInput) (*GetConsentsOutput, error) {
	consents, err := uc.consentRepo.FindLatestByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load consents: %w", err)
	}
	if consents == nil {
		consents = []*entity.Consent{}
	}

	output := &GetConsentsOutput{Consents: consents}
	for _, c := range consents {
		if c.ConsentType == entity.ConsentDataProcessing {
			output.HasConsent = c.Granted
		}
	}
	return output, nil
}
