package healthrecord

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// ListHealthRecordsInput represents the input for listing a pet's records.
type ListHealthRecordsInput struct {
	PetID   uuid.UUID
	OwnerID uuid.UUID
}

// ListHealthRecordsOutput represents the output of listing a pet's records.
type ListHealthRecordsOutput struct {
	Records []*entity.HealthRecord
}

// ListHealthRecordsUseCase lists the records of a pet the caller owns.
type ListHealthRecordsUseCase struct {
	petRepo    adapter.PetRepository
	recordRepo adapter.HealthRecordRepository
}

// NewListHealthRecordsUseCase creates a new ListHealthRecordsUseCase instance.
func NewListHealthRecordsUseCase(petRepo adapter.PetRepository, recordRepo adapter.HealthRecordRepository) *ListHealthRecordsUseCase {
	return &ListHealthRecordsUseCase{
		petRepo:    petRepo,
		recordRepo: recordRepo,
	}
}

// Execute returns the records, latest record date first.
func (uc *ListHealthRecordsUseCase) Execute(ctx context.Context, input ListHealthRecordsInput) (*ListHealthRecordsOutput, error) {
	if _, err := ownedPet(ctx, uc.petRepo, input.PetID, input.OwnerID); err != nil {
		return nil, err
	}

	records, err := uc.recordRepo.FindByPet(ctx, input.PetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list health records: %w", err)
	}
	if records == nil {
		records = []*entity.HealthRecord{}
	}

	return &ListHealthRecordsOutput{Records: records}, nil
}
