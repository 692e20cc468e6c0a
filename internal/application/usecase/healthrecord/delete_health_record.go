package healthrecord

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// DeleteHealthRecordInput represents the input for removing a health record.
type DeleteHealthRecordInput struct {
	RecordID  uuid.UUID
	OwnerID   uuid.UUID
	IPAddress string
}

// DeleteHealthRecordUseCase removes a health record.
type DeleteHealthRecordUseCase struct {
	petRepo       adapter.PetRepository
	recordRepo    adapter.HealthRecordRepository
	auditRecorder *audit.Recorder
}

// NewDeleteHealthRecordUseCase creates a new DeleteHealthRecordUseCase instance.
func NewDeleteHealthRecordUseCase(
	petRepo adapter.PetRepository,
	recordRepo adapter.HealthRecordRepository,
	auditRecorder *audit.Recorder,
) *DeleteHealthRecordUseCase {
	return &DeleteHealthRecordUseCase{
		petRepo:       petRepo,
		recordRepo:    recordRepo,
		auditRecorder: auditRecorder,
	}
}

// Execute deletes the record when the caller owns its pet.
func (uc *DeleteHealthRecordUseCase) Execute(ctx context.Context, input DeleteHealthRecordInput) error {
	record, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHealthRecordNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to find health record: %w", err)
	}

	if _, err := ownedPet(ctx, uc.petRepo, record.PetID, input.OwnerID); err != nil {
		return notFound()
	}

	if err := uc.recordRepo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete health record: %w", err)
	}

	uc.auditRecorder.Record(ctx, audit.Entry{
		UserID:       input.OwnerID,
		Action:       entity.AuditHealthRecordDeleted,
		ResourceType: resourceType,
		ResourceID:   record.ID.String(),
		IPAddress:    input.IPAddress,
	})

	return nil
}

func notFound() error {
	return domainerror.NewHealthRecordError(
		domainerror.ErrCodeHealthRecordNotFound,
		"health record not found",
		domainerror.ErrHealthRecordNotFound,
	)
}
