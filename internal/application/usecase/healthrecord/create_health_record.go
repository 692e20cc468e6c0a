package healthrecord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// CreateHealthRecordInput represents the input for adding a health record.
type CreateHealthRecordInput struct {
	PetID        uuid.UUID
	OwnerID      uuid.UUID
	RecordType   string
	Title        string
	Description  string
	RecordDate   string
	Veterinarian string
	IPAddress    string
}

// CreateHealthRecordOutput represents the output of adding a health record.
type CreateHealthRecordOutput struct {
	Record *entity.HealthRecord
}

// CreateHealthRecordUseCase handles adding a health record.
type CreateHealthRecordUseCase struct {
	petRepo       adapter.PetRepository
	recordRepo    adapter.HealthRecordRepository
	auditRecorder *audit.Recorder
}

// NewCreateHealthRecordUseCase creates a new CreateHealthRecordUseCase instance.
func NewCreateHealthRecordUseCase(
	petRepo adapter.PetRepository,
	recordRepo adapter.HealthRecordRepository,
	auditRecorder *audit.Recorder,
) *CreateHealthRecordUseCase {
	return &CreateHealthRecordUseCase{
		petRepo:       petRepo,
		recordRepo:    recordRepo,
		auditRecorder: auditRecorder,
	}
}

// Execute validates and stores the record.
func (uc *CreateHealthRecordUseCase) Execute(ctx context.Context, input CreateHealthRecordInput) (*CreateHealthRecordOutput, error) {
	recordType := entity.RecordType(strings.ToLower(strings.TrimSpace(input.RecordType)))
	if !recordType.IsValid() {
		return nil, domainerror.NewHealthRecordError(
			domainerror.ErrCodeInvalidRecordType,
			"record_type must be one of: vaccination, checkup, medication, surgery, allergy, other",
			domainerror.ErrInvalidRecordType,
		)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewHealthRecordError(
			domainerror.ErrCodeInvalidRecordTitle,
			"title is required",
			domainerror.ErrInvalidRecordTitle,
		)
	}

	recordDate, err := time.Parse("2006-01-02", strings.TrimSpace(input.RecordDate))
	if err != nil {
		return nil, domainerror.NewHealthRecordError(
			domainerror.ErrCodeInvalidRecordDate,
			"record_date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidRecordDate,
		)
	}

	if _, err := ownedPet(ctx, uc.petRepo, input.PetID, input.OwnerID); err != nil {
		return nil, err
	}

	record := entity.NewHealthRecord(input.PetID, recordType, title, recordDate)
	record.Description = strings.TrimSpace(input.Description)
	record.Veterinarian = strings.TrimSpace(input.Veterinarian)

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create health record: %w", err)
	}

	uc.auditRecorder.Record(ctx, audit.Entry{
		UserID:       input.OwnerID,
		Action:       entity.AuditHealthRecordCreated,
		ResourceType: resourceType,
		ResourceID:   record.ID.String(),
		IPAddress:    input.IPAddress,
	})

	return &CreateHealthRecordOutput{Record: record}, nil
}
