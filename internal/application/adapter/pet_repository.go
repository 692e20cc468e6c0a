package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// PetRepository defines the interface for pet persistence operations.
type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)

	// FindByOwner lists a member's pets, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error)

	Update(ctx context.Context, pet *entity.Pet) error

	// Delete removes a pet together with its health records.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountOwned returns how many of ids belong to ownerID.
	CountOwned(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// HealthRecordRepository defines the interface for health record persistence operations.
type HealthRecordRepository interface {
	Create(ctx context.Context, record *entity.HealthRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HealthRecord, error)

	// FindByPet lists a pet's records by record date, latest first.
	FindByPet(ctx context.Context, petID uuid.UUID) ([]*entity.HealthRecord, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
