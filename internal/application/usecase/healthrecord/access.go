// Package healthrecord contains use cases for a pet's medical history.
package healthrecord

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const resourceType = "health_record"

// ownedPet returns the pet when ownerID owns it. Pets of other owners are
// reported as missing.
func ownedPet(ctx context.Context, repo adapter.PetRepository, petID, ownerID uuid.UUID) (*entity.Pet, error) {
	pet, err := repo.FindByID(ctx, petID)
	if err != nil && !errors.Is(err, domainerror.ErrPetNotFound) {
		return nil, fmt.Errorf("failed to find pet: %w", err)
	}
	if err != nil || pet.OwnerID != ownerID {
		return nil, domainerror.NewHealthRecordError(
			domainerror.ErrCodeRecordPetNotFound,
			"pet not found",
			domainerror.ErrPetNotFound,
		)
	}
	return pet, nil
}
