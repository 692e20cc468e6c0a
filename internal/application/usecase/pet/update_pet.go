package pet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// UpdatePetInput holds a partial update; nil fields are left untouched.
type UpdatePetInput struct {
	PetID       uuid.UUID
	OwnerID     uuid.UUID
	Name        *string
	Species     *string
	Breed       *string
	BirthDate   *string
	MicrochipID *string
	PhotoURL    *string
}

// UpdatePetOutput represents the output of a pet update.
type UpdatePetOutput struct {
	Pet *entity.Pet
}

// UpdatePetUseCase handles pet edits.
type UpdatePetUseCase struct {
	petRepo adapter.PetRepository
}

// NewUpdatePetUseCase creates a new UpdatePetUseCase instance.
func NewUpdatePetUseCase(petRepo adapter.PetRepository) *UpdatePetUseCase {
	return &UpdatePetUseCase{
		petRepo: petRepo,
	}
}

// Execute applies the update to a pet the caller owns.
func (uc *UpdatePetUseCase) Execute(ctx context.Context, input UpdatePetInput) (*UpdatePetOutput, error) {
	if input.Name == nil && input.Species == nil && input.Breed == nil &&
		input.BirthDate == nil && input.MicrochipID == nil && input.PhotoURL == nil {
		return nil, domainerror.NewPetError(
			domainerror.ErrCodeMissingPetFields,
			"at least one field must be provided",
			nil,
		)
	}

	pet, err := FindOwnedPet(ctx, uc.petRepo, input.PetID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if pet.Name, err = validateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Species != nil {
		if pet.Species, err = validateSpecies(*input.Species); err != nil {
			return nil, err
		}
	}
	if input.BirthDate != nil {
		if pet.BirthDate, err = parseBirthDate(*input.BirthDate, time.Now().UTC()); err != nil {
			return nil, err
		}
	}
	if input.Breed != nil {
		pet.Breed = strings.TrimSpace(*input.Breed)
	}
	if input.MicrochipID != nil {
		pet.MicrochipID = strings.TrimSpace(*input.MicrochipID)
	}
	if input.PhotoURL != nil {
		pet.PhotoURL = strings.TrimSpace(*input.PhotoURL)
	}

	pet.UpdatedAt = time.Now().UTC()
	if err := uc.petRepo.Update(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	return &UpdatePetOutput{Pet: pet}, nil
}
