package pet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
)

// DeletePetInput represents the input for removing a pet.
type DeletePetInput struct {
	PetID   uuid.UUID
	OwnerID uuid.UUID
}

// DeletePetUseCase removes a pet and its health records.
type DeletePetUseCase struct {
	petRepo adapter.PetRepository
}

// NewDeletePetUseCase creates a new DeletePetUseCase instance.
func NewDeletePetUseCase(petRepo adapter.PetRepository) *DeletePetUseCase {
	return &DeletePetUseCase{
		petRepo: petRepo,
	}
}

// Execute deletes the pet if the caller owns it.
func (uc *DeletePetUseCase) Execute(ctx context.Context, input DeletePetInput) error {
	if _, err := FindOwnedPet(ctx, uc.petRepo, input.PetID, input.OwnerID); err != nil {
		return err
	}

	if err := uc.petRepo.Delete(ctx, input.PetID); err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	return nil
}
