package pet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// ListPetsInput represents the input for listing pets.
type ListPetsInput struct {
	OwnerID uuid.UUID
}

// ListPetsOutput represents the output of listing pets.
type ListPetsOutput struct {
	Pets []*entity.Pet
}

// ListPetsUseCase lists the caller's pets.
type ListPetsUseCase struct {
	petRepo adapter.PetRepository
}

// NewListPetsUseCase creates a new ListPetsUseCase instance.
func NewListPetsUseCase(petRepo adapter.PetRepository) *ListPetsUseCase {
	return &ListPetsUseCase{
		petRepo: petRepo,
	}
}

// Execute returns the owner's pets, newest first.
func (uc *ListPetsUseCase) Execute(ctx context.Context, input ListPetsInput) (*ListPetsOutput, error) {
	pets, err := uc.petRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	if pets == nil {
		pets = []*entity.Pet{}
	}
	return &ListPetsOutput{Pets: pets}, nil
}
