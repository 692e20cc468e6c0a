package pet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// CreatePetInput represents the input for adding a pet.
type CreatePetInput struct {
	OwnerID     uuid.UUID
	Name        string
	Species     string
	Breed       string
	BirthDate   string
	MicrochipID string
	PhotoURL    string
}

// CreatePetOutput represents the output of adding a pet.
type CreatePetOutput struct {
	Pet *entity.Pet
}

// CreatePetUseCase handles adding a pet.
type CreatePetUseCase struct {
	petRepo adapter.PetRepository
}

// NewCreatePetUseCase creates a new CreatePetUseCase instance.
func NewCreatePetUseCase(petRepo adapter.PetRepository) *CreatePetUseCase {
	return &CreatePetUseCase{
		petRepo: petRepo,
	}
}

// Execute validates and stores the pet.
func (uc *CreatePetUseCase) Execute(ctx context.Context, input CreatePetInput) (*CreatePetOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	species, err := validateSpecies(input.Species)
	if err != nil {
		return nil, err
	}

	birthDate, err := parseBirthDate(input.BirthDate, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	pet := entity.NewPet(input.OwnerID, name, species)
	pet.Breed = strings.TrimSpace(input.Breed)
	pet.BirthDate = birthDate
	pet.MicrochipID = strings.TrimSpace(input.MicrochipID)
	pet.PhotoURL = strings.TrimSpace(input.PhotoURL)

	if err := uc.petRepo.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	return &CreatePetOutput{Pet: pet}, nil
}
