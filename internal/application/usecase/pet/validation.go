// Package pet contains use cases for managing a member's pets.
package pet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const (
	maxNameLength = 50
	dateLayout    = "2006-01-02"
)

func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return "", domainerror.NewPetError(
			domainerror.ErrCodeInvalidPetName,
			fmt.Sprintf("name must be between 1 and %d characters", maxNameLength),
			domainerror.ErrInvalidPetName,
		)
	}
	return name, nil
}

func validateSpecies(raw string) (entity.Species, error) {
	species := entity.Species(strings.ToLower(strings.TrimSpace(raw)))
	if !species.IsValid() {
		return "", domainerror.NewPetError(
			domainerror.ErrCodeInvalidSpecies,
			"species must be one of: dog, cat, bird, rabbit, fish, reptile, other",
			domainerror.ErrInvalidSpecies,
		)
	}
	return species, nil
}

// parseBirthDate accepts YYYY-MM-DD; an empty string clears the date.
func parseBirthDate(raw string, now time.Time) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return nil, domainerror.NewPetError(
			domainerror.ErrCodeInvalidBirthDate,
			"birth_date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidBirthDate,
		)
	}
	if date.After(now) {
		return nil, domainerror.NewPetError(
			domainerror.ErrCodeInvalidBirthDate,
			"birth_date cannot be in the future",
			domainerror.ErrInvalidBirthDate,
		)
	}
	return &date, nil
}

// FindOwnedPet loads a pet and hides pets of other owners behind not found.
func FindOwnedPet(ctx context.Context, repo adapter.PetRepository, petID, ownerID uuid.UUID) (*entity.Pet, error) {
	pet, err := repo.FindByID(ctx, petID)
	if err != nil && !errors.Is(err, domainerror.ErrPetNotFound) {
		return nil, fmt.Errorf("failed to find pet: %w", err)
	}
	if err != nil || pet.OwnerID != ownerID {
		return nil, domainerror.NewPetError(
			domainerror.ErrCodePetNotFound,
			"pet not found",
			domainerror.ErrPetNotFound,
		)
	}
	return pet, nil
}
