package entity

import (
	"time"

	"github.com/google/uuid"
)

// Species is the closed set of animals a pet can be.
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesRabbit  Species = "rabbit"
	SpeciesFish    Species = "fish"
	SpeciesReptile Species = "reptile"
	SpeciesOther   Species = "other"
)

// IsValid reports whether s is a known species.
func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesFish, SpeciesReptile, SpeciesOther:
		return true
	}
	return false
}

// Pet belongs to exactly one owner.
type Pet struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Species     Species
	Breed       string
	BirthDate   *time.Time
	MicrochipID string
	PhotoURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPet creates a new Pet owned by ownerID.
func NewPet(ownerID uuid.UUID, name string, species Species) *Pet {
	now := time.Now().UTC()
	return &Pet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Species:   species,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
