package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecordType classifies a health record entry.
type RecordType string

const (
	RecordTypeVaccination RecordType = "vaccination"
	RecordTypeCheckup     RecordType = "checkup"
	RecordTypeMedication  RecordType = "medication"
	RecordTypeSurgery     RecordType = "surgery"
	RecordTypeAllergy     RecordType = "allergy"
	RecordTypeOther       RecordType = "other"
)

// IsValid reports whether t is a known record type.
func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeVaccination, RecordTypeCheckup, RecordTypeMedication,
		RecordTypeSurgery, RecordTypeAllergy, RecordTypeOther:
		return true
	}
	return false
}

// HealthRecord is a dated medical entry for a pet.
type HealthRecord struct {
	ID           uuid.UUID
	PetID        uuid.UUID
	RecordType   RecordType
	Title        string
	Description  string
	RecordDate   time.Time
	Veterinarian string
	CreatedAt    time.Time
}

// NewHealthRecord creates a new HealthRecord for petID.
func NewHealthRecord(petID uuid.UUID, recordType RecordType, title string, recordDate time.Time) *HealthRecord {
	return &HealthRecord{
		ID:         uuid.New(),
		PetID:      petID,
		RecordType: recordType,
		Title:      title,
		RecordDate: recordDate,
		CreatedAt:  time.Now().UTC(),
	}
}
