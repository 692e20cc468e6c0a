package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// PetModel represents the pets table in the database.
type PetModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	Name        string     `gorm:"type:varchar(50);not null"`
	Species     string     `gorm:"type:varchar(20);not null"`
	Breed       string     `gorm:"type:varchar(100)"`
	BirthDate   *time.Time `gorm:"type:date"`
	MicrochipID string     `gorm:"type:varchar(50)"`
	PhotoURL    string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the PetModel.
func (PetModel) TableName() string {
	return "pets"
}

// ToEntity converts a PetModel to a domain Pet entity.
func (m *PetModel) ToEntity() *entity.Pet {
	return &entity.Pet{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Species:     entity.Species(m.Species),
		Breed:       m.Breed,
		BirthDate:   m.BirthDate,
		MicrochipID: m.MicrochipID,
		PhotoURL:    m.PhotoURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PetModelFromEntity creates a PetModel from a domain Pet entity.
func PetModelFromEntity(pet *entity.Pet) *PetModel {
	return &PetModel{
		ID:          pet.ID,
		OwnerID:     pet.OwnerID,
		Name:        pet.Name,
		Species:     string(pet.Species),
		Breed:       pet.Breed,
		BirthDate:   pet.BirthDate,
		MicrochipID: pet.MicrochipID,
		PhotoURL:    pet.PhotoURL,
		CreatedAt:   pet.CreatedAt,
		UpdatedAt:   pet.UpdatedAt,
	}
}

// HealthRecordModel represents the health_records table in the database.
type HealthRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PetID        uuid.UUID `gorm:"type:uuid;index;not null"`
	RecordType   string    `gorm:"type:varchar(20);not null"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	RecordDate   time.Time `gorm:"type:date;not null"`
	Veterinarian string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the HealthRecordModel.
func (HealthRecordModel) TableName() string {
	return "health_records"
}

// ToEntity converts a HealthRecordModel to a domain HealthRecord entity.
func (m *HealthRecordModel) ToEntity() *entity.HealthRecord {
	return &entity.HealthRecord{
		ID:           m.ID,
		PetID:        m.PetID,
		RecordType:   entity.RecordType(m.RecordType),
		Title:        m.Title,
		Description:  m.Description,
		RecordDate:   m.RecordDate,
		Veterinarian: m.Veterinarian,
		CreatedAt:    m.CreatedAt,
	}
}

// HealthRecordModelFromEntity creates a HealthRecordModel from a domain HealthRecord entity.
func HealthRecordModelFromEntity(record *entity.HealthRecord) *HealthRecordModel {
	return &HealthRecordModel{
		ID:           record.ID,
		PetID:        record.PetID,
		RecordType:   string(record.RecordType),
		Title:        record.Title,
		Description:  record.Description,
		RecordDate:   record.RecordDate,
		Veterinarian: record.Veterinarian,
		CreatedAt:    record.CreatedAt,
	}
}
