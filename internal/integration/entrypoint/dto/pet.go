package dto

import (
	"time"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CreatePetRequest represents the request body for adding a pet.
type CreatePetRequest struct {
	Name        string `json:"name" binding:"required"`
	Species     string `json:"species" binding:"required"`
	Breed       string `json:"breed"`
	BirthDate   string `json:"birth_date"`
	MicrochipID string `json:"microchip_id"`
	PhotoURL    string `json:"photo_url"`
}

// UpdatePetRequest represents the request body for a pet edit.
type UpdatePetRequest struct {
	Name        *string `json:"name,omitempty"`
	Species     *string `json:"species,omitempty"`
	Breed       *string `json:"breed,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	MicrochipID *string `json:"microchip_id,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}

// PetResponse represents a pet in API responses.
type PetResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	BirthDate   *string   `json:"birth_date"`
	MicrochipID string    `json:"microchip_id"`
	PhotoURL    string    `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PetListResponse represents the response for listing pets.
type PetListResponse struct {
	Pets []PetResponse `json:"pets"`
}

// CreateHealthRecordRequest represents the request body for adding a health record.
type CreateHealthRecordRequest struct {
	RecordType   string `json:"record_type" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	RecordDate   string `json:"record_date" binding:"required"`
	Veterinarian string `json:"veterinarian"`
}

// HealthRecordResponse represents a health record in API responses.
type HealthRecordResponse struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	RecordType   string    `json:"record_type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	RecordDate   string    `json:"record_date"`
	Veterinarian string    `json:"veterinarian"`
	CreatedAt    time.Time `json:"created_at"`
}

// HealthRecordListResponse represents the response for listing health records.
type HealthRecordListResponse struct {
	Records []HealthRecordResponse `json:"records"`
}

// ToPetResponse converts a domain Pet entity to a PetResponse DTO.
func ToPetResponse(p *entity.Pet) PetResponse {
	response := PetResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Name:        p.Name,
		Species:     string(p.Species),
		Breed:       p.Breed,
		MicrochipID: p.MicrochipID,
		PhotoURL:    p.PhotoURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.BirthDate != nil {
		dateStr := p.BirthDate.Format(dateLayout)
		response.BirthDate = &dateStr
	}

	return response
}

// ToPetListResponse converts a slice of pets to a PetListResponse DTO.
func ToPetListResponse(pets []*entity.Pet) PetListResponse {
	responses := make([]PetResponse, len(pets))
	for i, p := range pets {
		responses[i] = ToPetResponse(p)
	}
	return PetListResponse{Pets: responses}
}

// ToHealthRecordResponse converts a domain HealthRecord entity to its DTO.
func ToHealthRecordResponse(r *entity.HealthRecord) HealthRecordResponse {
	return HealthRecordResponse{
		ID:           r.ID.String(),
		PetID:        r.PetID.String(),
		RecordType:   string(r.RecordType),
		Title:        r.Title,
		Description:  r.Description,
		RecordDate:   r.RecordDate.Format(dateLayout),
		Veterinarian: r.Veterinarian,
		CreatedAt:    r.CreatedAt,
	}
}

// ToHealthRecordListResponse converts a slice of records to its DTO.
func ToHealthRecordListResponse(records []*entity.HealthRecord) HealthRecordListResponse {
	responses := make([]HealthRecordResponse, len(records))
	for i, r := range records {
		responses[i] = ToHealthRecordResponse(r)
	}
	return HealthRecordListResponse{Records: responses}
}
