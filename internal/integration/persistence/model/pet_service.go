package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// PetServiceModel represents the pet_services table in the database.
type PetServiceModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Type        string          `gorm:"type:varchar(20);index;not null"`
	Description string          `gorm:"type:text"`
	Address     string          `gorm:"type:varchar(300)"`
	Phone       string          `gorm:"type:varchar(30)"`
	Website     string          `gorm:"type:varchar(300)"`
	Verified    bool            `gorm:"not null;default:false;index"`
	RatingAvg   decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0"`
	RatingCount int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PetServiceModel.
func (PetServiceModel) TableName() string {
	return "pet_services"
}

// ToEntity converts a PetServiceModel to a domain PetService entity.
func (m *PetServiceModel) ToEntity() *entity.PetService {
	return &entity.PetService{
		ID:          m.ID,
		Name:        m.Name,
		Type:        entity.ServiceType(m.Type),
		Description: m.Description,
		Address:     m.Address,
		Phone:       m.Phone,
		Website:     m.Website,
		Verified:    m.Verified,
		RatingAvg:   m.RatingAvg,
		RatingCount: m.RatingCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PetServiceModelFromEntity creates a PetServiceModel from a domain PetService entity.
func PetServiceModelFromEntity(service *entity.PetService) *PetServiceModel {
	return &PetServiceModel{
		ID:          service.ID,
		Name:        service.Name,
		Type:        string(service.Type),
		Description: service.Description,
		Address:     service.Address,
		Phone:       service.Phone,
		Website:     service.Website,
		Verified:    service.Verified,
		RatingAvg:   service.RatingAvg,
		RatingCount: service.RatingCount,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

// ServiceReviewModel represents the service_reviews table. A member reviews a
// service at most once.
type ServiceReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_service_reviews_service_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_service_reviews_service_user"`
	Rating    int       `gorm:"not null"`
	Review    string    `gorm:"type:varchar(1000)"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ServiceReviewModel.
func (ServiceReviewModel) TableName() string {
	return "service_reviews"
}

// ToEntity converts a ServiceReviewModel to a domain ServiceReview entity.
func (m *ServiceReviewModel) ToEntity() *entity.ServiceReview {
	return &entity.ServiceReview{
		ID:        m.ID,
		ServiceID: m.ServiceID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Review:    m.Review,
		Status:    entity.ReviewStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// ServiceReviewModelFromEntity creates a ServiceReviewModel from a domain ServiceReview entity.
func ServiceReviewModelFromEntity(review *entity.ServiceReview) *ServiceReviewModel {
	return &ServiceReviewModel{
		ID:        review.ID,
		ServiceID: review.ServiceID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Review:    review.Review,
		Status:    string(review.Status),
		CreatedAt: review.CreatedAt,
	}
}
