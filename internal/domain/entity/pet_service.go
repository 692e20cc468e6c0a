package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceType is the kind of business listed in the directory.
type ServiceType string

const (
	ServiceTypeGrooming   ServiceType = "grooming"
	ServiceTypeVeterinary ServiceType = "veterinary"
	ServiceTypeHospital   ServiceType = "hospital"
	ServiceTypeStore      ServiceType = "store"
	ServiceTypeTraining   ServiceType = "training"
)

// IsValid reports whether t is a known service type.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeGrooming, ServiceTypeVeterinary, ServiceTypeHospital, ServiceTypeStore, ServiceTypeTraining:
		return true
	}
	return false
}

// PetService is a business in the pet services directory.
type PetService struct {
	ID          uuid.UUID
	Name        string
	Type        ServiceType
	Description string
	Address     string
	Phone       string
	Website     string
	Verified    bool
	RatingAvg   decimal.Decimal
	RatingCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ratingPlaces is the precision the average is stored with.
const ratingPlaces = 2

// ApplyRating folds one approved rating into the running average.
func (s *PetService) ApplyRating(rating int) {
	total := s.RatingAvg.Mul(decimal.NewFromInt(int64(s.RatingCount))).Add(decimal.NewFromInt(int64(rating)))
	s.RatingCount++
	s.RatingAvg = total.Div(decimal.NewFromInt(int64(s.RatingCount))).Round(ratingPlaces)
	s.UpdatedAt = time.Now().UTC()
}

// ReviewStatus tracks a review through moderation.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// ServiceReview is a member's rating of a service.
type ServiceReview struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Review    string
	Status    ReviewStatus
	CreatedAt time.Time
}

// NewServiceReview creates a pending review.
func NewServiceReview(serviceID, userID uuid.UUID, rating int, review string) *ServiceReview {
	return &ServiceReview{
		ID:        uuid.New(),
		ServiceID: serviceID,
		UserID:    userID,
		Rating:    rating,
		Review:    review,
		Status:    ReviewStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// ReviewWithAuthor is an approved review joined with its author.
type ReviewWithAuthor struct {
	ServiceReview
	Author Author
}
