package dto

import (
	"time"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// CreateReviewRequest represents the request body for reviewing a service.
type CreateReviewRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

// ServiceResponse represents a directory entry in API responses.
// The rating average is rendered as a fixed two-decimal string.
type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website"`
	Verified    bool      `json:"verified"`
	RatingAvg   string    `json:"rating_avg"`
	RatingCount int       `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceListResponse represents the response for a directory query.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ReviewResponse represents a service review in API responses.
type ReviewResponse struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"service_id"`
	UserID    string          `json:"user_id"`
	Rating    int             `json:"rating"`
	Review    string          `json:"review"`
	Status    string          `json:"status"`
	Author    *AuthorResponse `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ReviewListResponse represents the response for listing reviews.
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// CreateReviewResponse carries the stored review and the updated service.
type CreateReviewResponse struct {
	Review  ReviewResponse  `json:"review"`
	Service ServiceResponse `json:"service"`
}

// ToServiceResponse converts a domain PetService entity to its DTO.
func ToServiceResponse(s *entity.PetService) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Type:        string(s.Type),
		Description: s.Description,
		Address:     s.Address,
		Phone:       s.Phone,
		Website:     s.Website,
		Verified:    s.Verified,
		RatingAvg:   s.RatingAvg.StringFixed(2),
		RatingCount: s.RatingCount,
		CreatedAt:   s.CreatedAt,
	}
}

// ToServiceListResponse converts services to a ServiceListResponse DTO.
func ToServiceListResponse(services []*entity.PetService) ServiceListResponse {
	responses := make([]ServiceResponse, len(services))
	for i, s := range services {
		responses[i] = ToServiceResponse(s)
	}
	return ServiceListResponse{Services: responses}
}

// ToReviewResponse converts a domain ServiceReview entity to its DTO.
func ToReviewResponse(r *entity.ServiceReview) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID.String(),
		ServiceID: r.ServiceID.String(),
		UserID:    r.UserID.String(),
		Rating:    r.Rating,
		Review:    r.Review,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

// ToReviewListResponse converts reviews with their authors to a DTO.
func ToReviewListResponse(reviews []*entity.ReviewWithAuthor) ReviewListResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		response := ToReviewResponse(&r.ServiceReview)
		response.Author = ToAuthorResponse(r.Author)
		responses[i] = response
	}
	return ReviewListResponse{Reviews: responses}
}
