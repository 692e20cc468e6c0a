package petservice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const (
	minRating       = 1
	maxRating       = 5
	maxReviewLength = 1000
)

// CreateReviewInput represents the input for reviewing a service.
type CreateReviewInput struct {
	ServiceID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Review    string
}

// CreateReviewOutput carries the stored review and the service as it stands after it.
type CreateReviewOutput struct {
	Review  *entity.ServiceReview
	Service *entity.PetService
}

// CreateReviewUseCase handles new reviews.
type CreateReviewUseCase struct {
	serviceRepo adapter.PetServiceRepository
	reviewRepo  adapter.ServiceReviewRepository
	moderator   adapter.ReviewModerator
}

// NewCreateReviewUseCase creates a new CreateReviewUseCase instance.
func NewCreateReviewUseCase(
	serviceRepo adapter.PetServiceRepository,
	reviewRepo adapter.ServiceReviewRepository,
	moderator adapter.ReviewModerator,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		serviceRepo: serviceRepo,
		reviewRepo:  reviewRepo,
		moderator:   moderator,
	}
}

// Execute validates, moderates and stores the review. Only approved
// reviews move the service's rating.
func (uc *CreateReviewUseCase) Execute(ctx context.Context, input CreateReviewInput) (*CreateReviewOutput, error) {
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, domainerror.NewServiceError(
			domainerror.ErrCodeInvalidRating,
			fmt.Sprintf("rating must be between %d and %d", minRating, maxRating),
			domainerror.ErrInvalidRating,
		)
	}

	text := strings.TrimSpace(input.Review)
	if utf8.RuneCountInString(text) > maxReviewLength {
		return nil, domainerror.NewServiceError(
			domainerror.ErrCodeReviewTooLong,
			fmt.Sprintf("review must be at most %d characters", maxReviewLength),
			domainerror.ErrReviewTooLong,
		)
	}

	service, err := findService(ctx, uc.serviceRepo, input.ServiceID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.reviewRepo.ExistsByServiceAndUser(ctx, service.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, domainerror.NewServiceError(
			domainerror.ErrCodeAlreadyReviewed,
			"you have already reviewed this service",
			domainerror.ErrAlreadyReviewed,
		)
	}

	review := entity.NewServiceReview(service.ID, input.UserID, input.Rating, text)
	review.Status = uc.moderate(ctx, text)

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if review.Status == entity.ReviewStatusApproved {
		service.ApplyRating(review.Rating)
		if err := uc.serviceRepo.Update(ctx, service); err != nil {
			return nil, fmt.Errorf("failed to update service rating: %w", err)
		}
	}

	return &CreateReviewOutput{
		Review:  review,
		Service: service,
	}, nil
}

// moderate asks the moderator for a verdict. Reviews stay pending when no
// moderator is configured or it fails; a rating without text is approved.
func (uc *CreateReviewUseCase) moderate(ctx context.Context, text string) entity.ReviewStatus {
	if text == "" {
		return entity.ReviewStatusApproved
	}
	if uc.moderator == nil || !uc.moderator.IsAvailable() {
		return entity.ReviewStatusPending
	}

	status, err := uc.moderator.Moderate(ctx, text)
	if err != nil {
		slog.Warn("Review moderation failed, leaving review pending", "error", err)
		return entity.ReviewStatusPending
	}
	return status
}

// ListReviewsInput represents the input for listing reviews.
type ListReviewsInput struct {
	ServiceID uuid.UUID
}

// ListReviewsOutput represents the output of listing reviews.
type ListReviewsOutput struct {
	Reviews []*entity.ReviewWithAuthor
}

// ListReviewsUseCase lists the approved reviews of a service.
type ListReviewsUseCase struct {
	serviceRepo adapter.PetServiceRepository
	reviewRepo  adapter.ServiceReviewRepository
}

// NewListReviewsUseCase creates a new ListReviewsUseCase instance.
func NewListReviewsUseCase(serviceRepo adapter.PetServiceRepository, reviewRepo adapter.ServiceReviewRepository) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		serviceRepo: serviceRepo,
		reviewRepo:  reviewRepo,
	}
}

// Execute returns approved reviews, newest first.
func (uc *ListReviewsUseCase) Execute(ctx context.Context, input ListReviewsInput) (*ListReviewsOutput, error) {
	if _, err := findService(ctx, uc.serviceRepo, input.ServiceID); err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListApproved(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []*entity.ReviewWithAuthor{}
	}
	return &ListReviewsOutput{Reviews: reviews}, nil
}
