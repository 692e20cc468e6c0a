package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// ServiceFilter narrows the services directory.
type ServiceFilter struct {
	Type   *entity.ServiceType
	Search string
}

// PetServiceRepository defines the interface for the services directory.
type PetServiceRepository interface {
	// List returns verified services matching filter, best rated first.
	List(ctx context.Context, filter ServiceFilter) ([]*entity.PetService, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.PetService, error)
	Update(ctx context.Context, service *entity.PetService) error
}

// ServiceReviewRepository defines the interface for review persistence.
type ServiceReviewRepository interface {
	Create(ctx context.Context, review *entity.ServiceReview) error
	ExistsByServiceAndUser(ctx context.Context, serviceID, userID uuid.UUID) (bool, error)

	// ListApproved returns the approved reviews of a service, newest first.
	ListApproved(ctx context.Context, serviceID uuid.UUID) ([]*entity.ReviewWithAuthor, error)
}

// ReviewModerator classifies review text as approved or rejected.
type ReviewModerator interface {
	Moderate(ctx context.Context, review string) (entity.ReviewStatus, error)

	// IsAvailable reports whether a moderation backend is configured.
	IsAvailable() bool
}
