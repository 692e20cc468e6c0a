package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// ToggleLikeInput represents the input for liking or unliking a post.
type ToggleLikeInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

// ToggleLikeOutput reports the like state after the toggle.
type ToggleLikeOutput struct {
	Liked      bool
	LikesCount int
}

// ToggleLikeUseCase flips the caller's like on a post.
type ToggleLikeUseCase struct {
	postRepo  adapter.PostRepository
	publisher adapter.PostEventPublisher
}

// NewToggleLikeUseCase creates a new ToggleLikeUseCase instance.
func NewToggleLikeUseCase(postRepo adapter.PostRepository, publisher adapter.PostEventPublisher) *ToggleLikeUseCase {
	return &ToggleLikeUseCase{
		postRepo:  postRepo,
		publisher: publisher,
	}
}

// Execute toggles the like.
func (uc *ToggleLikeUseCase) Execute(ctx context.Context, input ToggleLikeInput) (*ToggleLikeOutput, error) {
	post, err := findPost(ctx, uc.postRepo, input.PostID)
	if err != nil {
		return nil, err
	}
	if !canView(post, input.UserID) {
		return nil, postNotFound()
	}

	updated, liked, err := uc.postRepo.ToggleLike(ctx, post.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPostNotFound) {
			return nil, postNotFound()
		}
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	publish(ctx, uc.publisher, entity.PostEventUpdate, updated)

	return &ToggleLikeOutput{
		Liked:      liked,
		LikesCount: updated.LikesCount,
	}, nil
}
