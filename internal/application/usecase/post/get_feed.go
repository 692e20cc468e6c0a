package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// FeedLimit is the number of posts a feed page holds.
const FeedLimit = 50

// GetFeedInput represents the input for loading the feed.
type GetFeedInput struct {
	ViewerID uuid.UUID
}

// GetFeedOutput represents the output of loading the feed.
type GetFeedOutput struct {
	Posts []*entity.FeedPost
}

// GetFeedUseCase loads the latest posts the viewer may see.
type GetFeedUseCase struct {
	postRepo adapter.PostRepository
}

// NewGetFeedUseCase creates a new GetFeedUseCase instance.
func NewGetFeedUseCase(postRepo adapter.PostRepository) *GetFeedUseCase {
	return &GetFeedUseCase{
		postRepo: postRepo,
	}
}

// Execute returns public posts and the viewer's own, newest first.
func (uc *GetFeedUseCase) Execute(ctx context.Context, input GetFeedInput) (*GetFeedOutput, error) {
	posts, err := uc.postRepo.ListFeed(ctx, input.ViewerID, FeedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	if posts == nil {
		posts = []*entity.FeedPost{}
	}
	return &GetFeedOutput{Posts: posts}, nil
}
