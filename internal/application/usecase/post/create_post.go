// Package post contains use cases for the social feed.
package post

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

const maxContentLength = 2000

// CreatePostInput represents the input for publishing a post.
type CreatePostInput struct {
	AuthorID   uuid.UUID
	Content    string
	MediaURLs  []string
	Visibility string
	PetIDs     []uuid.UUID
}

// CreatePostOutput represents the output of publishing a post.
type CreatePostOutput struct {
	Post *entity.Post
}

// CreatePostUseCase handles publishing a post.
type CreatePostUseCase struct {
	postRepo  adapter.PostRepository
	petRepo   adapter.PetRepository
	publisher adapter.PostEventPublisher
}

// NewCreatePostUseCase creates a new CreatePostUseCase instance.
func NewCreatePostUseCase(
	postRepo adapter.PostRepository,
	petRepo adapter.PetRepository,
	publisher adapter.PostEventPublisher,
) *CreatePostUseCase {
	return &CreatePostUseCase{
		postRepo:  postRepo,
		petRepo:   petRepo,
		publisher: publisher,
	}
}

// Execute validates, stores and announces the post.
func (uc *CreatePostUseCase) Execute(ctx context.Context, input CreatePostInput) (*CreatePostOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" || utf8.RuneCountInString(content) > maxContentLength {
		return nil, domainerror.NewPostError(
			domainerror.ErrCodeInvalidPostContent,
			fmt.Sprintf("content must be between 1 and %d characters", maxContentLength),
			domainerror.ErrInvalidPostContent,
		)
	}

	visibility := entity.PostVisibilityPublic
	if input.Visibility != "" {
		visibility = entity.PostVisibility(input.Visibility)
		if !visibility.IsValid() {
			return nil, domainerror.NewPostError(
				domainerror.ErrCodeInvalidPostVisibility,
				"visibility must be one of: public, followers, private",
				domainerror.ErrInvalidPostVisibility,
			)
		}
	}

	petIDs := uniqueIDs(input.PetIDs)
	if len(petIDs) > 0 {
		owned, err := uc.petRepo.CountOwned(ctx, input.AuthorID, petIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to check tagged pets: %w", err)
		}
		if owned != int64(len(petIDs)) {
			return nil, domainerror.NewPostError(
				domainerror.ErrCodeTaggedPetNotOwned,
				"you can only tag your own pets",
				domainerror.ErrTaggedPetNotOwned,
			)
		}
	}

	post := entity.NewPost(input.AuthorID, content, visibility)
	post.PetIDs = petIDs
	for _, url := range input.MediaURLs {
		if url = strings.TrimSpace(url); url != "" {
			post.MediaURLs = append(post.MediaURLs, url)
		}
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	publish(ctx, uc.publisher, entity.PostEventInsert, post)

	return &CreatePostOutput{Post: post}, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// publish announces a change. Realtime delivery is best effort, so a
// failure is only logged.
func publish(ctx context.Context, publisher adapter.PostEventPublisher, event entity.PostEventType, post *entity.Post) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, entity.NewPostEvent(event, post)); err != nil {
		slog.Warn("Failed to publish post event", "error", err, "event", event, "postID", post.ID)
	}
}
