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

// DeletePostInput represents the input for deleting a post.
type DeletePostInput struct {
	PostID uuid.UUID
	UserID uuid.UUID
}

// DeletePostUseCase handles post deletion by its author.
type DeletePostUseCase struct {
	postRepo  adapter.PostRepository
	publisher adapter.PostEventPublisher
}

// NewDeletePostUseCase creates a new DeletePostUseCase instance.
func NewDeletePostUseCase(postRepo adapter.PostRepository, publisher adapter.PostEventPublisher) *DeletePostUseCase {
	return &DeletePostUseCase{
		postRepo:  postRepo,
		publisher: publisher,
	}
}

// Execute deletes the post.
func (uc *DeletePostUseCase) Execute(ctx context.Context, input DeletePostInput) error {
	post, err := findPost(ctx, uc.postRepo, input.PostID)
	if err != nil {
		return err
	}

	if post.AuthorID != input.UserID {
		return domainerror.NewPostError(
			domainerror.ErrCodeNotPostAuthor,
			"only the author can delete this post",
			domainerror.ErrNotPostAuthor,
		)
	}

	if err := uc.postRepo.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	publish(ctx, uc.publisher, entity.PostEventDelete, post)
	return nil
}

func findPost(ctx context.Context, repo adapter.PostRepository, id uuid.UUID) (*entity.Post, error) {
	post, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrPostNotFound) {
			return nil, postNotFound()
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

func postNotFound() error {
	return domainerror.NewPostError(
		domainerror.ErrCodePostNotFound,
		"post not found",
		domainerror.ErrPostNotFound,
	)
}

// canView reports whether viewerID may see post.
func canView(post *entity.Post, viewerID uuid.UUID) bool {
	return post.Visibility == entity.PostVisibilityPublic || post.AuthorID == viewerID
}
