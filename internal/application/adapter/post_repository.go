package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// PostRepository defines the interface for post, like and comment persistence.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListFeed returns up to limit posts visible to viewerID, newest first.
	ListFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entity.FeedPost, error)

	// ToggleLike flips the viewer's like and returns the post with its
	// refreshed counter, plus whether the post is now liked.
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*entity.Post, bool, error)

	// AddComment stores the comment and bumps comments_count in one transaction.
	AddComment(ctx context.Context, comment *entity.Comment) (*entity.Post, error)

	// ListComments returns the comments of a post, oldest first.
	ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.CommentWithAuthor, error)
}

// PostEventPublisher broadcasts post changes to realtime subscribers.
type PostEventPublisher interface {
	Publish(ctx context.Context, event entity.PostEvent) error
}

// PostEventSubscriber delivers post changes until ctx is done or the
// returned cancel function is called.
type PostEventSubscriber interface {
	Subscribe(ctx context.Context) (<-chan entity.PostEvent, func(), error)
}
