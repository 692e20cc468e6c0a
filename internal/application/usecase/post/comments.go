package post

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

const maxCommentLength = 1000

// AddCommentInput represents the input for commenting on a post.
type AddCommentInput struct {
	PostID   uuid.UUID
	AuthorID uuid.UUID
	Content  string
}

// AddCommentOutput represents the output of commenting on a post.
type AddCommentOutput struct {
	Comment       *entity.Comment
	CommentsCount int
}

// AddCommentUseCase handles new comments.
type AddCommentUseCase struct {
	postRepo  adapter.PostRepository
	publisher adapter.PostEventPublisher
}

// NewAddCommentUseCase creates a new AddCommentUseCase instance.
func NewAddCommentUseCase(postRepo adapter.PostRepository, publisher adapter.PostEventPublisher) *AddCommentUseCase {
	return &AddCommentUseCase{
		postRepo:  postRepo,
		publisher: publisher,
	}
}

// Execute stores the comment and bumps the post's counter.
func (uc *AddCommentUseCase) Execute(ctx context.Context, input AddCommentInput) (*AddCommentOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" || utf8.RuneCountInString(content) > maxCommentLength {
		return nil, domainerror.NewPostError(
			domainerror.ErrCodeInvalidCommentContent,
			fmt.Sprintf("comment must be between 1 and %d characters", maxCommentLength),
			domainerror.ErrInvalidCommentContent,
		)
	}

	post, err := findPost(ctx, uc.postRepo, input.PostID)
	if err != nil {
		return nil, err
	}
	if !canView(post, input.AuthorID) {
		return nil, postNotFound()
	}

	comment := entity.NewComment(post.ID, input.AuthorID, content)
	updated, err := uc.postRepo.AddComment(ctx, comment)
	if err != nil {
		if errors.Is(err, domainerror.ErrPostNotFound) {
			return nil, postNotFound()
		}
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	publish(ctx, uc.publisher, entity.PostEventUpdate, updated)

	return &AddCommentOutput{
		Comment:       comment,
		CommentsCount: updated.CommentsCount,
	}, nil
}

// ListCommentsInput represents the input for listing comments.
type ListCommentsInput struct {
	PostID   uuid.UUID
	ViewerID uuid.UUID
}

// ListCommentsOutput represents the output of listing comments.
type ListCommentsOutput struct {
	Comments []*entity.CommentWithAuthor
}

// ListCommentsUseCase lists the comments of a visible post.
type ListCommentsUseCase struct {
	postRepo adapter.PostRepository
}

// NewListCommentsUseCase creates a new ListCommentsUseCase instance.
func NewListCommentsUseCase(postRepo adapter.PostRepository) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		postRepo: postRepo,
	}
}

// Execute returns the comments oldest first.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, input ListCommentsInput) (*ListCommentsOutput, error) {
	post, err := findPost(ctx, uc.postRepo, input.PostID)
	if err != nil {
		return nil, err
	}
	if !canView(post, input.ViewerID) {
		return nil, postNotFound()
	}

	comments, err := uc.postRepo.ListComments(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []*entity.CommentWithAuthor{}
	}
	return &ListCommentsOutput{Comments: comments}, nil
}
