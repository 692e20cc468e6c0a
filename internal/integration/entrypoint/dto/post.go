package dto

import (
	"time"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// CreatePostRequest represents the request body for publishing a post.
type CreatePostRequest struct {
	Content    string   `json:"content" binding:"required"`
	MediaURLs  []string `json:"media_urls"`
	Visibility string   `json:"visibility"`
	PetIDs     []string `json:"pet_ids" binding:"omitempty,dive,uuid"`
}

// CreateCommentRequest represents the request body for commenting on a post.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AuthorResponse is the author summary joined onto posts, comments and reviews.
type AuthorResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// PostResponse represents a post in API responses.
type PostResponse struct {
	ID            string          `json:"id"`
	AuthorID      string          `json:"author_id"`
	Content       string          `json:"content"`
	MediaURLs     []string        `json:"media_urls"`
	PetIDs        []string        `json:"pet_ids"`
	Visibility    string          `json:"visibility"`
	LikesCount    int             `json:"likes_count"`
	CommentsCount int             `json:"comments_count"`
	Author        *AuthorResponse `json:"author,omitempty"`
	LikedByMe     bool            `json:"liked_by_me"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// FeedResponse represents the response for the feed.
type FeedResponse struct {
	Posts []PostResponse `json:"posts"`
}

// LikeResponse reports the like state after a toggle.
type LikeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID        string          `json:"id"`
	PostID    string          `json:"post_id"`
	AuthorID  string          `json:"author_id"`
	Content   string          `json:"content"`
	Author    *AuthorResponse `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateCommentResponse carries the new comment and the post's comment count.
type CreateCommentResponse struct {
	Comment       CommentResponse `json:"comment"`
	CommentsCount int             `json:"comments_count"`
}

// CommentListResponse represents the response for listing comments.
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

// ToAuthorResponse converts an author summary to its DTO.
func ToAuthorResponse(a entity.Author) *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID.String(),
		Username:    a.Username,
		DisplayName: a.DisplayName,
		AvatarURL:   a.AvatarURL,
	}
}

// ToPostResponse converts a domain Post entity to a PostResponse DTO.
func ToPostResponse(p *entity.Post) PostResponse {
	petIDs := make([]string, len(p.PetIDs))
	for i, id := range p.PetIDs {
		petIDs[i] = id.String()
	}

	mediaURLs := p.MediaURLs
	if mediaURLs == nil {
		mediaURLs = []string{}
	}

	return PostResponse{
		ID:            p.ID.String(),
		AuthorID:      p.AuthorID.String(),
		Content:       p.Content,
		MediaURLs:     mediaURLs,
		PetIDs:        petIDs,
		Visibility:    string(p.Visibility),
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToFeedResponse converts feed posts to a FeedResponse DTO.
func ToFeedResponse(posts []*entity.FeedPost) FeedResponse {
	responses := make([]PostResponse, len(posts))
	for i, fp := range posts {
		response := ToPostResponse(&fp.Post)
		response.Author = ToAuthorResponse(fp.Author)
		response.LikedByMe = fp.LikedByMe
		responses[i] = response
	}
	return FeedResponse{Posts: responses}
}

// ToCommentResponse converts a domain Comment entity to a CommentResponse DTO.
func ToCommentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		AuthorID:  c.AuthorID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// ToCommentListResponse converts comments with their authors to a DTO.
func ToCommentListResponse(comments []*entity.CommentWithAuthor) CommentListResponse {
	responses := make([]CommentResponse, len(comments))
	for i, c := range comments {
		response := ToCommentResponse(&c.Comment)
		response.Author = ToAuthorResponse(c.Author)
		responses[i] = response
	}
	return CommentListResponse{Comments: responses}
}
