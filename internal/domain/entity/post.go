package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostVisibility controls who sees a post in the feed.
type PostVisibility string

const (
	PostVisibilityPublic    PostVisibility = "public"
	PostVisibilityFollowers PostVisibility = "followers"
	PostVisibilityPrivate   PostVisibility = "private"
)

// IsValid reports whether v is a known post visibility.
func (v PostVisibility) IsValid() bool {
	switch v {
	case PostVisibilityPublic, PostVisibilityFollowers, PostVisibilityPrivate:
		return true
	}
	return false
}

// Post is a feed entry written by a member, optionally tagging their pets.
type Post struct {
	ID            uuid.UUID
	AuthorID      uuid.UUID
	Content       string
	MediaURLs     []string
	PetIDs        []uuid.UUID
	Visibility    PostVisibility
	LikesCount    int
	CommentsCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPost creates a new Post with zeroed counters.
func NewPost(authorID uuid.UUID, content string, visibility PostVisibility) *Post {
	now := time.Now().UTC()
	return &Post{
		ID:         uuid.New(),
		AuthorID:   authorID,
		Content:    content,
		MediaURLs:  []string{},
		PetIDs:     []uuid.UUID{},
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Author is the slice of a profile shown next to posts and comments.
type Author struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	AvatarURL   string
}

// FeedPost is a post joined with its author and the viewer's like state.
type FeedPost struct {
	Post
	Author    Author
	LikedByMe bool
}

// Comment is a reply on a post.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
}

// NewComment creates a new Comment on postID.
func NewComment(postID, authorID uuid.UUID, content string) *Comment {
	return &Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// CommentWithAuthor is a comment joined with its author.
type CommentWithAuthor struct {
	Comment
	Author Author
}

// PostEventType names the change a realtime post event carries.
type PostEventType string

const (
	PostEventInsert PostEventType = "INSERT"
	PostEventUpdate PostEventType = "UPDATE"
	PostEventDelete PostEventType = "DELETE"
)

// PostEvent is published whenever a post changes.
type PostEvent struct {
	Event PostEventType `json:"event"`
	Post  PostSnapshot  `json:"post"`
}

// PostSnapshot is the wire form of a post inside a PostEvent.
type PostSnapshot struct {
	ID            uuid.UUID      `json:"id"`
	AuthorID      uuid.UUID      `json:"author_id"`
	Content       string         `json:"content"`
	MediaURLs     []string       `json:"media_urls"`
	PetIDs        []uuid.UUID    `json:"pet_ids"`
	Visibility    PostVisibility `json:"visibility"`
	LikesCount    int            `json:"likes_count"`
	CommentsCount int            `json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
}

// NewPostEvent snapshots p for publication.
func NewPostEvent(event PostEventType, p *Post) PostEvent {
	return PostEvent{
		Event: event,
		Post: PostSnapshot{
			ID:            p.ID,
			AuthorID:      p.AuthorID,
			Content:       p.Content,
			MediaURLs:     p.MediaURLs,
			PetIDs:        p.PetIDs,
			Visibility:    p.Visibility,
			LikesCount:    p.LikesCount,
			CommentsCount: p.CommentsCount,
			CreatedAt:     p.CreatedAt,
		},
	}
}
