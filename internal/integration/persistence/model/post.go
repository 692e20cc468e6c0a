package model

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// PostModel represents the posts table in the database.
type PostModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Content       string    `gorm:"type:varchar(2000);not null"`
	MediaURLs     TextArray `gorm:"column:media_urls"`
	PetIDs        TextArray `gorm:"column:pet_ids"`
	Visibility    string    `gorm:"type:varchar(20);not null;default:'public'"`
	LikesCount    int       `gorm:"not null;default:0"`
	CommentsCount int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the PostModel.
func (PostModel) TableName() string {
	return "posts"
}

// ToEntity converts a PostModel to a domain Post entity.
func (m *PostModel) ToEntity() *entity.Post {
	petIDs := make([]uuid.UUID, 0, len(m.PetIDs))
	for _, raw := range m.PetIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			slog.Warn("Skipping malformed pet id on post", "postID", m.ID, "petID", raw)
			continue
		}
		petIDs = append(petIDs, id)
	}

	mediaURLs := []string(m.MediaURLs)
	if mediaURLs == nil {
		mediaURLs = []string{}
	}

	return &entity.Post{
		ID:            m.ID,
		AuthorID:      m.AuthorID,
		Content:       m.Content,
		MediaURLs:     mediaURLs,
		PetIDs:        petIDs,
		Visibility:    entity.PostVisibility(m.Visibility),
		LikesCount:    m.LikesCount,
		CommentsCount: m.CommentsCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// PostModelFromEntity creates a PostModel from a domain Post entity.
func PostModelFromEntity(post *entity.Post) *PostModel {
	petIDs := make(TextArray, len(post.PetIDs))
	for i, id := range post.PetIDs {
		petIDs[i] = id.String()
	}

	return &PostModel{
		ID:            post.ID,
		AuthorID:      post.AuthorID,
		Content:       post.Content,
		MediaURLs:     TextArray(post.MediaURLs),
		PetIDs:        petIDs,
		Visibility:    string(post.Visibility),
		LikesCount:    post.LikesCount,
		CommentsCount: post.CommentsCount,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

// PostLikeModel represents the post_likes table. A member likes a post at most once.
type PostLikeModel struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PostLikeModel.
func (PostLikeModel) TableName() string {
	return "post_likes"
}

// CommentModel represents the comments table in the database.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `gorm:"type:uuid;index;not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Content   string    `gorm:"type:varchar(1000);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CommentModel.
func (CommentModel) TableName() string {
	return "comments"
}

// ToEntity converts a CommentModel to a domain Comment entity.
func (m *CommentModel) ToEntity() *entity.Comment {
	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// CommentModelFromEntity creates a CommentModel from a domain Comment entity.
func CommentModelFromEntity(comment *entity.Comment) *CommentModel {
	return &CommentModel{
		ID:        comment.ID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
