package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/persistence/model"
)

// postRepository implements the adapter.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance.
func NewPostRepository(db *gorm.DB) adapter.PostRepository {
	return &postRepository{
		db: db,
	}
}

// feedRow is a post joined with its author's profile.
type feedRow struct {
	model.PostModel
	AuthorUsername    string
	AuthorDisplayName string
	AuthorAvatarURL   string
	LikedByMe         bool
}

// commentRow is a comment joined with its author's profile.
type commentRow struct {
	model.CommentModel
	AuthorUsername    string
	AuthorDisplayName string
	AuthorAvatarURL   string
}

// Create creates a new post in the database.
func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return r.db.WithContext(ctx).Create(model.PostModelFromEntity(post)).Error
}

// FindByID retrieves a post by its ID.
func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	return findPost(r.db.WithContext(ctx), id)
}

func findPost(db *gorm.DB, id uuid.UUID) (*entity.Post, error) {
	var postModel model.PostModel
	result := db.Where("id = ?", id).First(&postModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPostNotFound
		}
		return nil, result.Error
	}
	return postModel.ToEntity(), nil
}

// Delete removes a post with its likes and comments.
func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PostModel{}).Error
	})
}

// ListFeed returns public posts and the viewer's own posts, newest first.
func (r *postRepository) ListFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entity.FeedPost, error) {
	var rows []feedRow
	result := r.db.WithContext(ctx).
		Table("posts").
		Select(`posts.*,
			profiles.username AS author_username,
			profiles.display_name AS author_display_name,
			profiles.avatar_url AS author_avatar_url,
			EXISTS (SELECT 1 FROM post_likes WHERE post_likes.post_id = posts.id AND post_likes.user_id = ?) AS liked_by_me`, viewerID).
		Joins("JOIN profiles ON profiles.id = posts.author_id").
		Where("posts.visibility = ? OR posts.author_id = ?", entity.PostVisibilityPublic, viewerID).
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	posts := make([]*entity.FeedPost, len(rows))
	for i := range rows {
		row := &rows[i]
		posts[i] = &entity.FeedPost{
			Post: *row.ToEntity(),
			Author: entity.Author{
				ID:          row.AuthorID,
				Username:    row.AuthorUsername,
				DisplayName: row.AuthorDisplayName,
				AvatarURL:   row.AuthorAvatarURL,
			},
			LikedByMe: row.LikedByMe,
		}
	}
	return posts, nil
}

// ToggleLike adds or removes the user's like and keeps likes_count in step.
func (r *postRepository) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (*entity.Post, bool, error) {
	var (
		post  *entity.Post
		liked bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, postID); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&model.PostLikeModel{}).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Count(&existing).Error; err != nil {
			return err
		}

		delta := "likes_count + 1"
		if existing > 0 {
			if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.PostLikeModel{}).Error; err != nil {
				return err
			}
			delta = "CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END"
		} else {
			like := &model.PostLikeModel{PostID: postID, UserID: userID, CreatedAt: time.Now().UTC()}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			liked = true
		}

		if err := tx.Model(&model.PostModel{}).
			Where("id = ?", postID).
			Update("likes_count", gorm.Expr(delta)).Error; err != nil {
			return err
		}

		var err error
		post, err = findPost(tx, postID)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return post, liked, nil
}

// AddComment stores a comment and increments comments_count.
func (r *postRepository) AddComment(ctx context.Context, comment *entity.Comment) (*entity.Post, error) {
	var post *entity.Post

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, comment.PostID); err != nil {
			return err
		}
		if err := tx.Create(model.CommentModelFromEntity(comment)).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PostModel{}).
			Where("id = ?", comment.PostID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error; err != nil {
			return err
		}

		var err error
		post, err = findPost(tx, comment.PostID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListComments returns a post's comments with their authors, oldest first.
func (r *postRepository) ListComments(ctx context.Context, postID uuid.UUID) ([]*entity.CommentWithAuthor, error) {
	var rows []commentRow
	result := r.db.WithContext(ctx).
		Table("comments").
		Select(`comments.*,
			profiles.username AS author_username,
			profiles.display_name AS author_display_name,
			profiles.avatar_url AS author_avatar_url`).
		Joins("JOIN profiles ON profiles.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	comments := make([]*entity.CommentWithAuthor, len(rows))
	for i := range rows {
		row := &rows[i]
		comments[i] = &entity.CommentWithAuthor{
			Comment: *row.ToEntity(),
			Author: entity.Author{
				ID:          row.AuthorID,
				Username:    row.AuthorUsername,
				DisplayName: row.AuthorDisplayName,
				AvatarURL:   row.AuthorAvatarURL,
			},
		}
	}
	return comments, nil
}
