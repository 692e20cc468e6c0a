// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateWithProfile creates a user and its profile in one transaction.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.UserModelFromEntity(user)).Error; err != nil {
			return err
		}
		return tx.Create(model.ProfileModelFromEntity(profile)).Error
	})
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// Update updates an existing user in the database.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(model.UserModelFromEntity(user)).Error
}

// Delete removes a user with their profile, pets, posts, reviews and
// consents. Audit logs are kept.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var petIDs, postIDs []uuid.UUID
		if err := tx.Model(&model.PetModel{}).Where("owner_id = ?", id).Pluck("id", &petIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PostModel{}).Where("author_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if len(petIDs) > 0 {
			if err := tx.Where("pet_id IN ?", petIDs).Delete(&model.HealthRecordModel{}).Error; err != nil {
				return err
			}
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.PostLikeModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.CommentModel{}).Error; err != nil {
				return err
			}
		}

		owned := []struct {
			model  any
			column string
		}{
			{&model.PostLikeModel{}, "user_id"},
			{&model.CommentModel{}, "author_id"},
			{&model.PostModel{}, "author_id"},
			{&model.PetModel{}, "owner_id"},
			{&model.ServiceReviewModel{}, "user_id"},
			{&model.ConsentModel{}, "user_id"},
			{&model.RefreshTokenModel{}, "user_id"},
			{&model.PasswordResetTokenModel{}, "user_id"},
			{&model.ProfileModel{}, "id"},
			{&model.UserModel{}, "id"},
		}
		for _, o := range owned {
			if err := tx.Where(o.column+" = ?", id).Delete(o.model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ExistsByEmail checks if a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
