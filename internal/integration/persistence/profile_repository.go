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

// profileRepository implements the adapter.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(db *gorm.DB) adapter.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves the profile of a user.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByUsername retrieves a profile by its username.
func (r *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var profileModel model.ProfileModel
	result := r.db.WithContext(ctx).Where(query, arg).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

// ExistsByUsername checks if a username is taken.
func (r *profileRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("username = ?", username).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update saves the profile.
func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Save(model.ProfileModelFromEntity(profile)).Error
}
