package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/persistence/model"
)

// petServiceRepository implements the adapter.PetServiceRepository interface.
type petServiceRepository struct {
	db *gorm.DB
}

// NewPetServiceRepository creates a new pet service repository instance.
func NewPetServiceRepository(db *gorm.DB) adapter.PetServiceRepository {
	return &petServiceRepository{
		db: db,
	}
}

// List returns verified services, best rated first. Search matches name,
// description and address case-insensitively.
func (r *petServiceRepository) List(ctx context.Context, filter adapter.ServiceFilter) ([]*entity.PetService, error) {
	query := r.db.WithContext(ctx).
		Model(&model.PetServiceModel{}).
		Where("verified = ?", true)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\' OR LOWER(address) LIKE ? ESCAPE '\\'",
			pattern, pattern, pattern,
		)
	}

	var models []model.PetServiceModel
	result := query.
		Order("rating_avg DESC").
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	services := make([]*entity.PetService, len(models))
	for i := range models {
		services[i] = models[i].ToEntity()
	}
	return services, nil
}

// FindByID retrieves a service by its ID.
func (r *petServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PetService, error) {
	var serviceModel model.PetServiceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&serviceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrServiceNotFound
		}
		return nil, result.Error
	}
	return serviceModel.ToEntity(), nil
}

// Update saves the service.
func (r *petServiceRepository) Update(ctx context.Context, service *entity.PetService) error {
	return r.db.WithContext(ctx).Save(model.PetServiceModelFromEntity(service)).Error
}

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// serviceReviewRepository implements the adapter.ServiceReviewRepository interface.
type serviceReviewRepository struct {
	db *gorm.DB
}

// NewServiceReviewRepository creates a new service review repository instance.
func NewServiceReviewRepository(db *gorm.DB) adapter.ServiceReviewRepository {
	return &serviceReviewRepository{
		db: db,
	}
}

// Create stores a review.
func (r *serviceReviewRepository) Create(ctx context.Context, review *entity.ServiceReview) error {
	return r.db.WithContext(ctx).Create(model.ServiceReviewModelFromEntity(review)).Error
}

// ExistsByServiceAndUser checks if the user already reviewed the service.
func (r *serviceReviewRepository) ExistsByServiceAndUser(ctx context.Context, serviceID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ServiceReviewModel{}).
		Where("service_id = ? AND user_id = ?", serviceID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// reviewRow is a review joined with its author's profile.
type reviewRow struct {
	model.ServiceReviewModel
	AuthorUsername    string
	AuthorDisplayName string
	AuthorAvatarURL   string
}

// ListApproved returns the approved reviews of a service, newest first.
func (r *serviceReviewRepository) ListApproved(ctx context.Context, serviceID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	var rows []reviewRow
	result := r.db.WithContext(ctx).
		Table("service_reviews").
		Select(`service_reviews.*,
			profiles.username AS author_username,
			profiles.display_name AS author_display_name,
			profiles.avatar_url AS author_avatar_url`).
		Joins("JOIN profiles ON profiles.id = service_reviews.user_id").
		Where("service_reviews.service_id = ? AND service_reviews.status = ?", serviceID, entity.ReviewStatusApproved).
		Order("service_reviews.created_at DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	reviews := make([]*entity.ReviewWithAuthor, len(rows))
	for i := range rows {
		row := &rows[i]
		reviews[i] = &entity.ReviewWithAuthor{
			ServiceReview: *row.ToEntity(),
			Author: entity.Author{
				ID:          row.UserID,
				Username:    row.AuthorUsername,
				DisplayName: row.AuthorDisplayName,
				AvatarURL:   row.AuthorAvatarURL,
			},
		}
	}
	return reviews, nil
}
