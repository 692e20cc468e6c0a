package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	"github.com/pawz-connect/backend/internal/integration/persistence/model"
)

// consentRepository implements the adapter.ConsentRepository interface.
type consentRepository struct {
	db *gorm.DB
}

// NewConsentRepository creates a new consent repository instance.
func NewConsentRepository(db *gorm.DB) adapter.ConsentRepository {
	return &consentRepository{
		db: db,
	}
}

// CreateBatch appends several consent decisions in one transaction.
func (r *consentRepository) CreateBatch(ctx context.Context, consents []*entity.Consent) error {
	if len(consents) == 0 {
		return nil
	}

	models := make([]*model.ConsentModel, len(consents))
	for i, c := range consents {
		models[i] = model.ConsentModelFromEntity(c)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
}

// Create appends one consent decision.
func (r *consentRepository) Create(ctx context.Context, consent *entity.Consent) error {
	return r.db.WithContext(ctx).Create(model.ConsentModelFromEntity(consent)).Error
}

// FindLatestByUser returns the newest decision per consent type.
func (r *consentRepository) FindLatestByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Consent, error) {
	var models []model.ConsentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	seen := make(map[string]bool, len(entity.AllConsentTypes))
	latest := make([]*entity.Consent, 0, len(entity.AllConsentTypes))
	for i := range models {
		if seen[models[i].ConsentType] {
			continue
		}
		seen[models[i].ConsentType] = true
		latest = append(latest, models[i].ToEntity())
	}
	return latest, nil
}

// auditLogRepository implements the adapter.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository instance.
func NewAuditLogRepository(db *gorm.DB) adapter.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends an audit entry.
func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return r.db.WithContext(ctx).Create(model.AuditLogModelFromEntity(log)).Error
}
