package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/persistence/model"
)

type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	if !job.TemplateType.IsValid() {
		return domainerror.NewEmailError(
			domainerror.ErrCodeUnknownTemplate,
			fmt.Sprintf("no template named %q", job.TemplateType),
			domainerror.ErrUnknownEmailTemplate,
		)
	}
	if strings.TrimSpace(job.RecipientEmail) == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"email job has no recipient",
			domainerror.ErrMissingRecipient,
		)
	}

	if err := r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to create email job",
			err,
		)
	}
	return nil
}

func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var rows []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", entity.EmailStatusPending, time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load pending emails: %w", err)
	}

	jobs := make([]*entity.EmailJob, len(rows))
	for i := range rows {
		jobs[i] = rows[i].ToEntity()
	}
	return jobs, nil
}

func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return fmt.Errorf("failed to update email job: %w", err)
	}
	return nil
}

// DeletePendingForUser leaves jobs a worker has already claimed alone, since
// Update would write them back.
func (r *emailQueueRepository) DeletePendingForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entity.EmailStatusPending).
		Delete(&model.EmailQueueModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to discard queued emails: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *emailQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", entity.EmailStatusSent, cutoff).
		Delete(&model.EmailQueueModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge sent emails: %w", result.Error)
	}
	return result.RowsAffected, nil
}
