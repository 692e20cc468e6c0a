package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// EmailQueueRepository persists the outbound email queue.
type EmailQueueRepository interface {
	// Create rejects jobs whose template has no renderer or that have no recipient.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs returns due pending jobs, oldest schedule first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	Update(ctx context.Context, job *entity.EmailJob) error

	// DeletePendingForUser drops every undelivered job queued for a member.
	DeletePendingForUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteOldSentJobs removes sent jobs processed more than olderThanDays ago.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
