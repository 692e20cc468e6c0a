package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

// ConsentRepository defines the interface for consent history persistence.
type ConsentRepository interface {
	// CreateBatch appends several decisions in one transaction.
	CreateBatch(ctx context.Context, consents []*entity.Consent) error

	Create(ctx context.Context, consent *entity.Consent) error

	// FindLatestByUser returns the most recent decision per consent type.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Consent, error)
}

// AuditLogRepository appends audit trail entries.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
}
