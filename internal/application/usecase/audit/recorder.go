// Package audit writes the security audit trail on behalf of other use cases.
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// Entry describes one audited action.
type Entry struct {
	UserID       uuid.UUID
	Action       entity.AuditAction
	ResourceType string
	ResourceID   string
	IPAddress    string
}

// Recorder appends audit entries. A failed write is logged and never
// propagated to the action being audited.
type Recorder struct {
	repo adapter.AuditLogRepository
}

// NewRecorder creates a new Recorder instance.
func NewRecorder(repo adapter.AuditLogRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Record stores entry.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	if r == nil || r.repo == nil {
		return
	}

	log := entity.NewAuditLog(entry.UserID, entry.Action, entry.ResourceType, entry.ResourceID, entry.IPAddress)
	if err := r.repo.Create(ctx, log); err != nil {
		slog.Error("Failed to write audit log",
			"error", err,
			"action", entry.Action,
			"userID", entry.UserID,
		)
	}
}
