package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

type fakeAuditRepo struct {
	logs []*entity.AuditLog
	err  error
}

func (f *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	if f.err != nil {
		return f.err
	}
	f.logs = append(f.logs, log)
	return nil
}

func TestRecorder_Record(t *testing.T) {
	userID := uuid.New()

	t.Run("stores entry", func(t *testing.T) {
		repo := &fakeAuditRepo{}
		NewRecorder(repo).Record(context.Background(), Entry{
			UserID:       userID,
			Action:       entity.AuditUserLogin,
			ResourceType: "user",
			ResourceID:   userID.String(),
			IPAddress:    "10.0.0.1",
		})

		if len(repo.logs) != 1 {
			t.Fatalf("expected 1 log, got %d", len(repo.logs))
		}
		got := repo.logs[0]
		if got.Action != entity.AuditUserLogin || got.IPAddress != "10.0.0.1" || got.UserID != userID {
			t.Errorf("unexpected log %+v", got)
		}
	})

	t.Run("swallows repository errors", func(t *testing.T) {
		repo := &fakeAuditRepo{err: errors.New("db down")}
		NewRecorder(repo).Record(context.Background(), Entry{UserID: userID, Action: entity.AuditUserLogout})
	})

	t.Run("nil recorder is a no-op", func(t *testing.T) {
		var r *Recorder
		r.Record(context.Background(), Entry{UserID: userID, Action: entity.AuditUserLogout})
	})
}
