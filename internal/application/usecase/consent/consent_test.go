package consent

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

// fakeConsentRepo keeps history in insertion order.
type fakeConsentRepo struct {
	history []*entity.Consent
}

func (f *fakeConsentRepo) CreateBatch(_ context.Context, consents []*entity.Consent) error {
	f.history = append(f.history, consents...)
	return nil
}

func (f *fakeConsentRepo) Create(_ context.Context, consent *entity.Consent) error {
	f.history = append(f.history, consent)
	return nil
}

func (f *fakeConsentRepo) FindLatestByUser(_ context.Context, userID uuid.UUID) ([]*entity.Consent, error) {
	latest := map[entity.ConsentType]*entity.Consent{}
	for _, c := range f.history {
		if c.UserID == userID {
			latest[c.ConsentType] = c
		}
	}
	var out []*entity.Consent
	for _, t := range entity.AllConsentTypes {
		if c, ok := latest[t]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAuditRepo struct {
	logs []*entity.AuditLog
}

func (f *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func consentCode(t *testing.T, err error) domainerror.ConsentErrorCode {
	t.Helper()
	var consentErr *domainerror.ConsentError
	if !errors.As(err, &consentErr) {
		t.Fatalf("expected ConsentError, got %v", err)
	}
	return consentErr.Code
}

func TestGrantConsentsUseCase_Execute(t *testing.T) {
	user := uuid.New()

	t.Run("data processing is required", func(t *testing.T) {
		repo := &fakeConsentRepo{}
		_, err := NewGrantConsentsUseCase(repo, audit.NewRecorder(&fakeAuditRepo{})).Execute(context.Background(), GrantConsentsInput{
			UserID:    user,
			Marketing: true,
		})
		if consentCode(t, err) != domainerror.ErrCodeRequiredConsentMissing {
			t.Error("expected required consent missing")
		}
		if len(repo.history) != 0 {
			t.Error("nothing should be stored")
		}
	})

	t.Run("records all four types with the ip", func(t *testing.T) {
		repo := &fakeConsentRepo{}
		audits := &fakeAuditRepo{}
		out, err := NewGrantConsentsUseCase(repo, audit.NewRecorder(audits)).Execute(context.Background(), GrantConsentsInput{
			UserID:         user,
			DataProcessing: true,
			Analytics:      true,
			IPAddress:      "203.0.113.9",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Consents) != 4 {
			t.Fatalf("expected 4 consents, got %d", len(out.Consents))
		}

		want := map[entity.ConsentType]bool{
			entity.ConsentDataProcessing: true,
			entity.ConsentMarketing:      false,
			entity.ConsentLocation:       false,
			entity.ConsentAnalytics:      true,
		}
		for _, c := range out.Consents {
			if c.Granted != want[c.ConsentType] || c.IPAddress != "203.0.113.9" {
				t.Errorf("unexpected consent %+v", c)
			}
		}
		if len(audits.logs) != 1 || audits.logs[0].Action != entity.AuditConsentGranted {
			t.Errorf("expected one grant audit, got %+v", audits.logs)
		}
	})
}

func TestUpdateConsentUseCase_Execute(t *testing.T) {
	user := uuid.New()
	repo := &fakeConsentRepo{}
	audits := &fakeAuditRepo{}
	uc := NewUpdateConsentUseCase(repo, audit.NewRecorder(audits))

	_, err := uc.Execute(context.Background(), UpdateConsentInput{UserID: user, ConsentType: "cookies", Granted: true})
	if consentCode(t, err) != domainerror.ErrCodeInvalidConsentType {
		t.Error("expected invalid type")
	}

	_, err = uc.Execute(context.Background(), UpdateConsentInput{UserID: user, ConsentType: "data_processing", Granted: false})
	if consentCode(t, err) != domainerror.ErrCodeRequiredConsentRevoke {
		t.Error("expected required revoke rejection")
	}

	if _, err := uc.Execute(context.Background(), UpdateConsentInput{UserID: user, ConsentType: "marketing", Granted: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Execute(context.Background(), UpdateConsentInput{UserID: user, ConsentType: "marketing", Granted: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audits.logs) != 2 || audits.logs[0].Action != entity.AuditConsentGranted || audits.logs[1].Action != entity.AuditConsentRevoked {
		t.Errorf("unexpected audits %+v", audits.logs)
	}
	if audits.logs[1].ResourceID != "marketing" {
		t.Errorf("expected consent type as resource id, got %q", audits.logs[1].ResourceID)
	}
}

func TestGetConsentsUseCase_Execute(t *testing.T) {
	user := uuid.New()
	repo := &fakeConsentRepo{}
	uc := NewGetConsentsUseCase(repo)

	out, err := uc.Execute(context.Background(), GetConsentsInput{UserID: user})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.HasConsent || out.Consents == nil {
		t.Errorf("expected no consent and empty list, got %+v", out)
	}

	repo.history = append(repo.history,
		entity.NewConsent(user, entity.ConsentMarketing, true, ""),
		entity.NewConsent(user, entity.ConsentDataProcessing, true, ""),
		entity.NewConsent(user, entity.ConsentMarketing, false, ""),
	)

	out, err = uc.Execute(context.Background(), GetConsentsInput{UserID: user})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.HasConsent || len(out.Consents) != 2 {
		t.Errorf("expected consent with 2 latest rows, got %+v", out)
	}
	for _, c := range out.Consents {
		if c.ConsentType == entity.ConsentMarketing && c.Granted {
			t.Error("latest marketing decision is a revocation")
		}
	}
}
