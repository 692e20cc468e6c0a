package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/email/templates"
)

type fakeQueue struct {
	jobs        []*entity.EmailJob
	purgedDays  int
	updateCalls int
}

func (q *fakeQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.IsReadyToProcess() && len(pending) < limit {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(_ context.Context, _ *entity.EmailJob) error {
	q.updateCalls++
	return nil
}

func (q *fakeQueue) DeletePendingForUser(_ context.Context, userID uuid.UUID) (int64, error) {
	kept := q.jobs[:0]
	var deleted int64
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && job.UserID != nil && *job.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, job)
	}
	q.jobs = kept
	return deleted, nil
}

func (q *fakeQueue) byRecipient(email string) []*entity.EmailJob {
	var jobs []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

func (q *fakeQueue) DeleteOldSentJobs(_ context.Context, olderThanDays int) (int64, error) {
	q.purgedDays = olderThanDays
	return 0, nil
}

var _ adapter.EmailQueueRepository = (*fakeQueue)(nil)

func newTestWorker(t *testing.T, queue *fakeQueue, sender adapter.EmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestService_QueuesWelcomeAndReset(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	service := NewService(queue, "https://app.pawz.example")

	if err := service.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
		UserEmail:   "ana@example.com",
		DisplayName: "Ana",
		Username:    "ana",
	}); err != nil {
		t.Fatalf("QueueWelcomeEmail() error = %v", err)
	}
	if err := service.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserEmail: "ana@example.com",
		UserName:  "Ana",
		ResetURL:  "https://app.pawz.example/reset-password?token=t",
		ExpiresIn: "1 hour",
	}); err != nil {
		t.Fatalf("QueuePasswordResetEmail() error = %v", err)
	}

	jobs := queue.byRecipient("ana@example.com")
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].TemplateType != entity.TemplateWelcome || jobs[0].Subject != "Welcome to Pawz Connect, Ana!" {
		t.Errorf("unexpected welcome job %+v", jobs[0])
	}
	if jobs[0].TemplateData["app_url"] != "https://app.pawz.example" {
		t.Errorf("expected app url in template data, got %v", jobs[0].TemplateData)
	}
	if jobs[1].TemplateType != entity.TemplatePasswordReset {
		t.Errorf("expected password reset job, got %s", jobs[1].TemplateType)
	}
}

func TestService_LinksJobsToMember(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	service := NewService(queue, "https://app.pawz.example")
	userID := uuid.New()

	_ = service.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{UserID: userID, UserEmail: "ana@example.com", DisplayName: "Ana", Username: "ana"})
	_ = service.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{UserEmail: "guest@example.com", DisplayName: "Guest", Username: "guest"})

	if len(queue.jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(queue.jobs))
	}
	if got := queue.jobs[0].UserID; got == nil || *got != userID {
		t.Errorf("expected job linked to %s, got %v", userID, got)
	}
	if got := queue.jobs[1].UserID; got != nil {
		t.Errorf("expected unlinked job for nil member, got %v", *got)
	}
}

func TestService_RejectsResetWithoutLink(t *testing.T) {
	queue := &fakeQueue{}
	service := NewService(queue, "https://app.pawz.example")

	err := service.QueuePasswordResetEmail(context.Background(), adapter.QueuePasswordResetInput{
		UserID:    uuid.New(),
		UserEmail: "ana@example.com",
		ResetURL:  "   ",
	})

	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodeMissingResetLink {
		t.Fatalf("expected missing reset link error, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrMissingResetLink) {
		t.Errorf("expected ErrMissingResetLink in chain, got %v", err)
	}
	if len(queue.jobs) != 0 {
		t.Errorf("expected nothing queued, got %d jobs", len(queue.jobs))
	}
}

func TestService_DiscardPendingEmails(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	service := NewService(queue, "https://app.pawz.example")
	leaving, staying := uuid.New(), uuid.New()

	_ = service.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{UserID: leaving, UserEmail: "ana@example.com", DisplayName: "Ana", Username: "ana"})
	_ = service.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{UserID: leaving, UserEmail: "ana@example.com", ResetURL: "https://app.pawz.example/reset-password?token=t"})
	_ = service.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{UserID: staying, UserEmail: "ben@example.com", DisplayName: "Ben", Username: "ben"})
	queue.jobs[0].MarkSent("re_1")

	if err := service.DiscardPendingEmails(ctx, leaving); err != nil {
		t.Fatalf("DiscardPendingEmails() error = %v", err)
	}

	if len(queue.jobs) != 2 {
		t.Fatalf("expected 2 remaining jobs, got %d", len(queue.jobs))
	}
	if queue.jobs[0].Status != entity.EmailStatusSent {
		t.Errorf("expected the sent welcome to be kept, got %s", queue.jobs[0].Status)
	}
	if queue.jobs[1].RecipientEmail != "ben@example.com" {
		t.Errorf("expected the other member's job to be kept, got %s", queue.jobs[1].RecipientEmail)
	}
}

func TestWorker_SendsPendingJobs(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	sender := NewMockEmailSender()
	service := NewService(queue, "https://app.pawz.example")
	worker := newTestWorker(t, queue, sender)

	_ = service.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{UserEmail: "ana@example.com", DisplayName: "Ana", Username: "ana"})

	worker.ProcessNow(ctx)

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	sent := sender.SentEmails[0]
	if sent.To != "ana@example.com" || !strings.Contains(sent.Text, "@ana") {
		t.Errorf("unexpected email %+v", sent)
	}

	job := queue.jobs[0]
	if job.Status != entity.EmailStatusSent || job.ResendID != "mock-1" {
		t.Errorf("expected sent job with resend id, got %s %q", job.Status, job.ResendID)
	}
}

func TestWorker_TemporaryFailureSchedulesRetry(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("503 service unavailable"), false)
	worker := newTestWorker(t, queue, sender)

	_ = NewService(queue, "").QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{UserEmail: "ana@example.com", ResetURL: "https://app.pawz.example/reset-password?token=t"})

	worker.ProcessNow(ctx)

	job := queue.jobs[0]
	if job.Status != entity.EmailStatusPending || job.Attempts != 1 {
		t.Errorf("expected pending job after one attempt, got %s after %d", job.Status, job.Attempts)
	}
	if !job.ScheduledAt.After(job.CreatedAt) {
		t.Error("expected retry to be scheduled in the future")
	}
}

func TestWorker_PermanentFailureGivesUp(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("422 validation error"), true)
	worker := newTestWorker(t, queue, sender)

	_ = NewService(queue, "").QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{UserEmail: "ana@example.com", ResetURL: "https://app.pawz.example/reset-password?token=t"})

	worker.ProcessNow(ctx)

	if job := queue.jobs[0]; job.Status != entity.EmailStatusFailed {
		t.Errorf("expected failed job, got %s", job.Status)
	}
}

func TestWorker_UnknownTemplateFailsPermanently(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	_ = queue.Create(ctx, entity.NewEmailJob(entity.EmailTemplateType("group_invitation"), "ana@example.com", "Ana", "Hi", nil))

	worker.ProcessNow(ctx)

	if len(sender.SentEmails) != 0 {
		t.Errorf("expected nothing sent, got %d", len(sender.SentEmails))
	}
	if job := queue.jobs[0]; job.Status != entity.EmailStatusFailed {
		t.Errorf("expected failed job, got %s", job.Status)
	}
}

func TestWorker_PurgeUsesRetention(t *testing.T) {
	queue := &fakeQueue{}
	worker := newTestWorker(t, queue, NewMockEmailSender())

	worker.purgeSent(context.Background())

	if queue.purgedDays != 30 {
		t.Errorf("expected 30 day retention, got %d", queue.purgedDays)
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{err: nil, expected: false},
		{err: errors.New("401 Unauthorized"), expected: true},
		{err: errors.New("422 validation_error: invalid `to` field"), expected: true},
		{err: errors.New("429 rate limit exceeded"), expected: false},
		{err: errors.New("500 internal server error"), expected: false},
	}

	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.expected {
			t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.expected)
		}
	}
}
