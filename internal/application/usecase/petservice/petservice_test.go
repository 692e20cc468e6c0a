package petservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.PetService
	filter   adapter.ServiceFilter
	updates  int
}

func (f *fakeServiceRepo) List(_ context.Context, filter adapter.ServiceFilter) ([]*entity.PetService, error) {
	f.filter = filter
	return nil, nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PetService, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, domainerror.ErrServiceNotFound
}

func (f *fakeServiceRepo) Update(_ context.Context, s *entity.PetService) error {
	f.updates++
	f.services[s.ID] = s
	return nil
}

type fakeReviewRepo struct {
	reviews []*entity.ServiceReview
}

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.ServiceReview) error {
	f.reviews = append(f.reviews, r)
	return nil
}

func (f *fakeReviewRepo) ExistsByServiceAndUser(_ context.Context, serviceID, userID uuid.UUID) (bool, error) {
	for _, r := range f.reviews {
		if r.ServiceID == serviceID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) ListApproved(_ context.Context, serviceID uuid.UUID) ([]*entity.ReviewWithAuthor, error) {
	var out []*entity.ReviewWithAuthor
	for _, r := range f.reviews {
		if r.ServiceID == serviceID && r.Status == entity.ReviewStatusApproved {
			out = append(out, &entity.ReviewWithAuthor{ServiceReview: *r})
		}
	}
	return out, nil
}

type fakeModerator struct {
	available bool
	status    entity.ReviewStatus
	err       error
}

func (f fakeModerator) Moderate(context.Context, string) (entity.ReviewStatus, error) {
	return f.status, f.err
}

func (f fakeModerator) IsAvailable() bool { return f.available }

func serviceCode(t *testing.T, err error) domainerror.ServiceErrorCode {
	t.Helper()
	var serviceErr *domainerror.ServiceError
	if !errors.As(err, &serviceErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	return serviceErr.Code
}

func newService() *entity.PetService {
	return &entity.PetService{
		ID:        uuid.New(),
		Name:      "Happy Paws Grooming",
		Type:      entity.ServiceTypeGrooming,
		Verified:  true,
		RatingAvg: decimal.Zero,
	}
}

func TestListServicesUseCase_Execute(t *testing.T) {
	repo := &fakeServiceRepo{}
	uc := NewListServicesUseCase(repo)

	if _, err := uc.Execute(context.Background(), ListServicesInput{Type: "spa"}); serviceCode(t, err) != domainerror.ErrCodeInvalidServiceType {
		t.Error("expected invalid type")
	}

	out, err := uc.Execute(context.Background(), ListServicesInput{Type: "veterinary", Search: "  clinic "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Services == nil {
		t.Error("expected empty slice")
	}
	if repo.filter.Type == nil || *repo.filter.Type != entity.ServiceTypeVeterinary || repo.filter.Search != "clinic" {
		t.Errorf("unexpected filter %+v", repo.filter)
	}

	if _, err := uc.Execute(context.Background(), ListServicesInput{Type: "all"}); err != nil || repo.filter.Type != nil {
		t.Errorf("'all' should not filter by type")
	}
}

func TestCreateReviewUseCase_Execute(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		service := newService()
		repo := &fakeServiceRepo{services: map[uuid.UUID]*entity.PetService{service.ID: service}}
		uc := NewCreateReviewUseCase(repo, &fakeReviewRepo{}, nil)

		tests := []struct {
			name     string
			input    CreateReviewInput
			expected domainerror.ServiceErrorCode
		}{
			{"rating zero", CreateReviewInput{ServiceID: service.ID, Rating: 0}, domainerror.ErrCodeInvalidRating},
			{"rating six", CreateReviewInput{ServiceID: service.ID, Rating: 6}, domainerror.ErrCodeInvalidRating},
			{"review too long", CreateReviewInput{ServiceID: service.ID, Rating: 4, Review: strings.Repeat("r", 1001)}, domainerror.ErrCodeReviewTooLong},
			{"unknown service", CreateReviewInput{ServiceID: uuid.New(), Rating: 4}, domainerror.ErrCodeServiceNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), tt.input)
				if code := serviceCode(t, err); code != tt.expected {
					t.Errorf("expected %s, got %s", tt.expected, code)
				}
			})
		}
	})

	t.Run("approved reviews update the average", func(t *testing.T) {
		service := newService()
		repo := &fakeServiceRepo{services: map[uuid.UUID]*entity.PetService{service.ID: service}}
		uc := NewCreateReviewUseCase(repo, &fakeReviewRepo{}, fakeModerator{available: true, status: entity.ReviewStatusApproved})

		for _, rating := range []int{5, 4, 4} {
			if _, err := uc.Execute(context.Background(), CreateReviewInput{ServiceID: service.ID, UserID: uuid.New(), Rating: rating, Review: "Great"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if !service.RatingAvg.Equal(decimal.RequireFromString("4.33")) || service.RatingCount != 3 {
			t.Errorf("expected 4.33 over 3, got %s over %d", service.RatingAvg, service.RatingCount)
		}
		if repo.updates != 3 {
			t.Errorf("expected 3 updates, got %d", repo.updates)
		}
	})

	t.Run("no moderator leaves text reviews pending", func(t *testing.T) {
		service := newService()
		repo := &fakeServiceRepo{services: map[uuid.UUID]*entity.PetService{service.ID: service}}
		reviews := &fakeReviewRepo{}
		uc := NewCreateReviewUseCase(repo, reviews, fakeModerator{available: false})

		out, err := uc.Execute(context.Background(), CreateReviewInput{ServiceID: service.ID, UserID: uuid.New(), Rating: 5, Review: "Nice staff"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Review.Status != entity.ReviewStatusPending || service.RatingCount != 0 || repo.updates != 0 {
			t.Errorf("pending review must not touch rating: %+v", out.Review)
		}
	})

	t.Run("moderator failure leaves review pending", func(t *testing.T) {
		service := newService()
		repo := &fakeServiceRepo{services: map[uuid.UUID]*entity.PetService{service.ID: service}}
		uc := NewCreateReviewUseCase(repo, &fakeReviewRepo{}, fakeModerator{available: true, err: errors.New("quota")})

		out, err := uc.Execute(context.Background(), CreateReviewInput{ServiceID: service.ID, UserID: uuid.New(), Rating: 2, Review: "Meh"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Review.Status != entity.ReviewStatusPending {
			t.Errorf("expected pending, got %s", out.Review.Status)
		}
	})

	t.Run("rating without text is approved", func(t *testing.T) {
		service := newService()
		repo := &fakeServiceRepo{services: map[uuid.UUID]*entity.PetService{service.ID: service}}
		uc := NewCreateReviewUseCase(repo, &fakeReviewRepo{}, nil)

		out, err := uc.Execute(context.Background(), CreateReviewInput{ServiceID: service.ID, UserID: uuid.New(), Rating: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Review.Status != entity.ReviewStatusApproved || !service.RatingAvg.Equal(decimal.NewFromInt(3)) {
			t.Errorf("expected approved with avg 3, got %s / %s", out.Review.Status, service.RatingAvg)
		}
	})

	t.Run("one review per user", func(t *testing.T) {
		service := newService()
		user := uuid.New()
		repo := &fakeServiceRepo{services: map[uuid.UUID]*entity.PetService{service.ID: service}}
		uc := NewCreateReviewUseCase(repo, &fakeReviewRepo{}, nil)

		if _, err := uc.Execute(context.Background(), CreateReviewInput{ServiceID: service.ID, UserID: user, Rating: 5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.Execute(context.Background(), CreateReviewInput{ServiceID: service.ID, UserID: user, Rating: 1})
		if serviceCode(t, err) != domainerror.ErrCodeAlreadyReviewed {
			t.Error("expected already reviewed")
		}
	})
}

func TestListReviewsUseCase_Execute(t *testing.T) {
	service := newService()
	repo := &fakeServiceRepo{services: map[uuid.UUID]*entity.PetService{service.ID: service}}
	reviews := &fakeReviewRepo{reviews: []*entity.ServiceReview{
		{ID: uuid.New(), ServiceID: service.ID, Status: entity.ReviewStatusApproved},
		{ID: uuid.New(), ServiceID: service.ID, Status: entity.ReviewStatusPending},
		{ID: uuid.New(), ServiceID: service.ID, Status: entity.ReviewStatusRejected},
	}}

	out, err := NewListReviewsUseCase(repo, reviews).Execute(context.Background(), ListReviewsInput{ServiceID: service.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Reviews) != 1 {
		t.Errorf("expected only approved reviews, got %d", len(out.Reviews))
	}
}
