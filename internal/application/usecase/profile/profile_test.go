package profile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

type fakeProfileRepo struct {
	byID    map[uuid.UUID]*entity.Profile
	updates int
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	f := &fakeProfileRepo{byID: map[uuid.UUID]*entity.Profile{}}
	for _, p := range profiles {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domainerror.ErrProfileNotFound
}

func (f *fakeProfileRepo) FindByUsername(_ context.Context, username string) (*entity.Profile, error) {
	for _, p := range f.byID {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, domainerror.ErrProfileNotFound
}

func (f *fakeProfileRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.FindByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *entity.Profile) error {
	f.updates++
	f.byID[profile.ID] = profile
	return nil
}

func profileCode(t *testing.T, err error) domainerror.ProfileErrorCode {
	t.Helper()
	var profileErr *domainerror.ProfileError
	if !errors.As(err, &profileErr) {
		t.Fatalf("expected ProfileError, got %v", err)
	}
	return profileErr.Code
}

func ptr(s string) *string { return &s }

func TestGetProfileUseCase_Execute(t *testing.T) {
	owner := entity.NewProfile(uuid.New(), "luna_mom", "Luna's Mom")
	owner.Bio = "Two cats"
	owner.Location = "Lisbon"
	owner.Privacy.ProfileVisibility = entity.VisibilityPrivate

	public := entity.NewProfile(uuid.New(), "rex", "Rex")
	public.Bio = "Good boy"

	uc := NewGetProfileUseCase(newFakeProfileRepo(owner, public))
	stranger := uuid.New()

	t.Run("own profile by empty username", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetProfileInput{ViewerID: owner.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Limited || out.Profile.Bio != "Two cats" {
			t.Errorf("expected full own profile, got %+v", out)
		}
	})

	t.Run("private profile is limited for strangers", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetProfileInput{ViewerID: stranger, Username: "LUNA_MOM"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Limited {
			t.Fatal("expected limited view")
		}
		if out.Profile.Bio != "" || out.Profile.Location != "" {
			t.Errorf("private fields leaked: %+v", out.Profile)
		}
		if out.Profile.DisplayName != "Luna's Mom" {
			t.Errorf("display name should remain visible")
		}
	})

	t.Run("public profile is full", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetProfileInput{ViewerID: stranger, Username: "rex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(public, out.Profile); diff != "" {
			t.Errorf("profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetProfileInput{ViewerID: stranger, Username: "ghost"})
		if profileCode(t, err) != domainerror.ErrCodeProfileNotFound {
			t.Error("expected not found")
		}
	})
}

func TestUpdateProfileUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		input    UpdateProfileInput
		expected domainerror.ProfileErrorCode
	}{
		{"nothing to update", UpdateProfileInput{}, domainerror.ErrCodeMissingProfileFields},
		{"blank display name", UpdateProfileInput{DisplayName: ptr("   ")}, domainerror.ErrCodeInvalidDisplayName},
		{"display name too long", UpdateProfileInput{DisplayName: ptr(strings.Repeat("a", 101))}, domainerror.ErrCodeInvalidDisplayName},
		{"bio too long", UpdateProfileInput{Bio: ptr(strings.Repeat("b", 501))}, domainerror.ErrCodeInvalidBio},
		{"location too long", UpdateProfileInput{Location: ptr(strings.Repeat("c", 101))}, domainerror.ErrCodeInvalidLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := entity.NewProfile(uuid.New(), "rex", "Rex")
			repo := newFakeProfileRepo(p)
			tt.input.UserID = p.ID

			_, err := NewUpdateProfileUseCase(repo).Execute(context.Background(), tt.input)
			if code := profileCode(t, err); code != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, code)
			}
			if repo.updates != 0 {
				t.Error("invalid update was persisted")
			}
		})
	}

	t.Run("applies only provided fields", func(t *testing.T) {
		p := entity.NewProfile(uuid.New(), "rex", "Rex")
		p.Location = "Porto"
		repo := newFakeProfileRepo(p)

		out, err := NewUpdateProfileUseCase(repo).Execute(context.Background(), UpdateProfileInput{
			UserID: p.ID,
			Bio:    ptr("  Loves walks  "),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Profile.Bio != "Loves walks" || out.Profile.Location != "Porto" || out.Profile.DisplayName != "Rex" {
			t.Errorf("unexpected profile %+v", out.Profile)
		}
		if repo.updates != 1 {
			t.Errorf("expected one update, got %d", repo.updates)
		}
	})
}

func TestUpdatePrivacyUseCase_Execute(t *testing.T) {
	p := entity.NewProfile(uuid.New(), "rex", "Rex")
	uc := NewUpdatePrivacyUseCase(newFakeProfileRepo(p))

	_, err := uc.Execute(context.Background(), UpdatePrivacyInput{
		UserID:   p.ID,
		Settings: entity.PrivacySettings{ProfileVisibility: "everyone"},
	})
	if profileCode(t, err) != domainerror.ErrCodeInvalidProfileVisibility {
		t.Error("expected invalid visibility")
	}
	if !errors.Is(err, domainerror.ErrInvalidPrivacySettings) {
		t.Error("expected ErrInvalidPrivacySettings in chain")
	}

	want := entity.PrivacySettings{ProfileVisibility: entity.VisibilityFriends, LocationSharing: true, ShowPets: false}
	out, err := uc.Execute(context.Background(), UpdatePrivacyInput{UserID: p.ID, Settings: want})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Settings != want {
		t.Errorf("expected %+v, got %+v", want, out.Settings)
	}
}
