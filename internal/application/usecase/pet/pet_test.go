package pet

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

type fakePetRepo struct {
	pets    map[uuid.UUID]*entity.Pet
	deleted []uuid.UUID
}

func newFakePetRepo(pets ...*entity.Pet) *fakePetRepo {
	f := &fakePetRepo{pets: map[uuid.UUID]*entity.Pet{}}
	for _, p := range pets {
		f.pets[p.ID] = p
	}
	return f
}

func (f *fakePetRepo) Create(_ context.Context, pet *entity.Pet) error {
	f.pets[pet.ID] = pet
	return nil
}

func (f *fakePetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Pet, error) {
	if p, ok := f.pets[id]; ok {
		return p, nil
	}
	return nil, domainerror.ErrPetNotFound
}

func (f *fakePetRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	var out []*entity.Pet
	for _, p := range f.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePetRepo) Update(_ context.Context, pet *entity.Pet) error {
	f.pets[pet.ID] = pet
	return nil
}

func (f *fakePetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.pets, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePetRepo) CountOwned(_ context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		if p, ok := f.pets[id]; ok && p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func petCode(t *testing.T, err error) domainerror.PetErrorCode {
	t.Helper()
	var petErr *domainerror.PetError
	if !errors.As(err, &petErr) {
		t.Fatalf("expected PetError, got %v", err)
	}
	return petErr.Code
}

func ptr(s string) *string { return &s }

func TestCreatePetUseCase_Execute(t *testing.T) {
	owner := uuid.New()
	tomorrow := time.Now().UTC().AddDate(0, 0, 2).Format(dateLayout)

	tests := []struct {
		name     string
		input    CreatePetInput
		expected domainerror.PetErrorCode
	}{
		{"blank name", CreatePetInput{Name: "  ", Species: "dog"}, domainerror.ErrCodeInvalidPetName},
		{"name too long", CreatePetInput{Name: strings.Repeat("n", 51), Species: "dog"}, domainerror.ErrCodeInvalidPetName},
		{"unknown species", CreatePetInput{Name: "Rex", Species: "dragon"}, domainerror.ErrCodeInvalidSpecies},
		{"malformed birth date", CreatePetInput{Name: "Rex", Species: "dog", BirthDate: "12/01/2020"}, domainerror.ErrCodeInvalidBirthDate},
		{"future birth date", CreatePetInput{Name: "Rex", Species: "dog", BirthDate: tomorrow}, domainerror.ErrCodeInvalidBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePetRepo()
			tt.input.OwnerID = owner

			_, err := NewCreatePetUseCase(repo).Execute(context.Background(), tt.input)
			if code := petCode(t, err); code != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, code)
			}
			if len(repo.pets) != 0 {
				t.Error("invalid pet was stored")
			}
		})
	}

	t.Run("stores a valid pet", func(t *testing.T) {
		repo := newFakePetRepo()
		out, err := NewCreatePetUseCase(repo).Execute(context.Background(), CreatePetInput{
			OwnerID:   owner,
			Name:      "  Luna ",
			Species:   "Cat",
			Breed:     "Siamese",
			BirthDate: "2021-04-03",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Pet.Name != "Luna" || out.Pet.Species != entity.SpeciesCat || out.Pet.OwnerID != owner {
			t.Errorf("unexpected pet %+v", out.Pet)
		}
		if out.Pet.BirthDate == nil || out.Pet.BirthDate.Format(dateLayout) != "2021-04-03" {
			t.Errorf("unexpected birth date %v", out.Pet.BirthDate)
		}
		if _, ok := repo.pets[out.Pet.ID]; !ok {
			t.Error("pet not stored")
		}
	})
}

func TestUpdatePetUseCase_Execute(t *testing.T) {
	owner := uuid.New()

	t.Run("other owners see not found", func(t *testing.T) {
		pet := entity.NewPet(owner, "Rex", entity.SpeciesDog)
		uc := NewUpdatePetUseCase(newFakePetRepo(pet))

		_, err := uc.Execute(context.Background(), UpdatePetInput{PetID: pet.ID, OwnerID: uuid.New(), Name: ptr("Max")})
		if petCode(t, err) != domainerror.ErrCodePetNotFound {
			t.Error("expected not found")
		}
		if pet.Name != "Rex" {
			t.Error("pet was modified")
		}
	})

	t.Run("empty update", func(t *testing.T) {
		pet := entity.NewPet(owner, "Rex", entity.SpeciesDog)
		_, err := NewUpdatePetUseCase(newFakePetRepo(pet)).Execute(context.Background(), UpdatePetInput{PetID: pet.ID, OwnerID: owner})
		if petCode(t, err) != domainerror.ErrCodeMissingPetFields {
			t.Error("expected missing fields")
		}
	})

	t.Run("clears birth date with empty string", func(t *testing.T) {
		pet := entity.NewPet(owner, "Rex", entity.SpeciesDog)
		born := time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC)
		pet.BirthDate = &born

		out, err := NewUpdatePetUseCase(newFakePetRepo(pet)).Execute(context.Background(), UpdatePetInput{
			PetID:     pet.ID,
			OwnerID:   owner,
			BirthDate: ptr(""),
			Breed:     ptr("Beagle"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Pet.BirthDate != nil || out.Pet.Breed != "Beagle" {
			t.Errorf("unexpected pet %+v", out.Pet)
		}
	})
}

func TestDeletePetUseCase_Execute(t *testing.T) {
	owner := uuid.New()
	pet := entity.NewPet(owner, "Rex", entity.SpeciesDog)
	repo := newFakePetRepo(pet)
	uc := NewDeletePetUseCase(repo)

	if err := uc.Execute(context.Background(), DeletePetInput{PetID: pet.ID, OwnerID: uuid.New()}); petCode(t, err) != domainerror.ErrCodePetNotFound {
		t.Error("expected not found for another owner")
	}
	if err := uc.Execute(context.Background(), DeletePetInput{PetID: pet.ID, OwnerID: owner}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Error("pet not deleted")
	}
}

func TestListPetsUseCase_Execute(t *testing.T) {
	owner := uuid.New()
	repo := newFakePetRepo(
		entity.NewPet(owner, "Rex", entity.SpeciesDog),
		entity.NewPet(uuid.New(), "Other", entity.SpeciesCat),
	)

	out, err := NewListPetsUseCase(repo).Execute(context.Background(), ListPetsInput{OwnerID: owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Pets) != 1 || out.Pets[0].Name != "Rex" {
		t.Errorf("unexpected pets %+v", out.Pets)
	}

	empty, _ := NewListPetsUseCase(repo).Execute(context.Background(), ListPetsInput{OwnerID: uuid.New()})
	if empty.Pets == nil {
		t.Error("expected empty slice, not nil")
	}
}
