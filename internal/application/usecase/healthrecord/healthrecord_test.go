package healthrecord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/usecase/audit"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
)

type fakePetRepo struct {
	pets map[uuid.UUID]*entity.Pet
}

func (f *fakePetRepo) Create(context.Context, *entity.Pet) error { return nil }

func (f *fakePetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Pet, error) {
	if p, ok := f.pets[id]; ok {
		return p, nil
	}
	return nil, domainerror.ErrPetNotFound
}

func (f *fakePetRepo) FindByOwner(context.Context, uuid.UUID) ([]*entity.Pet, error) { return nil, nil }
func (f *fakePetRepo) Update(context.Context, *entity.Pet) error                     { return nil }
func (f *fakePetRepo) Delete(context.Context, uuid.UUID) error                       { return nil }

func (f *fakePetRepo) CountOwned(context.Context, uuid.UUID, []uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeRecordRepo struct {
	records map[uuid.UUID]*entity.HealthRecord
}

func (f *fakeRecordRepo) Create(_ context.Context, r *entity.HealthRecord) error {
	f.records[r.ID] = r
	return nil
}

func (f *fakeRecordRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.HealthRecord, error) {
	if r, ok := f.records[id]; ok {
		return r, nil
	}
	return nil, domainerror.ErrHealthRecordNotFound
}

func (f *fakeRecordRepo) FindByPet(_ context.Context, petID uuid.UUID) ([]*entity.HealthRecord, error) {
	var out []*entity.HealthRecord
	for _, r := range f.records {
		if r.PetID == petID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.records, id)
	return nil
}

type fakeAuditRepo struct {
	logs []*entity.AuditLog
}

func (f *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	f.logs = append(f.logs, log)
	return nil
}

type fixture struct {
	owner   uuid.UUID
	pet     *entity.Pet
	pets    *fakePetRepo
	records *fakeRecordRepo
	audits  *fakeAuditRepo
}

func newFixture() *fixture {
	owner := uuid.New()
	pet := entity.NewPet(owner, "Rex", entity.SpeciesDog)
	return &fixture{
		owner:   owner,
		pet:     pet,
		pets:    &fakePetRepo{pets: map[uuid.UUID]*entity.Pet{pet.ID: pet}},
		records: &fakeRecordRepo{records: map[uuid.UUID]*entity.HealthRecord{}},
		audits:  &fakeAuditRepo{},
	}
}

func recordCode(t *testing.T, err error) domainerror.HealthRecordErrorCode {
	t.Helper()
	var recordErr *domainerror.HealthRecordError
	if !errors.As(err, &recordErr) {
		t.Fatalf("expected HealthRecordError, got %v", err)
	}
	return recordErr.Code
}

func TestCreateHealthRecordUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateHealthRecordInput)
		expected domainerror.HealthRecordErrorCode
	}{
		{"unknown type", func(in *CreateHealthRecordInput) { in.RecordType = "haircut" }, domainerror.ErrCodeInvalidRecordType},
		{"blank title", func(in *CreateHealthRecordInput) { in.Title = "  " }, domainerror.ErrCodeInvalidRecordTitle},
		{"bad date", func(in *CreateHealthRecordInput) { in.RecordDate = "yesterday" }, domainerror.ErrCodeInvalidRecordDate},
		{"someone else's pet", func(in *CreateHealthRecordInput) { in.OwnerID = uuid.New() }, domainerror.ErrCodeRecordPetNotFound},
		{"missing pet", func(in *CreateHealthRecordInput) { in.PetID = uuid.New() }, domainerror.ErrCodeRecordPetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			input := CreateHealthRecordInput{
				PetID:      f.pet.ID,
				OwnerID:    f.owner,
				RecordType: "vaccination",
				Title:      "Rabies",
				RecordDate: "2024-03-01",
			}
			tt.mutate(&input)

			uc := NewCreateHealthRecordUseCase(f.pets, f.records, audit.NewRecorder(f.audits))
			_, err := uc.Execute(context.Background(), input)
			if code := recordCode(t, err); code != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, code)
			}
			if len(f.records.records) != 0 || len(f.audits.logs) != 0 {
				t.Error("nothing should be written on failure")
			}
		})
	}

	t.Run("stores record and audits", func(t *testing.T) {
		f := newFixture()
		uc := NewCreateHealthRecordUseCase(f.pets, f.records, audit.NewRecorder(f.audits))

		out, err := uc.Execute(context.Background(), CreateHealthRecordInput{
			PetID:        f.pet.ID,
			OwnerID:      f.owner,
			RecordType:   "Checkup",
			Title:        " Annual ",
			RecordDate:   "2024-03-01",
			Veterinarian: "Dr. Silva",
			IPAddress:    "198.51.100.4",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Record.RecordType != entity.RecordTypeCheckup || out.Record.Title != "Annual" {
			t.Errorf("unexpected record %+v", out.Record)
		}
		if !out.Record.RecordDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected date %v", out.Record.RecordDate)
		}
		if len(f.audits.logs) != 1 || f.audits.logs[0].Action != entity.AuditHealthRecordCreated ||
			f.audits.logs[0].ResourceID != out.Record.ID.String() || f.audits.logs[0].IPAddress != "198.51.100.4" {
			t.Errorf("unexpected audit %+v", f.audits.logs)
		}
	})
}

func TestListHealthRecordsUseCase_Execute(t *testing.T) {
	f := newFixture()
	uc := NewListHealthRecordsUseCase(f.pets, f.records)

	_, err := uc.Execute(context.Background(), ListHealthRecordsInput{PetID: f.pet.ID, OwnerID: uuid.New()})
	if recordCode(t, err) != domainerror.ErrCodeRecordPetNotFound {
		t.Error("strangers must not read records")
	}

	out, err := uc.Execute(context.Background(), ListHealthRecordsInput{PetID: f.pet.ID, OwnerID: f.owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Records == nil || len(out.Records) != 0 {
		t.Errorf("expected empty list, got %v", out.Records)
	}
}

func TestDeleteHealthRecordUseCase_Execute(t *testing.T) {
	f := newFixture()
	record := entity.NewHealthRecord(f.pet.ID, entity.RecordTypeAllergy, "Pollen", time.Now().UTC())
	f.records.records[record.ID] = record
	uc := NewDeleteHealthRecordUseCase(f.pets, f.records, audit.NewRecorder(f.audits))

	err := uc.Execute(context.Background(), DeleteHealthRecordInput{RecordID: record.ID, OwnerID: uuid.New()})
	if recordCode(t, err) != domainerror.ErrCodeHealthRecordNotFound {
		t.Error("expected not found for stranger")
	}

	if err := uc.Execute(context.Background(), DeleteHealthRecordInput{RecordID: record.ID, OwnerID: f.owner}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := f.records.records[record.ID]; ok {
		t.Error("record not deleted")
	}
	if len(f.audits.logs) != 1 || f.audits.logs[0].Action != entity.AuditHealthRecordDeleted {
		t.Errorf("expected delete audit, got %+v", f.audits.logs)
	}

	err = uc.Execute(context.Background(), DeleteHealthRecordInput{RecordID: record.ID, OwnerID: f.owner})
	if recordCode(t, err) != domainerror.ErrCodeHealthRecordNotFound {
		t.Error("expected not found after deletion")
	}
}
