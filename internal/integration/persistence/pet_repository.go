package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
	domainerror "github.com/pawz-connect/backend/internal/domain/error"
	"github.com/pawz-connect/backend/internal/integration/persistence/model"
)

// petRepository implements the adapter.PetRepository interface.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a new pet repository instance.
func NewPetRepository(db *gorm.DB) adapter.PetRepository {
	return &petRepository{
		db: db,
	}
}

// Create creates a new pet in the database.
func (r *petRepository) Create(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Create(model.PetModelFromEntity(pet)).Error
}

// FindByID retrieves a pet by its ID.
func (r *petRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var petModel model.PetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&petModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPetNotFound
		}
		return nil, result.Error
	}
	return petModel.ToEntity(), nil
}

// FindByOwner retrieves the pets of an owner, newest first.
func (r *petRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Pet, error) {
	var models []model.PetModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	pets := make([]*entity.Pet, len(models))
	for i := range models {
		pets[i] = models[i].ToEntity()
	}
	return pets, nil
}

// Update saves the pet.
func (r *petRepository) Update(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Save(model.PetModelFromEntity(pet)).Error
}

// Delete removes a pet and its health records.
func (r *petRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", id).Delete(&model.HealthRecordModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PetModel{}).Error
	})
}

// CountOwned counts how many of ids belong to ownerID.
func (r *petRepository) CountOwned(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PetModel{}).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// healthRecordRepository implements the adapter.HealthRecordRepository interface.
type healthRecordRepository struct {
	db *gorm.DB
}

// NewHealthRecordRepository creates a new health record repository instance.
func NewHealthRecordRepository(db *gorm.DB) adapter.HealthRecordRepository {
	return &healthRecordRepository{
		db: db,
	}
}

// Create creates a new health record in the database.
func (r *healthRecordRepository) Create(ctx context.Context, record *entity.HealthRecord) error {
	return r.db.WithContext(ctx).Create(model.HealthRecordModelFromEntity(record)).Error
}

// FindByID retrieves a health record by its ID.
func (r *healthRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HealthRecord, error) {
	var recordModel model.HealthRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHealthRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByPet retrieves the records of a pet, latest record date first.
func (r *healthRecordRepository) FindByPet(ctx context.Context, petID uuid.UUID) ([]*entity.HealthRecord, error) {
	var models []model.HealthRecordModel
	result := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("record_date DESC").
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.HealthRecord, len(models))
	for i := range models {
		records[i] = models[i].ToEntity()
	}
	return records, nil
}

// Delete removes a health record.
func (r *healthRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HealthRecordModel{}).Error
}
