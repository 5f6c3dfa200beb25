package repository

import (
	"context"
	"errors"

	"vaccination-management/internal/domain/entity"
	domainRepo "vaccination-management/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vaccineRepository struct{}

func NewVaccineRepository() domainRepo.VaccineRepository {
	return &vaccineRepository{}
}

func (r *vaccineRepository) Create(ctx context.Context, db *gorm.DB, vaccine *entity.Vaccine) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(vaccine).Error
}

func (r *vaccineRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Vaccine, error) {
	var vaccine entity.Vaccine
	err := db.WithContext(ctx).Where("id = ?", id).First(&vaccine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vaccine, nil
}

func (r *vaccineRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Vaccine, error) {
	var vaccine entity.Vaccine
	err := db.WithContext(ctx).Where("name = ?", name).First(&vaccine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vaccine, nil
}

func (r *vaccineRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Vaccine, error) {
	var vaccines []entity.Vaccine
	err := db.WithContext(ctx).Order("name ASC").Find(&vaccines).Error
	if err != nil {
		return nil, err
	}
	return vaccines, nil
}

func (r *vaccineRepository) Update(ctx context.Context, db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).Model(&entity.Vaccine{}).Where("id = ?", id).Updates(fields).Error
}

func (r *vaccineRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Vaccine{})
	return result.RowsAffected, result.Error
}

func (r *vaccineRepository) CountReferences(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	var appointments, vaccinations int64
	if err := db.WithContext(ctx).Model(&entity.Appointment{}).Where("vaccine_id = ?", id).Count(&appointments).Error; err != nil {
		return 0, err
	}
	if err := db.WithContext(ctx).Model(&entity.Vaccination{}).Where("vaccine_id = ?", id).Count(&vaccinations).Error; err != nil {
		return 0, err
	}
	return appointments + vaccinations, nil
}
