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

type vaccinationRepository struct{}

func NewVaccinationRepository() domainRepo.VaccinationRepository {
	return &vaccinationRepository{}
}

func (r *vaccinationRepository) Create(ctx context.Context, db *gorm.DB, vaccination *entity.Vaccination) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(vaccination).Error
}

func (r *vaccinationRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Vaccination, error) {
	var vaccination entity.Vaccination
	err := db.WithContext(ctx).Preload("Vaccine").Where("id = ?", id).First(&vaccination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vaccination, nil
}

func (r *vaccinationRepository) FindByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID uuid.UUID) (*entity.Vaccination, error) {
	var vaccination entity.Vaccination
	err := db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&vaccination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vaccination, nil
}

func (r *vaccinationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Vaccination, error) {
	var vaccinations []entity.Vaccination
	err := db.WithContext(ctx).Preload("Vaccine").Order("vaccination_date ASC").Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}

func (r *vaccinationRepository) Update(ctx context.Context, db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).Model(&entity.Vaccination{}).Where("id = ?", id).Updates(fields).Error
}

func (r *vaccinationRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Vaccination{})
	return result.RowsAffected, result.Error
}

func (r *vaccinationRepository) DeleteByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("appointment_id = ?", appointmentID).Delete(&entity.Vaccination{})
	return result.RowsAffected, result.Error
}

func (r *vaccinationRepository) DeleteByCitizenID(ctx context.Context, db *gorm.DB, citizenID uuid.UUID) (int64, error) {
	owned := db.WithContext(ctx).Model(&entity.Appointment{}).Select("id").Where("citizen_id = ?", citizenID)
	result := db.WithContext(ctx).
		Where("citizen_id = ? OR appointment_id IN (?)", citizenID, owned).
		Delete(&entity.Vaccination{})
	return result.RowsAffected, result.Error
}

func (r *vaccinationRepository) ClearAdmin(ctx context.Context, db *gorm.DB, adminID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Vaccination{}).
		Where("admin_id = ?", adminID).
		Update("admin_id", nil)
	return result.RowsAffected, result.Error
}
