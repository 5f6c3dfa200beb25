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

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).Preload("Vaccine").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).Preload("Vaccine").Order("created_at ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByCitizenID(ctx context.Context, db *gorm.DB, citizenID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).Preload("Vaccine").
		Where("citizen_id = ?", citizenID).
		Order("created_at DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateDecision writes the decision columns only, including null reason/admin.
func (r *appointmentRepository) UpdateDecision(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", appointment.ID).
		Updates(map[string]interface{}{
			"status":           appointment.Status,
			"admin_id":         appointment.AdminID,
			"reason_rejection": appointment.ReasonRejection,
		}).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) DeleteByCitizenID(ctx context.Context, db *gorm.DB, citizenID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("citizen_id = ?", citizenID).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) ClearAdmin(ctx context.Context, db *gorm.DB, adminID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("admin_id = ?", adminID).
		Update("admin_id", nil)
	return result.RowsAffected, result.Error
}
