package repository

import (
	"context"

	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VaccinationRepository interface {
	Create(ctx context.Context, db *gorm.DB, vaccination *entity.Vaccination) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Vaccination, error)
	FindByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID uuid.UUID) (*entity.Vaccination, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Vaccination, error)
	Update(ctx context.Context, db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteByAppointmentID(ctx context.Context, db *gorm.DB, appointmentID uuid.UUID) (int64, error)
	// DeleteByCitizenID removes the citizen's own vaccinations and those linked to the citizen's appointments.
	DeleteByCitizenID(ctx context.Context, db *gorm.DB, citizenID uuid.UUID) (int64, error)
	ClearAdmin(ctx context.Context, db *gorm.DB, adminID uuid.UUID) (int64, error)
}
