package repository

import (
	"context"

	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindByCitizenID(ctx context.Context, db *gorm.DB, citizenID uuid.UUID) ([]entity.Appointment, error)
	UpdateDecision(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteByCitizenID(ctx context.Context, db *gorm.DB, citizenID uuid.UUID) (int64, error)
	ClearAdmin(ctx context.Context, db *gorm.DB, adminID uuid.UUID) (int64, error)
}
