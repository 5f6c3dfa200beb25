package repository

import (
	"context"

	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VaccineRepository interface {
	Create(ctx context.Context, db *gorm.DB, vaccine *entity.Vaccine) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Vaccine, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.Vaccine, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Vaccine, error)
	Update(ctx context.Context, db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	// CountReferences returns how many appointments and vaccinations point at the vaccine.
	CountReferences(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
