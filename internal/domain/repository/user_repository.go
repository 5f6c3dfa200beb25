package repository

import (
	"context"

	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	UpdateRole(ctx context.Context, db *gorm.DB, id uuid.UUID, role entity.Role) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
