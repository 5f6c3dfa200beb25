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

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, db *gorm.DB, id uuid.UUID, role entity.Role) error {
	return db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Update("role", role).Error
}

func (r *userRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	return result.RowsAffected, result.Error
}
