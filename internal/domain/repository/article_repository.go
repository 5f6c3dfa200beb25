package repository

import (
	"context"

	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(ctx context.Context, db *gorm.DB, article *entity.Article) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Article, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Article, error)
	Update(ctx context.Context, db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	ClearAuthor(ctx context.Context, db *gorm.DB, authorID uuid.UUID) (int64, error)
}
