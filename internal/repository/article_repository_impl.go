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

type articleRepository struct{}

func NewArticleRepository() domainRepo.ArticleRepository {
	return &articleRepository{}
}

func (r *articleRepository) Create(ctx context.Context, db *gorm.DB, article *entity.Article) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(article).Error
}

func (r *articleRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Article, error) {
	var article entity.Article
	err := db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Article, error) {
	var articles []entity.Article
	err := db.WithContext(ctx).Preload("Author").Order("created_at DESC").Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Update(ctx context.Context, db *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).Model(&entity.Article{}).Where("id = ?", id).Updates(fields).Error
}

func (r *articleRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Article{})
	return result.RowsAffected, result.Error
}

func (r *articleRepository) ClearAuthor(ctx context.Context, db *gorm.DB, authorID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Article{}).
		Where("created_by = ?", authorID).
		Update("created_by", nil)
	return result.RowsAffected, result.Error
}
