package usecase

import (
	"context"
	"strings"

	"vaccination-management/internal/converter"
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"
	"vaccination-management/internal/domain/repository"
	"vaccination-management/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ArticleUsecase interface {
	Create(ctx context.Context, actor *entity.User, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error)
	GetAll(ctx context.Context) ([]dto.ArticleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, req *dto.UpdateArticleRequest) (*dto.ArticleResponse, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
}

type articleUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	articleRepo repository.ArticleRepository
}

func NewArticleUsecase(db *gorm.DB, log *logrus.Logger, articleRepo repository.ArticleRepository) ArticleUsecase {
	return &articleUsecase{
		db:          db,
		log:         log,
		articleRepo: articleRepo,
	}
}

// Create publishes an article authored by the calling admin.
func (u *articleUsecase) Create(ctx context.Context, actor *entity.User, req *dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if err := service.RequireAdmin(actor); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrArticleTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrArticleContentMissing
	}

	authorID := actor.ID
	article := &entity.Article{
		Title:     title,
		Content:   req.Content,
		CreatedBy: &authorID,
	}

	if err := u.articleRepo.Create(ctx, u.db, article); err != nil {
		u.log.Warnf("Failed to create article: %+v", err)
		return nil, err
	}
	article.Author = actor

	return converter.ArticleToResponse(article), nil
}

func (u *articleUsecase) GetAll(ctx context.Context) ([]dto.ArticleResponse, error) {
	articles, err := u.articleRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find articles: %+v", err)
		return nil, err
	}
	return converter.ArticlesToResponse(articles), nil
}

func (u *articleUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error) {
	article, err := u.articleRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find article by ID: %+v", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return converter.ArticleToResponse(article), nil
}

func (u *articleUsecase) Update(ctx context.Context, actor *entity.User, id uuid.UUID, req *dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	if err := service.RequireAdmin(actor); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	article, err := u.articleRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find article by ID: %+v", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	fields := map[string]interface{}{}
	if req.Title.Set {
		title := strings.TrimSpace(req.Title.Value)
		if req.Title.Null || title == "" {
			return nil, ErrArticleTitleRequired
		}
		fields["title"] = title
	}
	if req.Content.Set {
		if req.Content.Null || strings.TrimSpace(req.Content.Value) == "" {
			return nil, ErrArticleContentMissing
		}
		fields["content"] = req.Content.Value
	}

	if err := u.articleRepo.Update(ctx, tx, id, fields); err != nil {
		u.log.Warnf("Failed to update article: %+v", err)
		return nil, err
	}

	updated, err := u.articleRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload article: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ArticleToResponse(updated), nil
}

func (u *articleUsecase) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if err := service.RequireAdmin(actor); err != nil {
		return err
	}

	affected, err := u.articleRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete article: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrArticleNotFound
	}

	return nil
}
