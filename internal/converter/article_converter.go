package converter

import (
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"
)

func ArticleToResponse(article *entity.Article) *dto.ArticleResponse {
	if article == nil {
		return nil
	}

	return &dto.ArticleResponse{
		ID:        article.ID,
		Title:     article.Title,
		Content:   article.Content,
		CreatedAt: article.CreatedAt,
		CreatedBy: article.CreatedBy,
		Author:    UserToResponse(article.Author),
	}
}

func ArticlesToResponse(articles []entity.Article) []dto.ArticleResponse {
	responses := make([]dto.ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = *ArticleToResponse(&articles[i])
	}
	return responses
}
