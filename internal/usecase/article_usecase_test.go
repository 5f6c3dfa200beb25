package usecase

import (
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/apperror"

	"github.com/google/uuid"
)

func (s *UsecaseSuite) TestArticleLifecycle() {
	article, err := s.articles.Create(s.ctx, s.admin, &dto.CreateArticleRequest{Title: "Yellow fever", Content: "Required for travel."})
	s.Require().NoError(err)
	s.Require().NotNil(article.CreatedBy)
	s.Equal(s.admin.ID, *article.CreatedBy)
	s.Require().NotNil(article.Author)
	s.Equal(s.admin.Email, article.Author.Email)

	updated, err := s.articles.Update(s.ctx, s.admin, article.ID, &dto.UpdateArticleRequest{Title: dto.NewField("Yellow fever vaccine")})
	s.Require().NoError(err)
	s.Equal("Yellow fever vaccine", updated.Title)
	s.Equal("Required for travel.", updated.Content)

	all, err := s.articles.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)

	s.Require().NoError(s.articles.Delete(s.ctx, s.admin, article.ID))
	_, err = s.articles.GetByID(s.ctx, article.ID)
	s.ErrorIs(err, ErrArticleNotFound)
}

func (s *UsecaseSuite) TestArticleValidationAndGates() {
	_, err := s.articles.Create(s.ctx, s.citizen, &dto.CreateArticleRequest{Title: "T", Content: "C"})
	s.True(apperror.HasKind(err, apperror.KindForbidden))

	_, err = s.articles.Create(s.ctx, s.admin, &dto.CreateArticleRequest{Title: " ", Content: "C"})
	s.ErrorIs(err, ErrArticleTitleRequired)

	article, err := s.articles.Create(s.ctx, s.admin, &dto.CreateArticleRequest{Title: "T", Content: "C"})
	s.Require().NoError(err)

	_, err = s.articles.Update(s.ctx, s.admin, article.ID, &dto.UpdateArticleRequest{Content: dto.NullField[string]()})
	s.ErrorIs(err, ErrArticleContentMissing)

	_, err = s.articles.Update(s.ctx, s.admin, uuid.New(), &dto.UpdateArticleRequest{})
	s.ErrorIs(err, ErrArticleNotFound)

	s.ErrorIs(s.articles.Delete(s.ctx, s.admin, uuid.New()), ErrArticleNotFound)
}
