package handler

import (
	"net/http"

	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/usecase"
	"vaccination-management/pkg/response"
	"vaccination-management/pkg/validator"
)

type ArticleHandler struct {
	articleUsecase usecase.ArticleUsecase
	validator      *validator.CustomValidator
}

func NewArticleHandler(articleUsecase usecase.ArticleUsecase, validator *validator.CustomValidator) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
		validator:      validator,
	}
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateArticleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	article, err := h.articleUsecase.Create(r.Context(), currentUser(r), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create article")
		return
	}

	response.Success(w, http.StatusOK, "Article created successfully", article)
}

func (h *ArticleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get articles")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Articles retrieved successfully", articles, &response.Meta{Total: len(articles)})
}

func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid article ID")
	if !ok {
		return
	}

	article, err := h.articleUsecase.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Failed to get article")
		return
	}

	respondFound(w, r, "Article retrieved successfully", article)
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid article ID")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	article, err := h.articleUsecase.Update(r.Context(), currentUser(r), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update article")
		return
	}

	response.Success(w, http.StatusOK, "Article updated successfully", article)
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid article ID")
	if !ok {
		return
	}

	if err := h.articleUsecase.Delete(r.Context(), currentUser(r), id); err != nil {
		response.FromError(w, err, "Failed to delete article")
		return
	}

	response.NoContent(w)
}
