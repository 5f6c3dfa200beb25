package handler

import (
	"net/http"
	"strings"

	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/usecase"
	"vaccination-management/pkg/response"
	"vaccination-management/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles user login
// @Summary Login user
// @Description Login with a JSON body {email, password} or the OAuth2 password form (username, password)
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest

	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid form body", nil)
			return
		}
		req.Email = r.PostForm.Get("username")
		if req.Email == "" {
			req.Email = r.PostForm.Get("email")
		}
		req.Password = r.PostForm.Get("password")
	} else if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", token)
}

func isForm(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	return strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data")
}
