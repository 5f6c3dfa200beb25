package handler

import (
	"net/http"

	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/usecase"
	"vaccination-management/pkg/response"
	"vaccination-management/pkg/validator"
)

type UserHandler struct {
	authUsecase usecase.AuthUsecase
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(authUsecase usecase.AuthUsecase, userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// Register handles citizen registration
// @Summary Register a new citizen
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to register user")
		return
	}

	response.Success(w, http.StatusOK, "User registered successfully", user)
}

func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get users")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Users retrieved successfully", users, &response.Meta{Total: len(users)})
}

// Me returns the authenticated user
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUsecase.GetCurrentUser(r.Context(), currentUser(r))
	if err != nil {
		response.FromError(w, err, "Failed to get current user")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid user ID")
	if !ok {
		return
	}

	user, err := h.userUsecase.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Failed to get user")
		return
	}

	respondFound(w, r, "User retrieved successfully", user)
}

// Delete removes a user together with the appointments and vaccinations it owns
// @Summary Delete user
// @Tags Users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid user ID")
	if !ok {
		return
	}

	if err := h.userUsecase.Delete(r.Context(), currentUser(r), id); err != nil {
		response.FromError(w, err, "Failed to delete user")
		return
	}

	response.NoContent(w)
}
