package handler

import (
	"net/http"

	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/usecase"
	"vaccination-management/pkg/response"
	"vaccination-management/pkg/validator"
)

type VaccineHandler struct {
	vaccineUsecase usecase.VaccineUsecase
	validator      *validator.CustomValidator
}

func NewVaccineHandler(vaccineUsecase usecase.VaccineUsecase, validator *validator.CustomValidator) *VaccineHandler {
	return &VaccineHandler{
		vaccineUsecase: vaccineUsecase,
		validator:      validator,
	}
}

// Create handles vaccine creation
// @Summary Create a vaccine
// @Tags Vaccines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVaccineRequest true "Create Vaccine Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /vaccines [post]
func (h *VaccineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVaccineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vaccine, err := h.vaccineUsecase.Create(r.Context(), currentUser(r), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create vaccine")
		return
	}

	response.Success(w, http.StatusOK, "Vaccine created successfully", vaccine)
}

func (h *VaccineHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	vaccines, err := h.vaccineUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get vaccines")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Vaccines retrieved successfully", vaccines, &response.Meta{Total: len(vaccines)})
}

func (h *VaccineHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid vaccine ID")
	if !ok {
		return
	}

	vaccine, err := h.vaccineUsecase.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Failed to get vaccine")
		return
	}

	respondFound(w, r, "Vaccine retrieved successfully", vaccine)
}

// Update applies a partial update; send null to clear the price.
func (h *VaccineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid vaccine ID")
	if !ok {
		return
	}

	var req dto.UpdateVaccineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vaccine, err := h.vaccineUsecase.Update(r.Context(), currentUser(r), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update vaccine")
		return
	}

	response.Success(w, http.StatusOK, "Vaccine updated successfully", vaccine)
}

func (h *VaccineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid vaccine ID")
	if !ok {
		return
	}

	if err := h.vaccineUsecase.Delete(r.Context(), currentUser(r), id); err != nil {
		response.FromError(w, err, "Failed to delete vaccine")
		return
	}

	response.NoContent(w)
}
