package handler

import (
	"net/http"

	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/usecase"
	"vaccination-management/pkg/response"
	"vaccination-management/pkg/validator"
)

type VaccinationHandler struct {
	vaccinationUsecase usecase.VaccinationUsecase
	validator          *validator.CustomValidator
}

func NewVaccinationHandler(vaccinationUsecase usecase.VaccinationUsecase, validator *validator.CustomValidator) *VaccinationHandler {
	return &VaccinationHandler{
		vaccinationUsecase: vaccinationUsecase,
		validator:          validator,
	}
}

// Create records an administered dose
// @Summary Record a vaccination
// @Tags Vaccinations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVaccinationRequest true "Create Vaccination Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /vaccinations [post]
func (h *VaccinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVaccinationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vaccination, err := h.vaccinationUsecase.Create(r.Context(), currentUser(r), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create vaccination")
		return
	}

	response.Success(w, http.StatusOK, "Vaccination recorded successfully", vaccination)
}

func (h *VaccinationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	vaccinations, err := h.vaccinationUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get vaccinations")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Vaccinations retrieved successfully", vaccinations, &response.Meta{Total: len(vaccinations)})
}

func (h *VaccinationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid vaccination ID")
	if !ok {
		return
	}

	vaccination, err := h.vaccinationUsecase.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Failed to get vaccination")
		return
	}

	respondFound(w, r, "Vaccination retrieved successfully", vaccination)
}

func (h *VaccinationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid vaccination ID")
	if !ok {
		return
	}

	var req dto.UpdateVaccinationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vaccination, err := h.vaccinationUsecase.Update(r.Context(), currentUser(r), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update vaccination")
		return
	}

	response.Success(w, http.StatusOK, "Vaccination updated successfully", vaccination)
}

func (h *VaccinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid vaccination ID")
	if !ok {
		return
	}

	if err := h.vaccinationUsecase.Delete(r.Context(), currentUser(r), id); err != nil {
		response.FromError(w, err, "Failed to delete vaccination")
		return
	}

	response.NoContent(w)
}
