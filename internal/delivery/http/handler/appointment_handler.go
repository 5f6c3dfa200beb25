package handler

import (
	"net/http"

	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/usecase"
	"vaccination-management/pkg/response"
	"vaccination-management/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create handles appointment booking
// @Summary Book an appointment
// @Description Citizens book for themselves; citizen_id may be omitted
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), currentUser(r), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, &response.Meta{Total: len(appointments)})
}

func (h *AppointmentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetMine(r.Context(), currentUser(r))
	if err != nil {
		response.FromError(w, err, "Failed to get appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, &response.Meta{Total: len(appointments)})
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid appointment ID")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Failed to get appointment")
		return
	}

	respondFound(w, r, "Appointment retrieved successfully", appointment)
}

// UpdateStatus handles the admin decision on an appointment
// @Summary Approve or reject an appointment
// @Description Status and reason come from the JSON body or from the status and reason_rejection query parameters
// @Tags Appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param status query string false "pending, approved or rejected"
// @Param reason_rejection query string false "Reason for rejection"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid appointment ID")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	query := r.URL.Query()
	if req.Status == "" {
		req.Status = query.Get("status")
	}
	if req.ReasonRejection == nil && query.Has("reason_rejection") {
		reason := query.Get("reason_rejection")
		req.ReasonRejection = &reason
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), currentUser(r), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid appointment ID")
	if !ok {
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), currentUser(r), id); err != nil {
		response.FromError(w, err, "Failed to delete appointment")
		return
	}

	response.NoContent(w)
}
