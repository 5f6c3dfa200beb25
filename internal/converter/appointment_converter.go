package converter

import (
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse embeds the vaccine when it was preloaded
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		CitizenID:       appointment.CitizenID,
		VaccineID:       appointment.VaccineID,
		PreferredDate:   appointment.PreferredDate,
		Status:          string(appointment.Status),
		AdminID:         appointment.AdminID,
		ReasonRejection: appointment.ReasonRejection,
		CreatedAt:       appointment.CreatedAt,
	}
	if appointment.Vaccine.ID != uuid.Nil {
		response.Vaccine = VaccineToResponse(&appointment.Vaccine)
	}

	return response
}

func AppointmentsToResponse(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
