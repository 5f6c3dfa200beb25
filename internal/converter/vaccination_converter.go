package converter

import (
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"

	"github.com/google/uuid"
)

func VaccinationToResponse(vaccination *entity.Vaccination) *dto.VaccinationResponse {
	if vaccination == nil {
		return nil
	}

	response := &dto.VaccinationResponse{
		ID:              vaccination.ID,
		AppointmentID:   vaccination.AppointmentID,
		CitizenID:       vaccination.CitizenID,
		VaccineID:       vaccination.VaccineID,
		DoseNumber:      vaccination.DoseNumber,
		BatchNumber:     vaccination.BatchNumber,
		VaccinationDate: vaccination.VaccinationDate,
		AdminID:         vaccination.AdminID,
	}
	if vaccination.Vaccine.ID != uuid.Nil {
		response.Vaccine = VaccineToResponse(&vaccination.Vaccine)
	}

	return response
}

func VaccinationsToResponse(vaccinations []entity.Vaccination) []dto.VaccinationResponse {
	responses := make([]dto.VaccinationResponse, len(vaccinations))
	for i := range vaccinations {
		responses[i] = *VaccinationToResponse(&vaccinations[i])
	}
	return responses
}
