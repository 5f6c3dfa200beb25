package converter

import (
	"vaccination-management/internal/delivery/dto"
	"vaccination-management/internal/domain/entity"
)

func VaccineToResponse(vaccine *entity.Vaccine) *dto.VaccineResponse {
	if vaccine == nil {
		return nil
	}

	return &dto.VaccineResponse{
		ID:           vaccine.ID,
		Name:         vaccine.Name,
		Price:        vaccine.Price,
		Availability: vaccine.IsAvailable(),
	}
}

func VaccinesToResponse(vaccines []entity.Vaccine) []dto.VaccineResponse {
	responses := make([]dto.VaccineResponse, len(vaccines))
	for i := range vaccines {
		responses[i] = *VaccineToResponse(&vaccines[i])
	}
	return responses
}
