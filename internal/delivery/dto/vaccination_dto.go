package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateVaccinationRequest records a dose. CitizenID and VaccineID default to the appointment's.
type CreateVaccinationRequest struct {
	AppointmentID uuid.UUID  `json:"appointment_id" validate:"required"`
	CitizenID     *uuid.UUID `json:"citizen_id"`
	VaccineID     *uuid.UUID `json:"vaccine_id"`
	DoseNumber    int        `json:"dose_number" validate:"required,gte=1"`
	BatchNumber   *string    `json:"batch_number" validate:"omitempty,max=100"`
}

// UpdateVaccinationRequest patches a vaccination. A null appointment_id unlinks it.
type UpdateVaccinationRequest struct {
	AppointmentID Field[uuid.UUID] `json:"appointment_id"`
	CitizenID     Field[uuid.UUID] `json:"citizen_id"`
	VaccineID     Field[uuid.UUID] `json:"vaccine_id"`
	DoseNumber    Field[int]       `json:"dose_number"`
	BatchNumber   Field[string]    `json:"batch_number"`
}

// Response DTOs

type VaccinationResponse struct {
	ID              uuid.UUID        `json:"id"`
	AppointmentID   *uuid.UUID       `json:"appointment_id"`
	CitizenID       uuid.UUID        `json:"citizen_id"`
	VaccineID       uuid.UUID        `json:"vaccine_id"`
	DoseNumber      int              `json:"dose_number"`
	BatchNumber     *string          `json:"batch_number"`
	VaccinationDate time.Time        `json:"vaccination_date"`
	AdminID         *uuid.UUID       `json:"admin_id"`
	Vaccine         *VaccineResponse `json:"vaccine,omitempty"`
}
