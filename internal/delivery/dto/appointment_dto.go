package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest books for the caller. CitizenID may be omitted; when
// present it must be the caller's own id.
type CreateAppointmentRequest struct {
	CitizenID     *uuid.UUID `json:"citizen_id"`
	VaccineID     uuid.UUID  `json:"vaccine_id" validate:"required"`
	PreferredDate time.Time  `json:"preferred_date" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status          string  `json:"status" validate:"required"`
	ReasonRejection *string `json:"reason_rejection"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	CitizenID       uuid.UUID        `json:"citizen_id"`
	VaccineID       uuid.UUID        `json:"vaccine_id"`
	PreferredDate   time.Time        `json:"preferred_date"`
	Status          string           `json:"status"`
	AdminID         *uuid.UUID       `json:"admin_id"`
	ReasonRejection *string          `json:"reason_rejection"`
	CreatedAt       time.Time        `json:"created_at"`
	Vaccine         *VaccineResponse `json:"vaccine,omitempty"`
}
