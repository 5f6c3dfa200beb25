package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// prices go on the wire as JSON numbers; quoted strings are still accepted on input
	decimal.MarshalJSONWithoutQuotes = true
}

// Request DTOs

type CreateVaccineRequest struct {
	Name         string           `json:"name" validate:"required,max=255"`
	Price        *decimal.Decimal `json:"price"`
	Availability *bool            `json:"availability"`
}

// UpdateVaccineRequest is a patch: absent fields are left unchanged, a null price clears it.
type UpdateVaccineRequest struct {
	Name         Field[string]          `json:"name"`
	Price        Field[decimal.Decimal] `json:"price"`
	Availability Field[bool]            `json:"availability"`
}

// Response DTOs

type VaccineResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Price        *decimal.Decimal `json:"price"`
	Availability bool             `json:"availability"`
}
