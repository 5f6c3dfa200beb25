package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vaccine is an entry of the vaccine catalog
type Vaccine struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Price        *decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Availability *bool            `gorm:"not null;default:true" json:"availability"`
}

func (Vaccine) TableName() string {
	return "vaccines"
}

func (v *Vaccine) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Availability == nil {
		available := true
		v.Availability = &available
	}
	return nil
}

// IsAvailable returns the availability flag, treating unset as available
func (v *Vaccine) IsAvailable() bool {
	return v.Availability == nil || *v.Availability
}
