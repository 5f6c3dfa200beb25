package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vaccination records a dose that was actually administered
type Vaccination struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID   *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"appointment_id"`
	CitizenID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"citizen_id"`
	VaccineID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"vaccine_id"`
	DoseNumber      int        `gorm:"not null" json:"dose_number"`
	BatchNumber     *string    `gorm:"type:varchar(100)" json:"batch_number"`
	VaccinationDate time.Time  `gorm:"autoCreateTime" json:"vaccination_date"`
	AdminID         *uuid.UUID `gorm:"type:uuid;index" json:"admin_id"`

	// Relationships
	Appointment *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE" json:"-"`
	Citizen     User         `gorm:"foreignKey:CitizenID;constraint:OnDelete:CASCADE" json:"-"`
	Admin       *User        `gorm:"foreignKey:AdminID;constraint:OnDelete:SET NULL" json:"-"`
	Vaccine     Vaccine      `gorm:"foreignKey:VaccineID;constraint:OnDelete:RESTRICT" json:"vaccine,omitempty"`
}

func (Vaccination) TableName() string {
	return "vaccinations"
}

func (v *Vaccination) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
