package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the admin decision on an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "pending"
	AppointmentStatusApproved AppointmentStatus = "approved"
	AppointmentStatusRejected AppointmentStatus = "rejected"
)

// IsValid reports whether s is one of the known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusApproved, AppointmentStatusRejected:
		return true
	}
	return false
}

// Appointment is a citizen's request to receive a vaccine on a preferred date.
// CitizenID is an owning reference (cascade), AdminID a non-owning one (set null).
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CitizenID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointment_user_status,priority:1" json:"citizen_id"`
	VaccineID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"vaccine_id"`
	PreferredDate   time.Time         `gorm:"not null" json:"preferred_date"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_appointment_user_status,priority:2" json:"status"`
	AdminID         *uuid.UUID        `gorm:"type:uuid;index" json:"admin_id"`
	ReasonRejection *string           `gorm:"type:text" json:"reason_rejection"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Citizen User    `gorm:"foreignKey:CitizenID;constraint:OnDelete:CASCADE" json:"-"`
	Admin   *User   `gorm:"foreignKey:AdminID;constraint:OnDelete:SET NULL" json:"-"`
	Vaccine Vaccine `gorm:"foreignKey:VaccineID;constraint:OnDelete:RESTRICT" json:"vaccine,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AppointmentStatusPending
	}
	return nil
}

// IsOwnedBy checks if the appointment was booked by the given citizen
func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.CitizenID == userID
}

// Decide applies an admin decision. The reason replaces any previous one,
// so approving an earlier rejected appointment without a reason clears it.
func (a *Appointment) Decide(status AppointmentStatus, adminID uuid.UUID, reason *string) {
	a.Status = status
	a.AdminID = &adminID
	a.ReasonRejection = reason
}
