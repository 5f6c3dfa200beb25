package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that can authenticate against the API
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'citizen'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleCitizen
	}
	return nil
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsCitizen checks if the user holds the citizen role
func (u *User) IsCitizen() bool {
	return u.Role == RoleCitizen
}
