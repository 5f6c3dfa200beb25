package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article is an awareness article published by an admin.
// CreatedBy becomes null when the author account is deleted.
type Article struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;index" json:"created_by"`

	// Relationships
	Author *User `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"author,omitempty"`
}

func (Article) TableName() string {
	return "awareness_articles"
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
