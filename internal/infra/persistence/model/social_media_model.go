package model

import (
	"time"

	"github.com/google/uuid"
)

// SocialMediaModel mirrors the 'social_media' table.
type SocialMediaModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	VendorProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform        string    `gorm:"type:varchar(50);not null"`
	URL             string    `gorm:"type:varchar(255);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialMediaModel) TableName() string {
	return "social_media"
}
