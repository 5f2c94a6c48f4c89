package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorProfileModel mirrors the 'vendor_profiles' table. UserID references users.id (UUID).
type VendorProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;unique;not null"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(50)"`
	Website      string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Services          []*ServiceModel          `gorm:"foreignKey:VendorProfileID"`
	OperatingHours    []*OperatingHoursModel   `gorm:"foreignKey:VendorProfileID"`
	BusinessLocations []*BusinessLocationModel `gorm:"foreignKey:VendorProfileID"`
	SocialMedia       []*SocialMediaModel      `gorm:"foreignKey:VendorProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}
