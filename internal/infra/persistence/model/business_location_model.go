package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessLocationModel mirrors the 'business_locations' table.
// Coordinates are WGS84 degrees; the PostGIS index queries them as geography.
type BusinessLocationModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	VendorProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label           string    `gorm:"type:varchar(100)"`
	FullAddress     string    `gorm:"type:text;not null"`
	Latitude        float64   `gorm:"type:double precision;not null"`
	Longitude       float64   `gorm:"type:double precision;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessLocationModel) TableName() string {
	return "business_locations"
}
