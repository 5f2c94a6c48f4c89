package model

import (
	"time"

	"github.com/google/uuid"
)

// OperatingHoursModel mirrors the 'operating_hours' table.
// Times are stored as "15:04" wall-clock strings.
type OperatingHoursModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	VendorProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	DayOfWeek       int       `gorm:"not null"`
	OpensAt         string    `gorm:"type:varchar(5);not null"`
	ClosesAt        string    `gorm:"type:varchar(5);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OperatingHoursModel) TableName() string {
	return "operating_hours"
}
