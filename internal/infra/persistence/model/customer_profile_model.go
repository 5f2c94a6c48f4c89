package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomerProfileModel mirrors the 'customer_profiles' table. UserID references users.id (UUID).
// The email carries a named unique index so violations can be reported by constraint name.
type CustomerProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;unique;not null"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:customer_profiles_email_key"`
	DateOfBirth *time.Time
	Preferences datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	SearchPreference *SearchPreferenceModel `gorm:"foreignKey:CustomerProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}
