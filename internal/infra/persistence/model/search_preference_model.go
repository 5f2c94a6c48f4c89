package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SearchPreferenceModel mirrors the 'customer_search_preferences' table.
// The unique index on CustomerProfileID enforces the one-row-per-customer rule.
type SearchPreferenceModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key"`
	CustomerProfileID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:customer_search_preferences_customer_profile_id_key"`
	SearchRadius        float64        `gorm:"type:double precision;not null"`
	PreferredCategories datatypes.JSON `gorm:"type:jsonb"`
	PreferredPriceRange float64        `gorm:"type:double precision"`
	PreferredRating     float64        `gorm:"type:double precision"`
	LastSearch          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (SearchPreferenceModel) TableName() string {
	return "customer_search_preferences"
}
