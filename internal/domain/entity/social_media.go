// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SocialMedia is a single social link of a vendor.
type SocialMedia struct {
	ID              uuid.UUID `json:"id"`
	VendorProfileID uuid.UUID `json:"vendor_profile_id"`
	Platform        string    `json:"platform"`
	URL             string    `json:"url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
