// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessLocation is a geographic site of a vendor. Its geolocation is the
// only thing the proximity search looks at; a vendor without any location is
// never eligible for radius queries.
type BusinessLocation struct {
	ID              uuid.UUID `json:"id"`
	VendorProfileID uuid.UUID `json:"vendor_profile_id"`
	Label           string    `json:"label"`
	FullAddress     string    `json:"full_address"`
	Geolocation     GeoPoint  `json:"geolocation"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
