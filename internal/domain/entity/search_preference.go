// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Rating bounds for customer search preferences.
const (
	MinPreferredRating = 0.0
	MaxPreferredRating = 5.0
)

// CustomerSearchPreference stores a customer's saved search defaults.
// At most one row exists per customer profile.
type CustomerSearchPreference struct {
	ID                  uuid.UUID  `json:"id"`
	CustomerProfileID   uuid.UUID  `json:"customer_profile_id"`
	SearchRadius        float64    `json:"search_radius"` // meters
	PreferredCategories []string   `json:"preferred_categories"`
	PreferredPriceRange float64    `json:"preferred_price_range"`
	PreferredRating     float64    `json:"preferred_rating"` // clamped to [0, 5], one decimal
	LastSearch          *time.Time `json:"last_search"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// SetPreferredRating stores the rating clamped to [0, 5] and rounded to one
// decimal place, so out-of-range input degrades instead of failing.
func (p *CustomerSearchPreference) SetPreferredRating(rating float64) {
	p.PreferredRating = ClampRating(rating)
}

// ClampRating clamps a rating to [0, 5] and rounds it to one decimal place.
func ClampRating(rating float64) float64 {
	clamped := math.Min(math.Max(rating, MinPreferredRating), MaxPreferredRating)

	return math.Round(clamped*10) / 10
}
