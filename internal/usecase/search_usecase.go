package usecase

import "context"

// --- Input DTOs ---

// NearbyVendorsInput defines the parameters of a proximity search.
type NearbyVendorsInput struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

// SearchUsecase defines the interface for proximity search operations.
type SearchUsecase interface {
	// FindNearbyVendors returns every vendor with at least one business
	// location within the radius. Each vendor appears once, composed with its
	// services and operating hours, and carries only the locations that
	// matched the query. An empty result is a valid outcome, not an error.
	FindNearbyVendors(ctx context.Context, input NearbyVendorsInput) ([]VendorProfileView, error)
}
