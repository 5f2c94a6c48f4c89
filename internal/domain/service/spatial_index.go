// Package service defines interfaces for domain services implemented by the infrastructure layer.
package service

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// SpatialIndex answers geodesic point-in-radius queries over business
// locations. Distance is great-circle, and the boundary is inclusive: a
// location exactly radiusMeters away is within.
// The indexing strategy (PostGIS, in-memory haversine scan) is an
// implementation detail behind this interface.
type SpatialIndex interface {
	// FindWithinRadius returns the IDs of every business location whose
	// geolocation lies within radiusMeters of center. The returned order is
	// stable for identical inputs and defines the default result order of
	// proximity searches.
	FindWithinRadius(ctx context.Context, center entity.GeoPoint, radiusMeters float64) ([]uuid.UUID, error)
}
