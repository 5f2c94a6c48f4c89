package spatial

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// haversineIndex scans every geolocated location and keeps those whose
// great-circle distance from the center is at most radiusMeters. The
// boundary is inclusive. Locations arrive from the repository in primary
// key order, so the result order is stable for identical inputs.
type haversineIndex struct {
	locationRepo repository.BusinessLocationRepository
	logger       *slog.Logger
}

// NewHaversineIndex creates an in-process SpatialIndex that scans all
// locations per query. Suited to development and small datasets.
func NewHaversineIndex(locationRepo repository.BusinessLocationRepository, logger *slog.Logger) service.SpatialIndex {
	return &haversineIndex{locationRepo: locationRepo, logger: logger}
}

// FindWithinRadius returns the IDs of locations within radiusMeters of center.
func (idx *haversineIndex) FindWithinRadius(ctx context.Context, center entity.GeoPoint, radiusMeters float64) ([]uuid.UUID, error) {
	locations, err := idx.locationRepo.FindAllGeolocated(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load locations for radius scan")
	}

	centerPoint := orb.Point{center.Longitude, center.Latitude}

	ids := make([]uuid.UUID, 0, len(locations))
	for _, location := range locations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		point := orb.Point{location.Geolocation.Longitude, location.Geolocation.Latitude}
		if geo.DistanceHaversine(centerPoint, point) <= radiusMeters {
			ids = append(ids, location.ID)
		}
	}

	idx.logger.Debug("[Haversine] Radius scan completed",
		slog.Float64("latitude", center.Latitude),
		slog.Float64("longitude", center.Longitude),
		slog.Float64("radius_meters", radiusMeters),
		slog.Int("scanned_count", len(locations)),
		slog.Int("match_count", len(ids)),
	)

	return ids, nil
}
