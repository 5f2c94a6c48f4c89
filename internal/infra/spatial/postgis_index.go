package spatial

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postgisIndex answers radius queries database-side through PostGIS.
// ST_DWithin over geography is inclusive at the boundary, and the rows
// come back ordered by id so identical queries return identical slices.
type postgisIndex struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewPostGISIndex creates a SpatialIndex backed by PostGIS geography queries.
func NewPostGISIndex(db *gorm.DB, logger *slog.Logger) service.SpatialIndex {
	return &postgisIndex{db: db, logger: logger}
}

const postgisWithinRadiusQuery = `
SELECT id
FROM business_locations
WHERE ST_DWithin(
	ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
	ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
	?
)
ORDER BY id`

// FindWithinRadius returns the IDs of locations within radiusMeters of center.
func (idx *postgisIndex) FindWithinRadius(ctx context.Context, center entity.GeoPoint, radiusMeters float64) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := idx.db.WithContext(ctx).
		Raw(postgisWithinRadiusQuery, center.Longitude, center.Latitude, radiusMeters).
		Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query locations within radius")
	}

	idx.logger.Debug("[PostGIS] Radius query completed",
		slog.Float64("latitude", center.Latitude),
		slog.Float64("longitude", center.Longitude),
		slog.Float64("radius_meters", radiusMeters),
		slog.Int("match_count", len(ids)),
	)

	return ids, nil
}
