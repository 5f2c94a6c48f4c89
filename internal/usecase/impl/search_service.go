package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultQueryTimeout = 5 * time.Second
	defaultCacheTTL     = 30 * time.Second
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	spatialIndex service.SpatialIndex
	locationRepo repository.BusinessLocationRepository
	vendorRepo   repository.VendorProfileRepository
	composer     *ViewComposer
	cache        service.QueryCache
	queryTimeout time.Duration
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// NewSearchService is the constructor for searchService. Zero durations fall
// back to the package defaults.
func NewSearchService(
	spatialIndex service.SpatialIndex,
	locationRepo repository.BusinessLocationRepository,
	vendorRepo repository.VendorProfileRepository,
	composer *ViewComposer,
	cache service.QueryCache,
	queryTimeout time.Duration,
	cacheTTL time.Duration,
	logger *slog.Logger,
) usecase.SearchUsecase {
	if queryTimeout <= 0 {
		queryTimeout = defaultQueryTimeout
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	return &searchService{
		spatialIndex: spatialIndex,
		locationRepo: locationRepo,
		vendorRepo:   vendorRepo,
		composer:     composer,
		cache:        cache,
		queryTimeout: queryTimeout,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// FindNearbyVendors returns every vendor with at least one business location
// within the radius, deduplicated and ordered by the spatial index result.
func (srv *searchService) FindNearbyVendors(ctx context.Context, input usecase.NearbyVendorsInput) ([]usecase.VendorProfileView, error) {
	center := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}

	if input.RadiusMeters <= 0 {
		return nil, domainerrors.ErrInvalidQuery.WrapMessage("radius must be positive")
	}
	if err := center.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidQuery.WrapMessage(err.Error())
	}

	cacheKey := fmt.Sprintf("nearby:%.6f:%.6f:%.0f", input.Latitude, input.Longitude, input.RadiusMeters)
	if views, ok := srv.cachedResult(ctx, cacheKey); ok {
		return views, nil
	}

	locationIDs, err := srv.queryIndex(ctx, center, input.RadiusMeters)
	if err != nil {
		return nil, err
	}
	if len(locationIDs) == 0 {
		return []usecase.VendorProfileView{}, nil
	}

	locations, err := srv.locationRepo.FindByIDs(ctx, locationIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load matched locations")
	}

	views, err := srv.composeVendors(ctx, locations)
	if err != nil {
		return nil, err
	}

	srv.storeResult(ctx, cacheKey, views)

	return views, nil
}

// queryIndex runs the spatial query under its own deadline. A query that
// outlives the deadline surfaces as a timeout error, not a generic failure.
func (srv *searchService) queryIndex(ctx context.Context, center entity.GeoPoint, radiusMeters float64) ([]uuid.UUID, error) {
	queryCtx, cancel := context.WithTimeout(ctx, srv.queryTimeout)
	defer cancel()

	ids, err := srv.spatialIndex.FindWithinRadius(queryCtx, center, radiusMeters)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domainerrors.ErrQueryTimeout.WrapMessage(err.Error())
		}

		return nil, errors.Wrap(err, "spatial query failed")
	}

	return ids, nil
}

// composeVendors groups matched locations by owning vendor, keeping the
// index order of each vendor's first match, and hydrates one view per vendor
// carrying only the locations that matched.
func (srv *searchService) composeVendors(ctx context.Context, locations []*entity.BusinessLocation) ([]usecase.VendorProfileView, error) {
	order := make([]uuid.UUID, 0, len(locations))
	byVendor := make(map[uuid.UUID][]entity.BusinessLocation, len(locations))

	for _, loc := range locations {
		if _, seen := byVendor[loc.VendorProfileID]; !seen {
			order = append(order, loc.VendorProfileID)
		}
		byVendor[loc.VendorProfileID] = append(byVendor[loc.VendorProfileID], *loc)
	}

	relations := repository.RelationSet{repository.RelationServices, repository.RelationOperatingHours}

	views := make([]usecase.VendorProfileView, 0, len(order))
	for _, vendorID := range order {
		profile, err := srv.vendorRepo.FindByID(ctx, vendorID)
		if err != nil {
			// An index entry pointing at a vanished profile is a stale read,
			// not a query failure.
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				srv.logger.Warn("matched location references missing vendor", "vendorProfileID", vendorID)

				continue
			}

			return nil, errors.Wrap(err, "failed to load vendor profile")
		}

		view, err := srv.composer.VendorViewWithLocations(ctx, profile, relations, byVendor[vendorID])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}

func (srv *searchService) cachedResult(ctx context.Context, key string) ([]usecase.VendorProfileView, bool) {
	payload, err := srv.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.logger.Warn("query cache read failed", "key", key, "error", err)
		}

		return nil, false
	}

	var views []usecase.VendorProfileView
	if err := json.Unmarshal(payload, &views); err != nil {
		srv.logger.Warn("query cache payload corrupt", "key", key, "error", err)

		return nil, false
	}

	return views, true
}

func (srv *searchService) storeResult(ctx context.Context, key string, views []usecase.VendorProfileView) {
	payload, err := json.Marshal(views)
	if err != nil {
		srv.logger.Warn("failed to encode query result for cache", "key", key, "error", err)

		return
	}

	if err := srv.cache.Set(ctx, key, payload, srv.cacheTTL); err != nil {
		srv.logger.Warn("query cache write failed", "key", key, "error", err)
	}
}
