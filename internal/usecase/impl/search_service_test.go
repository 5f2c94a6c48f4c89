package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceFixtures struct {
	*composerMocks

	spatialIndex *mockSvc.SpatialIndex
	cache        *mockSvc.QueryCache
	service      usecase.SearchUsecase
}

func createTestSearchService(t *testing.T) *searchServiceFixtures {
	cm := newComposerMocks(t)
	f := &searchServiceFixtures{
		composerMocks: cm,
		spatialIndex:  mockSvc.NewSpatialIndex(t),
		cache:         mockSvc.NewQueryCache(t),
	}
	f.service = NewSearchService(f.spatialIndex, cm.locationRepo, cm.vendorRepo, cm.build(), f.cache, 0, 0, testLogger())

	return f
}

func nearbyCacheKey(input usecase.NearbyVendorsInput) string {
	return fmt.Sprintf("nearby:%.6f:%.6f:%.0f", input.Latitude, input.Longitude, input.RadiusMeters)
}

func TestSearchService_FindNearbyVendors_RejectsNonPositiveRadius(t *testing.T) {
	f := createTestSearchService(t)

	for _, radius := range []float64{0, -100} {
		views, err := f.service.FindNearbyVendors(context.Background(), usecase.NearbyVendorsInput{
			Latitude:     25.033,
			Longitude:    121.5654,
			RadiusMeters: radius,
		})
		assert.Nil(t, views)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuery)
	}
}

func TestSearchService_FindNearbyVendors_RejectsOutOfRangeCoordinates(t *testing.T) {
	f := createTestSearchService(t)

	views, err := f.service.FindNearbyVendors(context.Background(), usecase.NearbyVendorsInput{
		Latitude:     95,
		Longitude:    121.5654,
		RadiusMeters: 1000,
	})
	assert.Nil(t, views)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuery)
}

func TestSearchService_FindNearbyVendors_CacheHitSkipsIndex(t *testing.T) {
	f := createTestSearchService(t)
	ctx := context.Background()

	input := usecase.NearbyVendorsInput{Latitude: 25.033, Longitude: 121.5654, RadiusMeters: 1000}
	cached := []usecase.VendorProfileView{
		{ID: uuid.New(), BusinessName: "Cached Noodles"},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	f.cache.On("Get", ctx, nearbyCacheKey(input)).Return(payload, nil)

	views, err := f.service.FindNearbyVendors(ctx, input)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, cached[0].ID, views[0].ID)
	assert.Equal(t, "Cached Noodles", views[0].BusinessName)

	f.spatialIndex.AssertNotCalled(t, "FindWithinRadius", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchService_FindNearbyVendors_CorruptCacheFallsThrough(t *testing.T) {
	f := createTestSearchService(t)
	ctx := context.Background()

	input := usecase.NearbyVendorsInput{Latitude: 25.033, Longitude: 121.5654, RadiusMeters: 1000}
	center := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}

	f.cache.On("Get", ctx, nearbyCacheKey(input)).Return([]byte("not json"), nil)
	f.spatialIndex.On("FindWithinRadius", mock.Anything, center, input.RadiusMeters).
		Return([]uuid.UUID{}, nil)

	views, err := f.service.FindNearbyVendors(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestSearchService_FindNearbyVendors_EmptyResultIsNotAnError(t *testing.T) {
	f := createTestSearchService(t)
	ctx := context.Background()

	input := usecase.NearbyVendorsInput{Latitude: 25.033, Longitude: 121.5654, RadiusMeters: 500}
	center := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}

	f.cache.On("Get", ctx, nearbyCacheKey(input)).Return(nil, service.ErrCacheMiss)
	f.spatialIndex.On("FindWithinRadius", mock.Anything, center, input.RadiusMeters).
		Return([]uuid.UUID{}, nil)

	views, err := f.service.FindNearbyVendors(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchService_FindNearbyVendors_IndexTimeout(t *testing.T) {
	f := createTestSearchService(t)
	ctx := context.Background()

	input := usecase.NearbyVendorsInput{Latitude: 25.033, Longitude: 121.5654, RadiusMeters: 500}
	center := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}

	f.cache.On("Get", ctx, nearbyCacheKey(input)).Return(nil, service.ErrCacheMiss)
	f.spatialIndex.On("FindWithinRadius", mock.Anything, center, input.RadiusMeters).
		Return(nil, context.DeadlineExceeded)

	views, err := f.service.FindNearbyVendors(ctx, input)
	assert.Nil(t, views)
	assert.ErrorIs(t, err, domainerrors.ErrQueryTimeout)
}

func TestSearchService_FindNearbyVendors_DeduplicatesVendorsInFirstSeenOrder(t *testing.T) {
	f := createTestSearchService(t)
	ctx := context.Background()

	vendorA := &entity.VendorProfile{ID: uuid.New(), BusinessName: "First Seen"}
	vendorB := &entity.VendorProfile{ID: uuid.New(), BusinessName: "Second Seen"}

	locA1 := &entity.BusinessLocation{ID: uuid.New(), VendorProfileID: vendorA.ID, Label: "A main"}
	locB1 := &entity.BusinessLocation{ID: uuid.New(), VendorProfileID: vendorB.ID, Label: "B main"}
	locA2 := &entity.BusinessLocation{ID: uuid.New(), VendorProfileID: vendorA.ID, Label: "A branch"}

	input := usecase.NearbyVendorsInput{Latitude: 25.033, Longitude: 121.5654, RadiusMeters: 2000}
	center := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}
	matchedIDs := []uuid.UUID{locA1.ID, locB1.ID, locA2.ID}

	f.cache.On("Get", ctx, nearbyCacheKey(input)).Return(nil, service.ErrCacheMiss)
	f.spatialIndex.On("FindWithinRadius", mock.Anything, center, input.RadiusMeters).
		Return(matchedIDs, nil)
	f.locationRepo.On("FindByIDs", ctx, matchedIDs).
		Return([]*entity.BusinessLocation{locA1, locB1, locA2}, nil)

	f.vendorRepo.On("FindByID", ctx, vendorA.ID).Return(vendorA, nil)
	f.vendorRepo.On("FindByID", ctx, vendorB.ID).Return(vendorB, nil)

	for _, vendorID := range []uuid.UUID{vendorA.ID, vendorB.ID} {
		f.serviceRepo.On("FindByVendorProfile", mock.Anything, vendorID).Return([]*entity.Service{}, nil)
		f.hoursRepo.On("FindByVendorProfile", mock.Anything, vendorID).Return([]*entity.OperatingHours{}, nil)
	}

	f.cache.On("Set", ctx, nearbyCacheKey(input), mock.Anything, mock.Anything).Return(nil)

	views, err := f.service.FindNearbyVendors(ctx, input)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, vendorA.ID, views[0].ID)
	assert.Len(t, views[0].BusinessLocations, 2)
	assert.Equal(t, vendorB.ID, views[1].ID)
	assert.Len(t, views[1].BusinessLocations, 1)

	// Only the locations that matched the query are attached; the full
	// location list is never loaded.
	f.locationRepo.AssertNotCalled(t, "FindByVendorProfile", mock.Anything, mock.Anything)
}

func TestSearchService_FindNearbyVendors_SkipsStaleVendorReference(t *testing.T) {
	f := createTestSearchService(t)
	ctx := context.Background()

	liveVendor := &entity.VendorProfile{ID: uuid.New(), BusinessName: "Still Here"}
	goneVendorID := uuid.New()

	liveLoc := &entity.BusinessLocation{ID: uuid.New(), VendorProfileID: liveVendor.ID}
	staleLoc := &entity.BusinessLocation{ID: uuid.New(), VendorProfileID: goneVendorID}

	input := usecase.NearbyVendorsInput{Latitude: 25.033, Longitude: 121.5654, RadiusMeters: 2000}
	center := entity.GeoPoint{Latitude: input.Latitude, Longitude: input.Longitude}
	matchedIDs := []uuid.UUID{staleLoc.ID, liveLoc.ID}

	f.cache.On("Get", ctx, nearbyCacheKey(input)).Return(nil, service.ErrCacheMiss)
	f.spatialIndex.On("FindWithinRadius", mock.Anything, center, input.RadiusMeters).
		Return(matchedIDs, nil)
	f.locationRepo.On("FindByIDs", ctx, matchedIDs).
		Return([]*entity.BusinessLocation{staleLoc, liveLoc}, nil)

	f.vendorRepo.On("FindByID", ctx, goneVendorID).Return(nil, repository.ErrVendorProfileNotFound)
	f.vendorRepo.On("FindByID", ctx, liveVendor.ID).Return(liveVendor, nil)

	f.serviceRepo.On("FindByVendorProfile", mock.Anything, liveVendor.ID).Return([]*entity.Service{}, nil)
	f.hoursRepo.On("FindByVendorProfile", mock.Anything, liveVendor.ID).Return([]*entity.OperatingHours{}, nil)

	f.cache.On("Set", ctx, nearbyCacheKey(input), mock.Anything, mock.Anything).Return(nil)

	views, err := f.service.FindNearbyVendors(ctx, input)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, liveVendor.ID, views[0].ID)
}
