package spatial

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHaversineIndex_FindWithinRadius(t *testing.T) {
	locationRepo := mockRepo.NewBusinessLocationRepository(t)
	index := NewHaversineIndex(locationRepo, testLogger())

	ctx := context.Background()
	center := entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}

	atCenter := &entity.BusinessLocation{ID: uuid.New(), Geolocation: center}
	// Roughly 100 meters north of the center.
	nearby := &entity.BusinessLocation{ID: uuid.New(), Geolocation: entity.GeoPoint{Latitude: 25.0339, Longitude: 121.5654}}
	// Taichung, over 100 kilometers away.
	faraway := &entity.BusinessLocation{ID: uuid.New(), Geolocation: entity.GeoPoint{Latitude: 24.1477, Longitude: 120.6736}}

	locationRepo.On("FindAllGeolocated", ctx).
		Return([]*entity.BusinessLocation{atCenter, nearby, faraway}, nil)

	ids, err := index.FindWithinRadius(ctx, center, 500)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{atCenter.ID, nearby.ID}, ids)
}

func TestHaversineIndex_BoundaryIsInclusive(t *testing.T) {
	locationRepo := mockRepo.NewBusinessLocationRepository(t)
	index := NewHaversineIndex(locationRepo, testLogger())

	ctx := context.Background()
	center := entity.GeoPoint{Latitude: 25.0330, Longitude: 121.5654}
	atCenter := &entity.BusinessLocation{ID: uuid.New(), Geolocation: center}

	locationRepo.On("FindAllGeolocated", ctx).
		Return([]*entity.BusinessLocation{atCenter}, nil)

	// Distance zero must match a radius of zero.
	ids, err := index.FindWithinRadius(ctx, center, 0)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{atCenter.ID}, ids)
}

func TestHaversineIndex_PropagatesRepositoryError(t *testing.T) {
	locationRepo := mockRepo.NewBusinessLocationRepository(t)
	index := NewHaversineIndex(locationRepo, testLogger())

	ctx := context.Background()

	locationRepo.On("FindAllGeolocated", ctx).
		Return(nil, errors.New("connection reset"))

	ids, err := index.FindWithinRadius(ctx, entity.GeoPoint{}, 500)
	assert.Nil(t, ids)
	assert.Error(t, err)
}

func TestHaversineIndex_HonorsCancelledContext(t *testing.T) {
	locationRepo := mockRepo.NewBusinessLocationRepository(t)
	index := NewHaversineIndex(locationRepo, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	location := &entity.BusinessLocation{ID: uuid.New()}
	locationRepo.On("FindAllGeolocated", ctx).
		Return([]*entity.BusinessLocation{location}, nil)

	ids, err := index.FindWithinRadius(ctx, entity.GeoPoint{}, 500)
	assert.Nil(t, ids)
	assert.ErrorIs(t, err, context.Canceled)
}
