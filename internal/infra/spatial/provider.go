// Package spatial provides SpatialIndex implementations for proximity search.
package spatial

import (
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Spatial index providers selectable through configuration.
const (
	ProviderPostGIS = "postgis"
	ProviderMemory  = "memory"
)

// Params holds dependencies for SpatialIndex, injected by Fx
type Params struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	DB           *gorm.DB
	LocationRepo repository.BusinessLocationRepository
}

// New creates a SpatialIndex based on configuration. PostGIS is the
// default when no provider is configured.
func New(params Params) (service.SpatialIndex, error) {
	cfg := params.Config.Spatial
	logger := params.Logger

	provider := ProviderPostGIS
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case ProviderPostGIS:
		logger.Info("Using PostGIS spatial index")

		return NewPostGISIndex(params.DB, logger), nil

	case ProviderMemory:
		logger.Info("Using in-memory haversine spatial index")

		return NewHaversineIndex(params.LocationRepo, logger), nil

	default:
		return nil, errors.Errorf("unknown spatial provider: %s", provider)
	}
}
