package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessLocationNotFound is returned when a business location is not found.
var ErrBusinessLocationNotFound = errors.New("business location not found")

// BusinessLocationRepository defines the operations for business location persistence.
type BusinessLocationRepository interface {
	// Create persists a new business location for a vendor.
	Create(ctx context.Context, location *entity.BusinessLocation) error

	// FindByID retrieves a business location by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessLocation, error)

	// FindByIDs retrieves the locations with the given IDs, preserving the
	// order of the input slice. Unknown IDs are skipped, not errors.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.BusinessLocation, error)

	// FindByVendorProfile retrieves all locations of a vendor in a stable order.
	FindByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) ([]*entity.BusinessLocation, error)

	// FindAllGeolocated retrieves every location eligible for proximity
	// search. Backs the in-memory spatial index.
	FindAllGeolocated(ctx context.Context) ([]*entity.BusinessLocation, error)

	// Update applies mutable fields and returns the number of rows touched.
	Update(ctx context.Context, location *entity.BusinessLocation) (int64, error)

	// Delete removes a location row and returns the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// DeleteByVendorProfile removes every location of a vendor. Used by the
	// cascading delete inside a transaction.
	DeleteByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) (int64, error)
}
