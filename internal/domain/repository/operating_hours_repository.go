package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// OperatingHoursRepository defines the operations for operating hours persistence.
type OperatingHoursRepository interface {
	// Create persists a new operating hours row for a vendor.
	Create(ctx context.Context, hours *entity.OperatingHours) error

	// FindByVendorProfile retrieves all operating hours of a vendor ordered by weekday.
	FindByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) ([]*entity.OperatingHours, error)

	// Update applies mutable fields and returns the number of rows touched.
	Update(ctx context.Context, hours *entity.OperatingHours) (int64, error)

	// Delete removes an operating hours row and returns the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// DeleteByVendorProfile removes every operating hours row of a vendor.
	DeleteByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) (int64, error)
}
