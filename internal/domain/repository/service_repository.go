package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServiceNotFound is returned when a service is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the operations for vendor service persistence.
type ServiceRepository interface {
	// Create persists a new service for a vendor.
	Create(ctx context.Context, svc *entity.Service) error

	// FindByID retrieves a service by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindByVendorProfile retrieves all services of a vendor in a stable order.
	FindByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) ([]*entity.Service, error)

	// Update applies mutable fields and returns the number of rows touched.
	Update(ctx context.Context, svc *entity.Service) (int64, error)

	// Delete removes a service row and returns the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// DeleteByVendorProfile removes every service of a vendor. Used by the
	// cascading delete inside a transaction.
	DeleteByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) (int64, error)
}
