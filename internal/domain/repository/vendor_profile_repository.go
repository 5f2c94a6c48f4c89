package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVendorProfileNotFound is returned when a vendor profile is not found.
var ErrVendorProfileNotFound = errors.New("vendor profile not found")

// VendorProfileRepository defines the operations for vendor profile persistence.
type VendorProfileRepository interface {
	// Create persists a new vendor profile.
	Create(ctx context.Context, profile *entity.VendorProfile) error

	// FindByID retrieves a vendor profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorProfile, error)

	// FindByUserID retrieves the vendor profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)

	// FindAll retrieves every vendor profile.
	FindAll(ctx context.Context) ([]*entity.VendorProfile, error)

	// Update applies mutable fields and returns the number of rows touched.
	Update(ctx context.Context, profile *entity.VendorProfile) (int64, error)

	// Delete removes a vendor profile row and returns the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
