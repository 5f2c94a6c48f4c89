package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerProfileNotFound is returned when a customer profile is not found.
var ErrCustomerProfileNotFound = errors.New("customer profile not found")

// CustomerProfileRepository defines the operations for customer profile persistence.
type CustomerProfileRepository interface {
	// Create persists a new customer profile. A duplicate email surfaces as a
	// constraint violation naming the email constraint.
	Create(ctx context.Context, profile *entity.CustomerProfile) error

	// FindByID retrieves a customer profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomerProfile, error)

	// FindByUserID retrieves the customer profile owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error)

	// FindAll retrieves every customer profile.
	FindAll(ctx context.Context) ([]*entity.CustomerProfile, error)

	// Update applies mutable fields and returns the number of rows touched.
	Update(ctx context.Context, profile *entity.CustomerProfile) (int64, error)

	// Delete removes a customer profile row and returns the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
