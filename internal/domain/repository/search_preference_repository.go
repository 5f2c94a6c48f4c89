package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSearchPreferenceNotFound is returned when a customer has no saved search preference.
var ErrSearchPreferenceNotFound = errors.New("search preference not found")

// SearchPreferenceRepository defines the operations for customer search preference persistence.
// At most one row exists per customer profile.
type SearchPreferenceRepository interface {
	// Upsert creates or replaces the preference row of a customer profile.
	Upsert(ctx context.Context, pref *entity.CustomerSearchPreference) error

	// FindByCustomerProfile retrieves the preference of a customer, or
	// ErrSearchPreferenceNotFound when none is saved.
	FindByCustomerProfile(ctx context.Context, customerProfileID uuid.UUID) (*entity.CustomerSearchPreference, error)

	// DeleteByCustomerProfile removes the preference row of a customer, if any.
	DeleteByCustomerProfile(ctx context.Context, customerProfileID uuid.UUID) (int64, error)
}
