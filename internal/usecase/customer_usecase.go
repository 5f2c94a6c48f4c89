package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCustomerProfileInput defines the data required to create a customer profile.
type CreateCustomerProfileInput struct {
	UserID      uuid.UUID  `json:"user_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Preferences []byte     `json:"preferences,omitempty"`
}

// UpdateCustomerProfileInput defines the data required to update a customer profile.
// Nil fields are left unchanged.
type UpdateCustomerProfileInput struct {
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	Email       *string    `json:"email,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Preferences []byte     `json:"preferences,omitempty"`
}

// UpsertSearchPreferenceInput defines the data required to save a customer's
// search preference. The rating is clamped and rounded before persisting.
type UpsertSearchPreferenceInput struct {
	SearchRadius        float64  `json:"search_radius"`
	PreferredCategories []string `json:"preferred_categories,omitempty"`
	PreferredPriceRange float64  `json:"preferred_price_range,omitempty"`
	PreferredRating     float64  `json:"preferred_rating,omitempty"`
}

// CustomerUsecase defines the interface for customer profile business operations.
type CustomerUsecase interface {
	// CreateProfile attaches a customer profile to a customer-typed user.
	// Attaching to a vendor-typed user fails with a type mismatch error.
	CreateProfile(ctx context.Context, input CreateCustomerProfileInput) (*CustomerProfileView, error)

	// GetProfile retrieves a customer profile composed with the requested relations.
	GetProfile(ctx context.Context, profileID uuid.UUID, relations repository.RelationSet) (*CustomerProfileView, error)

	// GetProfileByUserID retrieves the customer profile owned by a user.
	GetProfileByUserID(ctx context.Context, userID uuid.UUID, relations repository.RelationSet) (*CustomerProfileView, error)

	// ListProfiles retrieves all customer profiles with every relation composed.
	ListProfiles(ctx context.Context) ([]CustomerProfileView, error)

	// UpdateProfile applies a partial update to a customer profile.
	UpdateProfile(ctx context.Context, profileID uuid.UUID, input *UpdateCustomerProfileInput) (*CustomerProfileView, error)

	// DeleteProfile removes a customer profile and its search preference in
	// one transaction. The owning user account survives.
	DeleteProfile(ctx context.Context, profileID uuid.UUID) error

	// UpsertSearchPreference creates or replaces the customer's saved search
	// preference and stamps the last search time.
	UpsertSearchPreference(ctx context.Context, profileID uuid.UUID, input UpsertSearchPreferenceInput) (*CustomerProfileView, error)
}
