package usecase

import (
	"context"

	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateVendorProfileInput defines the data required to create a vendor profile.
type CreateVendorProfileInput struct {
	UserID       uuid.UUID `json:"user_id"`
	BusinessName string    `json:"business_name"`
	Description  string    `json:"description,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Website      string    `json:"website,omitempty"`
}

// UpdateVendorProfileInput defines the data required to update a vendor profile.
// Nil fields are left unchanged.
type UpdateVendorProfileInput struct {
	BusinessName *string `json:"business_name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Website      *string `json:"website,omitempty"`
}

// AddServiceInput defines the data required to add a service offering.
type AddServiceInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// AddOperatingHoursInput defines the data required to add an operating hours entry.
// Times use the "15:04" wall-clock format.
type AddOperatingHoursInput struct {
	DayOfWeek int    `json:"day_of_week"`
	OpensAt   string `json:"opens_at"`
	ClosesAt  string `json:"closes_at"`
}

// AddBusinessLocationInput defines the data required to add a business location.
type AddBusinessLocationInput struct {
	Label       string  `json:"label,omitempty"`
	FullAddress string  `json:"full_address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// AddSocialMediaInput defines the data required to add a social media link.
type AddSocialMediaInput struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// VendorUsecase defines the interface for vendor profile business operations.
type VendorUsecase interface {
	// CreateProfile attaches a vendor profile to a vendor-typed user.
	// Attaching to a customer-typed user fails with a type mismatch error.
	CreateProfile(ctx context.Context, input CreateVendorProfileInput) (*VendorProfileView, error)

	// GetProfile retrieves a vendor profile composed with the requested relations.
	GetProfile(ctx context.Context, profileID uuid.UUID, relations repository.RelationSet) (*VendorProfileView, error)

	// GetProfileByUserID retrieves the vendor profile owned by a user.
	GetProfileByUserID(ctx context.Context, userID uuid.UUID, relations repository.RelationSet) (*VendorProfileView, error)

	// ListProfiles retrieves all vendor profiles with every relation composed.
	ListProfiles(ctx context.Context) ([]VendorProfileView, error)

	// UpdateProfile applies a partial update to a vendor profile.
	UpdateProfile(ctx context.Context, profileID uuid.UUID, input *UpdateVendorProfileInput) (*VendorProfileView, error)

	// DeleteProfile removes a vendor profile and its dependents in one
	// transaction. The owning user account survives.
	DeleteProfile(ctx context.Context, profileID uuid.UUID) error

	// AddService adds a service offering to a vendor profile.
	AddService(ctx context.Context, profileID uuid.UUID, input AddServiceInput) (*VendorProfileView, error)

	// AddOperatingHours adds an operating hours entry to a vendor profile.
	AddOperatingHours(ctx context.Context, profileID uuid.UUID, input AddOperatingHoursInput) (*VendorProfileView, error)

	// AddBusinessLocation adds a geolocated business location to a vendor profile.
	AddBusinessLocation(ctx context.Context, profileID uuid.UUID, input AddBusinessLocationInput) (*VendorProfileView, error)

	// AddSocialMedia adds a social media link to a vendor profile.
	AddSocialMedia(ctx context.Context, profileID uuid.UUID, input AddSocialMediaInput) (*VendorProfileView, error)
}
