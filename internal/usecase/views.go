// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Composed views ---
//
// Views are the outward shapes of users and profiles. They carry no
// credential material by construction, so callers can serialize them
// directly without a redaction pass.

// UserView is the outward representation of a user account.
type UserView struct {
	ID        uuid.UUID            `json:"id"`
	Username  string               `json:"username"`
	UserType  entity.UserType      `json:"user_type"`
	Images    []entity.ImageRef    `json:"images"`
	Vendor    *VendorProfileView   `json:"vendor_profile,omitempty"`
	Customer  *CustomerProfileView `json:"customer_profile,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// UserAccountView is the redacted owning user attached to profile views.
// It carries account fields only; credential material has no field to
// serialize from.
type UserAccountView struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	UserType  entity.UserType `json:"user_type"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// VendorProfileView is a vendor profile together with its composed relations.
// Relations not requested by the caller are nil, not empty.
type VendorProfileView struct {
	ID                uuid.UUID                 `json:"id"`
	UserID            uuid.UUID                 `json:"user_id"`
	BusinessName      string                    `json:"business_name"`
	Description       string                    `json:"description,omitempty"`
	Phone             string                    `json:"phone,omitempty"`
	Website           string                    `json:"website,omitempty"`
	Services          []entity.Service          `json:"services,omitempty"`
	OperatingHours    []entity.OperatingHours   `json:"operating_hours,omitempty"`
	BusinessLocations []entity.BusinessLocation `json:"business_locations,omitempty"`
	SocialMedia       []entity.SocialMedia      `json:"social_media,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

// CustomerProfileView is a customer profile together with its composed relations.
type CustomerProfileView struct {
	ID               uuid.UUID                        `json:"id"`
	UserID           uuid.UUID                        `json:"user_id"`
	FirstName        string                           `json:"first_name"`
	LastName         string                           `json:"last_name"`
	Email            string                           `json:"email"`
	DateOfBirth      *time.Time                       `json:"date_of_birth,omitempty"`
	Preferences      []byte                           `json:"preferences,omitempty"`
	SearchPreference *entity.CustomerSearchPreference `json:"search_preference,omitempty"`
	User             *UserAccountView                 `json:"user,omitempty"`
	CreatedAt        time.Time                        `json:"created_at"`
	UpdatedAt        time.Time                        `json:"updated_at"`
}
