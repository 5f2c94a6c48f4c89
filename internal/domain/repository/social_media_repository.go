package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialMediaRepository defines the operations for social media link persistence.
type SocialMediaRepository interface {
	// Create persists a new social media link for a vendor.
	Create(ctx context.Context, link *entity.SocialMedia) error

	// FindByVendorProfile retrieves all links of a vendor in a stable order.
	FindByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) ([]*entity.SocialMedia, error)

	// Delete removes a link row and returns the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// DeleteByVendorProfile removes every link of a vendor.
	DeleteByVendorProfile(ctx context.Context, vendorProfileID uuid.UUID) (int64, error)
}
