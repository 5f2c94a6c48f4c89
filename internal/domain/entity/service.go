// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Service is a single offering of a vendor, priced with two-decimal
// fixed-point semantics.
type Service struct {
	ID              uuid.UUID       `json:"id"`
	VendorProfileID uuid.UUID       `json:"vendor_profile_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Validate enforces the service invariants: a non-empty name and a
// non-negative price.
func (s *Service) Validate() error {
	if s.Name == "" {
		return errors.New("service name is required")
	}
	if s.Price.IsNegative() {
		return errors.Errorf("service price %s must not be negative", s.Price.String())
	}

	return nil
}
