// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OperatingHours is one weekday's opening window for a vendor.
// Times are local wall-clock values in "15:04" format.
type OperatingHours struct {
	ID              uuid.UUID    `json:"id"`
	VendorProfileID uuid.UUID    `json:"vendor_profile_id"`
	DayOfWeek       time.Weekday `json:"day_of_week"`
	OpensAt         string       `json:"opens_at"`
	ClosesAt        string       `json:"closes_at"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Validate checks the weekday range and time formats.
func (h *OperatingHours) Validate() error {
	if h.DayOfWeek < time.Sunday || h.DayOfWeek > time.Saturday {
		return errors.Errorf("invalid day of week: %d", h.DayOfWeek)
	}
	for _, v := range []string{h.OpensAt, h.ClosesAt} {
		if _, err := time.Parse("15:04", v); err != nil {
			return errors.Wrapf(err, "invalid time of day %q", v)
		}
	}

	return nil
}
