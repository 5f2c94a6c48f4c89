package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOperatingHours_Validate(t *testing.T) {
	hours := &OperatingHours{
		ID:              uuid.New(),
		VendorProfileID: uuid.New(),
		DayOfWeek:       time.Monday,
		OpensAt:         "09:00",
		ClosesAt:        "18:30",
	}
	assert.NoError(t, hours.Validate())
}

func TestOperatingHours_Validate_DayOfWeekRange(t *testing.T) {
	hours := &OperatingHours{DayOfWeek: time.Weekday(7), OpensAt: "09:00", ClosesAt: "18:00"}
	assert.Error(t, hours.Validate())

	hours.DayOfWeek = time.Weekday(-1)
	assert.Error(t, hours.Validate())

	hours.DayOfWeek = time.Sunday
	assert.NoError(t, hours.Validate())

	hours.DayOfWeek = time.Saturday
	assert.NoError(t, hours.Validate())
}

func TestOperatingHours_Validate_TimeFormat(t *testing.T) {
	tests := []struct {
		name     string
		opensAt  string
		closesAt string
		wantErr  bool
	}{
		{"midnight boundary", "00:00", "23:59", false},
		{"hour out of range", "25:00", "18:00", true},
		{"minute out of range", "09:61", "18:00", true},
		{"missing leading zero still parses", "9:00", "18:00", false},
		{"empty opens at", "", "18:00", true},
		{"seconds not allowed", "09:00:00", "18:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := &OperatingHours{DayOfWeek: time.Tuesday, OpensAt: tt.opensAt, ClosesAt: tt.closesAt}
			err := hours.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
