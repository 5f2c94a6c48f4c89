package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampRating(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   float64
	}{
		{"within range", 3.5, 3.5},
		{"rounds to one decimal", 4.44, 4.4},
		{"rounds half up", 4.45, 4.5},
		{"above maximum", 7.77, 5.0},
		{"below minimum", -1.2, 0.0},
		{"exact minimum", 0.0, 0.0},
		{"exact maximum", 5.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ClampRating(tt.rating), 1e-9)
		})
	}
}

func TestCustomerSearchPreference_SetPreferredRating(t *testing.T) {
	pref := &CustomerSearchPreference{}

	pref.SetPreferredRating(9.9)
	assert.InDelta(t, 5.0, pref.PreferredRating, 1e-9)

	pref.SetPreferredRating(-3)
	assert.InDelta(t, 0.0, pref.PreferredRating, 1e-9)

	pref.SetPreferredRating(4.26)
	assert.InDelta(t, 4.3, pref.PreferredRating, 1e-9)
}
