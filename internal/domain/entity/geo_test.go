package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPoint_Validate(t *testing.T) {
	tests := []struct {
		name    string
		point   GeoPoint
		wantErr bool
	}{
		{"valid point", GeoPoint{Latitude: 25.033, Longitude: 121.5654}, false},
		{"zero point", GeoPoint{}, false},
		{"latitude at north pole", GeoPoint{Latitude: 90, Longitude: 0}, false},
		{"latitude at south pole", GeoPoint{Latitude: -90, Longitude: 0}, false},
		{"longitude at date line", GeoPoint{Latitude: 0, Longitude: 180}, false},
		{"longitude at negative date line", GeoPoint{Latitude: 0, Longitude: -180}, false},
		{"latitude too high", GeoPoint{Latitude: 90.001, Longitude: 0}, true},
		{"latitude too low", GeoPoint{Latitude: -90.001, Longitude: 0}, true},
		{"longitude too high", GeoPoint{Latitude: 0, Longitude: 180.001}, true},
		{"longitude too low", GeoPoint{Latitude: 0, Longitude: -180.001}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.point.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
