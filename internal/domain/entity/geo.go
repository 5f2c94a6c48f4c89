// Package entity contains the core business objects of the project.
package entity

import "github.com/pkg/errors"

// GeoPoint is a geographic coordinate pair in WGS84 degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks the coordinate ranges: latitude in [-90, 90] and
// longitude in [-180, 180].
func (p GeoPoint) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return errors.Errorf("latitude %f out of range [-90, 90]", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return errors.Errorf("longitude %f out of range [-180, 180]", p.Longitude)
	}

	return nil
}
