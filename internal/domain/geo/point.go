// Package geo derives the spatial point stored alongside an item's coordinates.
package geo

import (
	"math"

	domainerrors "grainauth/internal/domain/errors"

	"github.com/paulmach/orb"
)

// SRID is the spatial reference of every stored point (WGS84 lon/lat).
const SRID = 4326

// Point builds the WGS84 point for the given coordinates. Longitude is X and
// latitude is Y. Missing or out-of-range coordinates are rejected.
func Point(latitude, longitude *float64) (orb.Point, error) {
	if latitude == nil || longitude == nil {
		return orb.Point{}, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude are required")
	}

	lat, lon := *latitude, *longitude
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return orb.Point{}, domainerrors.ErrValidationFailed.WithDetails("latitude must be within [-90, 90]")
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return orb.Point{}, domainerrors.ErrValidationFailed.WithDetails("longitude must be within [-180, 180]")
	}

	return orb.Point{lon, lat}, nil
}
