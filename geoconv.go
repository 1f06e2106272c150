// Package geoconv represents geographic coordinates and converts between
// decimal degrees (Coord), degree/minute/second form (DMS), UTM grid
// coordinates and MGRS grid reference strings.
//
// The projection math follows the GEOTRANS algorithms. Values are plain
// immutable structs and may be freely copied; converters are safe for
// concurrent use once constructed.
package geoconv

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Hemisphere identifies the northern or southern hemisphere.
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

// GridCoords is a projected easting/northing pair in meters.
type GridCoords struct {
	Easting  float64
	Northing float64
}

// ellipsoid holds the reference ellipsoid parameters shared by the
// projection converters.
type ellipsoid struct {
	semiMajorAxis float64
	flattening    float64
}

func (e ellipsoid) validate() error {
	if e.semiMajorAxis <= 0 {
		return errors.New("semi-major axis must be greater than zero")
	}
	if invF := 1 / e.flattening; invF < 250 || invF > 350 {
		return errors.New("inverse flattening must be between 250 and 350")
	}
	return nil
}

// eccentricity is the first eccentricity of the ellipsoid.
func (e ellipsoid) eccentricity() float64 {
	return math.Sqrt(2*e.flattening - e.flattening*e.flattening)
}

// epsilonRadians is roughly one meter of latitude expressed in radians.
const epsilonRadians = 1.75e-7

// radiansLatLng builds an s2.LatLng from radian values without the degree
// round trip.
func radiansLatLng(lat, lng float64) s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lng)}
}
