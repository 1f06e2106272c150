package geoconv

import (
	"errors"
	"math"
)

// UPSCoords is a Universal Polar Stereographic coordinate, an
// easting/northing pair in meters in the given polar hemisphere.
type UPSCoords struct {
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

// UPSConverter converts between geodetic coordinates and the UPS grid. It
// holds one polar stereographic projection per pole.
type UPSConverter struct {
	ellipsoid
	north *PolarStereographic
	south *PolarStereographic
}

const upsFalseEasting = 2000000.0
const upsFalseNorthing = 2000000.0
const upsScaleFactor = 0.994

const upsMaxLat = 90.0 * (math.Pi / 180.0)
const upsMinNorthLat = 83.5 * (math.Pi / 180.0)
const upsMaxSouthLat = -79.5 * (math.Pi / 180.0)
const upsMinEastNorth = 0.0
const upsMaxEastNorth = 4000000.0

// NewUPSConverter constructs a UPS converter for the given ellipsoid
// parameters.
func NewUPSConverter(semiMajorAxis, flattening float64) (*UPSConverter, error) {
	u := &UPSConverter{
		ellipsoid: ellipsoid{semiMajorAxis: semiMajorAxis, flattening: flattening},
	}
	if err := u.validate(); err != nil {
		return nil, err
	}

	var err error
	u.north, err = NewPolarStereographicScaleFactor(semiMajorAxis, flattening,
		0, upsScaleFactor, HemisphereNorth, upsFalseEasting, upsFalseNorthing)
	if err != nil {
		return nil, err
	}
	u.south, err = NewPolarStereographicScaleFactor(semiMajorAxis, flattening,
		0, upsScaleFactor, HemisphereSouth, upsFalseEasting, upsFalseNorthing)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// FromCoord converts a geodetic coordinate to UPS. The latitude must lie in
// one of the polar caps the grid covers.
func (u *UPSConverter) FromCoord(c Coord) (UPSCoords, error) {
	geodetic := c.LatLng()
	latitude := geodetic.Lat.Radians()
	longitude := geodetic.Lng.Radians()

	if latitude < -upsMaxLat || latitude > upsMaxLat {
		return UPSCoords{}, errors.New("latitude out of range")
	}
	if latitude < 0 && latitude >= upsMaxSouthLat+epsilonRadians {
		return UPSCoords{}, errors.New("latitude out of range")
	}
	if latitude >= 0 && latitude < upsMinNorthLat-epsilonRadians {
		return UPSCoords{}, errors.New("latitude out of range")
	}
	if longitude < -math.Pi || longitude > 2*math.Pi {
		return UPSCoords{}, errors.New("longitude out of range")
	}

	hemisphere := HemisphereNorth
	projection := u.north
	if latitude < 0 {
		hemisphere = HemisphereSouth
		projection = u.south
	}

	coords, err := projection.FromGeodetic(geodetic)
	if err != nil {
		return UPSCoords{}, err
	}
	return UPSCoords{
		Hemisphere: hemisphere,
		Easting:    coords.Easting,
		Northing:   coords.Northing,
	}, nil
}

// ToCoord converts UPS coordinates back to a geodetic coordinate.
func (u *UPSConverter) ToCoord(coords UPSCoords) (Coord, error) {
	if coords.Hemisphere != HemisphereNorth && coords.Hemisphere != HemisphereSouth {
		return Coord{}, errors.New("hemisphere invalid")
	}
	if coords.Easting < upsMinEastNorth || coords.Easting > upsMaxEastNorth {
		return Coord{}, errors.New("easting out of range")
	}
	if coords.Northing < upsMinEastNorth || coords.Northing > upsMaxEastNorth {
		return Coord{}, errors.New("northing out of range")
	}

	projection := u.north
	if coords.Hemisphere == HemisphereSouth {
		projection = u.south
	}
	geodetic, err := projection.ToGeodetic(GridCoords{
		Easting:  coords.Easting,
		Northing: coords.Northing,
	})
	if err != nil {
		return Coord{}, err
	}

	latitude := geodetic.Lat.Radians()
	if latitude < 0 && latitude >= upsMaxSouthLat+epsilonRadians {
		return Coord{}, errors.New("resulting latitude out of range")
	}
	if latitude >= 0 && latitude < upsMinNorthLat-epsilonRadians {
		return Coord{}, errors.New("resulting latitude out of range")
	}
	return CoordFromLatLng(geodetic), nil
}
