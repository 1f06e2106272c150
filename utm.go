package geoconv

import (
	"errors"
	"math"
)

// UTMCoords is a Universal Transverse Mercator coordinate: a grid zone,
// hemisphere and an easting/northing pair in meters.
type UTMCoords struct {
	Zone       int
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

// UTMConverter converts between geodetic coordinates and the UTM grid. It
// holds one transverse Mercator projection per grid zone.
type UTMConverter struct {
	ellipsoid
	zoneOverride int
	zones        [61]*TransverseMercator
}

const utmMinLat = -80.5 * math.Pi / 180.0
const utmMaxLat = 84.5 * math.Pi / 180.0
const utmMinEasting = 100000.0
const utmMaxEasting = 900000.0
const utmMinNorthing = 0.0
const utmMaxNorthing = 10000000.0

const utmFalseEasting = 500000.0
const utmScaleFactor = 0.9996
const utmSouthernOffset = 10000000.0

// NewUTMConverter constructs a UTM converter for the WGS84 ellipsoid.
func NewUTMConverter() (*UTMConverter, error) {
	return NewUTMConverterEllipsoid(WGS84SemiMajorAxis, WGS84Flattening, 0)
}

// NewUTMConverterEllipsoid constructs a UTM converter for the given
// ellipsoid parameters. zoneOverride forces conversions into that grid
// zone; 0 means no override.
func NewUTMConverterEllipsoid(semiMajorAxis, flattening float64, zoneOverride int) (*UTMConverter, error) {
	u := &UTMConverter{
		ellipsoid:    ellipsoid{semiMajorAxis: semiMajorAxis, flattening: flattening},
		zoneOverride: zoneOverride,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	if zoneOverride < 0 || zoneOverride > 60 {
		return nil, errors.New("zone override out of range")
	}

	for zone := 1; zone <= 60; zone++ {
		var err error
		u.zones[zone], err = NewTransverseMercator(semiMajorAxis, flattening,
			utmCentralMeridian(zone), 0, utmFalseEasting, 0, utmScaleFactor)
		if err != nil {
			return nil, err
		}
	}
	return u, nil
}

// utmCentralMeridian returns the central meridian of a grid zone in
// radians.
func utmCentralMeridian(zone int) float64 {
	if zone >= 31 {
		return float64(6*zone-183) * math.Pi / 180
	}
	return float64(6*zone+177) * math.Pi / 180
}

// naturalZone returns the grid zone a longitude (in radians, [0, 2pi))
// naturally falls in.
func naturalZone(longitude float64) int {
	var zone int
	if longitude < math.Pi {
		zone = int(31 + ((longitude+1.0e-10)*180.0/math.Pi)/6.0)
	} else {
		zone = int(((longitude+1.0e-10)*180.0/math.Pi)/6.0 - 29)
	}
	if zone > 60 {
		zone = 1
	}
	return zone
}

// exceptionZone applies the grid exceptions over southern Norway and
// Svalbard. It returns zone unchanged when no exception applies.
func exceptionZone(zone, latDegrees, lonDegrees int) int {
	if latDegrees > 55 && latDegrees < 64 && lonDegrees > -1 && lonDegrees < 3 {
		return 31
	}
	if latDegrees > 55 && latDegrees < 64 && lonDegrees > 2 && lonDegrees < 12 {
		return 32
	}
	if latDegrees > 71 {
		switch {
		case lonDegrees > -1 && lonDegrees < 9:
			return 31
		case lonDegrees > 8 && lonDegrees < 21:
			return 33
		case lonDegrees > 20 && lonDegrees < 33:
			return 35
		case lonDegrees > 32 && lonDegrees < 42:
			return 37
		}
	}
	return zone
}

// resolveOverride validates an override zone against the natural zone; an
// override is only allowed within one zone of the natural one, with
// wraparound between zones 1 and 60.
func resolveOverride(zone, override int) (int, error) {
	switch {
	case zone == 1 && override == 60,
		zone == 60 && override == 1,
		zone-1 <= override && override <= zone+1:
		return override, nil
	}
	return 0, errors.New("zone out of range")
}

// FromCoord converts a geodetic coordinate to UTM. zoneOverride forces the
// result into that grid zone for this conversion only; 0 defers to the
// converter-level override, if any.
func (u *UTMConverter) FromCoord(c Coord, zoneOverride int) (UTMCoords, error) {
	geodetic := c.LatLng()
	latitude := geodetic.Lat.Radians()
	longitude := geodetic.Lng.Radians()

	if latitude < utmMinLat-epsilonRadians || latitude >= utmMaxLat+epsilonRadians {
		return UTMCoords{}, errors.New("latitude out of range")
	}
	if longitude < -math.Pi-epsilonRadians || longitude > 2*math.Pi+epsilonRadians {
		return UTMCoords{}, errors.New("longitude out of range")
	}

	if latitude > -1.0e-9 && latitude < 0 {
		latitude = 0.0
	}
	if longitude < 0 {
		longitude += 2 * math.Pi
	}

	zone := naturalZone(longitude)
	if zone < 0 {
		return UTMCoords{}, errors.New("longitude out of range")
	}

	var err error
	switch {
	case zoneOverride != 0:
		zone, err = resolveOverride(zone, zoneOverride)
	case u.zoneOverride != 0:
		zone, err = resolveOverride(zone, u.zoneOverride)
	default:
		latDegrees := int(latitude * 180.0 / math.Pi)
		lonDegrees := int(longitude * 180.0 / math.Pi)
		zone = exceptionZone(zone, latDegrees, lonDegrees)
	}
	if err != nil {
		return UTMCoords{}, err
	}

	hemisphere := HemisphereNorth
	falseNorthing := 0.0
	if latitude < 0 {
		hemisphere = HemisphereSouth
		falseNorthing = utmSouthernOffset
	}

	coords, err := u.zones[zone].FromGeodetic(radiansLatLng(latitude, longitude))
	if err != nil {
		return UTMCoords{}, err
	}
	easting := coords.Easting
	northing := coords.Northing + falseNorthing

	if easting < utmMinEasting || easting > utmMaxEasting {
		return UTMCoords{}, errors.New("easting out of range")
	}
	if northing < utmMinNorthing || northing > utmMaxNorthing {
		return UTMCoords{}, errors.New("northing out of range")
	}

	return UTMCoords{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	}, nil
}

// ToCoord converts UTM coordinates back to a geodetic coordinate.
func (u *UTMConverter) ToCoord(coords UTMCoords) (Coord, error) {
	if coords.Zone < 1 || coords.Zone > 60 {
		return Coord{}, errors.New("zone out of range")
	}
	if coords.Hemisphere != HemisphereNorth && coords.Hemisphere != HemisphereSouth {
		return Coord{}, errors.New("hemisphere out of range")
	}
	if coords.Easting < utmMinEasting || coords.Easting > utmMaxEasting {
		return Coord{}, errors.New("easting out of range")
	}
	if coords.Northing < utmMinNorthing || coords.Northing > utmMaxNorthing {
		return Coord{}, errors.New("northing out of range")
	}

	falseNorthing := 0.0
	if coords.Hemisphere == HemisphereSouth {
		falseNorthing = utmSouthernOffset
	}

	geodetic, err := u.zones[coords.Zone].ToGeodetic(GridCoords{
		Easting:  coords.Easting,
		Northing: coords.Northing - falseNorthing,
	})
	if err != nil {
		return Coord{}, err
	}

	latitude := geodetic.Lat.Radians()
	if latitude < utmMinLat-epsilonRadians || latitude >= utmMaxLat+epsilonRadians {
		return Coord{}, errors.New("latitude out of range")
	}
	return CoordFromLatLng(geodetic), nil
}
