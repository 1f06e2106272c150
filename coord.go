package geoconv

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// Coord is a geographic coordinate in signed decimal degrees.
type Coord struct {
	Lat float64
	Lon float64
}

// NewCoord constructs a Coord from decimal-degree latitude and longitude.
func NewCoord(lat, lon float64) Coord {
	return Coord{Lat: lat, Lon: lon}
}

// CoordFromLatLng converts the radian-based geodetic representation used by
// the projection math back to decimal degrees.
func CoordFromLatLng(ll s2.LatLng) Coord {
	return Coord{Lat: ll.Lat.Degrees(), Lon: ll.Lng.Degrees()}
}

// LatLng returns the coordinate in the radian-based geodetic representation
// used by the projection math.
func (c Coord) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// DMS returns the coordinate in degree, minute, second form.
func (c Coord) DMS() DMS {
	return DMSFromCoord(c)
}

// UTM projects the coordinate to UTM using the WGS84 converter.
func (c Coord) UTM() (UTMCoords, error) {
	return DefaultUTM.FromCoord(c, 0)
}

// MGRS converts the coordinate to an MGRS string of the given precision
// (0-5 digit pairs) using the WGS84 converter.
func (c Coord) MGRS(precision int) (string, error) {
	return DefaultMGRS.FromCoord(c, precision)
}

// CoordFromUTM converts UTM coordinates to decimal degrees using the WGS84
// converter.
func CoordFromUTM(coords UTMCoords) (Coord, error) {
	return DefaultUTM.ToCoord(coords)
}

// CoordFromMGRS converts an MGRS coordinate string to decimal degrees using
// the WGS84 converter.
func CoordFromMGRS(mgrs string) (Coord, error) {
	return DefaultMGRS.ToCoord(mgrs)
}

func (c Coord) String() string {
	return fmt.Sprintf("%.7f, %.7f", c.Lat, c.Lon)
}
