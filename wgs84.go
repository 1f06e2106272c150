package geoconv

import "fmt"

// WGS84 ellipsoid parameters.
const (
	WGS84SemiMajorAxis = 6378137.0
	WGS84Flattening    = 1 / 298.257223563
	wgs84EllipsoidCode = "WE"
)

// DefaultMGRS is a WGS84 ellipsoid based MGRS converter.
var DefaultMGRS *MGRSConverter

// DefaultUTM is a WGS84 ellipsoid based UTM converter.
var DefaultUTM *UTMConverter

// DefaultUPS is a WGS84 ellipsoid based UPS converter.
var DefaultUPS *UPSConverter

func init() {
	var err error
	DefaultMGRS, err = NewMGRSConverter(WGS84SemiMajorAxis, WGS84Flattening, wgs84EllipsoidCode)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 MGRS converter: %s", err))
	}
	DefaultUTM, err = NewUTMConverter()
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UTM converter: %s", err))
	}
	DefaultUPS, err = NewUPSConverter(WGS84SemiMajorAxis, WGS84Flattening)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 UPS converter: %s", err))
	}
}
