package geoconv_test

import (
	"testing"

	"github.com/nordgeo/geoconv"
)

func TestUPSRoundTrip(t *testing.T) {
	ups, err := geoconv.NewUPSConverter(geoconv.WGS84SemiMajorAxis, geoconv.WGS84Flattening)
	if err != nil {
		t.Fatalf("error creating UPS converter: %s", err)
	}
	const latInc = 0.5
	const lngInc = 1.0
	const tolerance = 1e-8 // radians
	caps := [][2]float64{
		{83.5, 90},
		{-90, -79.5},
	}
	for _, polar := range caps {
		for lat := polar[0]; lat <= polar[1]; lat += latInc {
			for lng := -180.0; lng < 180; lng += lngInc {
				c := geoconv.NewCoord(lat, lng)
				pc, err := ups.FromCoord(c)
				if err != nil {
					t.Fatalf("expected no error converting %s, got %s", c, err)
				}
				back, err := ups.ToCoord(pc)
				if err != nil {
					t.Fatalf("expected no error in round trip, got one at %s (%s)", c, err)
				}
				if c.LatLng().Distance(back.LatLng()) > tolerance {
					t.Fatalf("expected %s, got %s", c, back)
				}
			}
		}
	}
}

func TestUPSInvalidInputs(t *testing.T) {
	if _, err := geoconv.DefaultUPS.FromCoord(geoconv.NewCoord(45, 10)); err == nil {
		t.Errorf("expected an error for a latitude outside the polar caps")
	}
	if _, err := geoconv.DefaultUPS.ToCoord(geoconv.UPSCoords{
		Hemisphere: geoconv.HemisphereInvalid,
		Easting:    2000000,
		Northing:   2000000,
	}); err == nil {
		t.Errorf("expected an error for an invalid hemisphere")
	}
	if _, err := geoconv.DefaultUPS.ToCoord(geoconv.UPSCoords{
		Hemisphere: geoconv.HemisphereNorth,
		Easting:    5000000,
		Northing:   2000000,
	}); err == nil {
		t.Errorf("expected an error for an easting beyond the grid")
	}
}
