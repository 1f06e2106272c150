package geoconv_test

import (
	"testing"

	"github.com/nordgeo/geoconv"
)

func TestUTMRoundTrip(t *testing.T) {
	utm, err := geoconv.NewUTMConverter()
	if err != nil {
		t.Fatalf("error creating UTM converter: %s", err)
	}
	const latInc = 0.5
	const lngInc = 0.5
	for lng := -190.0; lng < 190; lng += lngInc {
		for lat := -100.0; lat < 100; lat += latInc {
			c := geoconv.NewCoord(lat, lng)
			coords, err := utm.FromCoord(c, 0)
			if err != nil {
				continue
			}
			back, err := utm.ToCoord(coords)
			if err != nil {
				t.Fatalf("expected no error in round trip, got one at %s (%s)", c, err)
			}
			if c.LatLng().Distance(back.LatLng()) > 1e-8 {
				t.Fatalf("expected %s, got %s", c, back)
			}
		}
	}
}

func TestUTMZoneOverride(t *testing.T) {
	c := geoconv.NewCoord(48.5863964, 36.5291404)
	coords, err := geoconv.DefaultUTM.FromCoord(c, 36)
	if err != nil {
		t.Fatalf("expected override into adjacent zone to work: %s", err)
	}
	if coords.Zone != 36 {
		t.Fatalf("expected zone 36, got %d", coords.Zone)
	}

	// overrides are limited to one zone of the natural zone
	if _, err := geoconv.DefaultUTM.FromCoord(c, 12); err == nil {
		t.Fatalf("expected an error overriding to a distant zone")
	}
}

func TestUTMInvalidInputs(t *testing.T) {
	if _, err := geoconv.DefaultUTM.FromCoord(geoconv.NewCoord(89, 0), 0); err == nil {
		t.Fatalf("expected an error for a polar latitude")
	}
	if _, err := geoconv.DefaultUTM.ToCoord(geoconv.UTMCoords{Zone: 0}); err == nil {
		t.Fatalf("expected an error for zone 0")
	}
	if _, err := geoconv.DefaultUTM.ToCoord(geoconv.UTMCoords{
		Zone:       30,
		Hemisphere: geoconv.HemisphereNorth,
		Easting:    50000, // below the grid minimum
		Northing:   500000,
	}); err == nil {
		t.Fatalf("expected an error for an easting off the grid")
	}
}
