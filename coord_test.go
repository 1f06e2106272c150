package geoconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordgeo/geoconv"
)

func TestCoordLatLngBridge(t *testing.T) {
	c := geoconv.NewCoord(48.5863964, 36.5291404)
	back := geoconv.CoordFromLatLng(c.LatLng())
	assert.InDelta(t, c.Lat, back.Lat, 1e-12)
	assert.InDelta(t, c.Lon, back.Lon, 1e-12)
}

func TestCoordUTMRoundTrip(t *testing.T) {
	c := geoconv.NewCoord(48.5863964, 36.5291404)
	coords, err := c.UTM()
	require.NoError(t, err)
	assert.Equal(t, 37, coords.Zone)
	assert.Equal(t, geoconv.HemisphereNorth, coords.Hemisphere)

	back, err := geoconv.CoordFromUTM(coords)
	require.NoError(t, err)
	assert.InDelta(t, c.Lat, back.Lat, 1e-9)
	assert.InDelta(t, c.Lon, back.Lon, 1e-9)
}

func TestCoordMGRSRoundTrip(t *testing.T) {
	c := geoconv.NewCoord(48.5863964, 36.5291404)
	mgrs, err := c.MGRS(5)
	require.NoError(t, err)
	require.Len(t, mgrs, 15)

	back, err := geoconv.CoordFromMGRS(mgrs)
	require.NoError(t, err)
	// precision 5 addresses a one meter cell
	assert.InDelta(t, c.Lat, back.Lat, 2e-5)
	assert.InDelta(t, c.Lon, back.Lon, 2e-5)
}

func TestCoordDMS(t *testing.T) {
	c := geoconv.NewCoord(-2.3901266, 18.5498764)
	d := c.DMS()
	assert.Equal(t, -2, d.Lat.Degrees)
	assert.Equal(t, 18, d.Lon.Degrees)
}

func TestCoordString(t *testing.T) {
	assert.Equal(t, "48.5863964, -36.5291404", geoconv.NewCoord(48.5863964, -36.5291404).String())
}
