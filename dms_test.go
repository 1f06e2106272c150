package geoconv_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordgeo/geoconv"
)

func TestNewDMSAngle(t *testing.T) {
	t.Run("in range values pass through", func(t *testing.T) {
		a := geoconv.NewDMSAngle(49, 36, 27.40)
		assert.Equal(t, 49, a.Degrees)
		assert.Equal(t, uint(36), a.Minutes)
		assert.Equal(t, 27.40, a.Seconds)
	})
	t.Run("negative degrees are not normalized", func(t *testing.T) {
		a := geoconv.NewDMSAngle(-1, 31, 57.30)
		assert.Equal(t, -1, a.Degrees)
		assert.Equal(t, uint(31), a.Minutes)
		assert.Equal(t, 57.30, a.Seconds)
	})
	t.Run("seconds carry into minutes", func(t *testing.T) {
		a := geoconv.NewDMSAngle(10, 20, 125.5)
		assert.Equal(t, 10, a.Degrees)
		assert.Equal(t, uint(22), a.Minutes)
		assert.InDelta(t, 5.5, a.Seconds, 1e-9)
	})
	t.Run("minutes carry into degrees", func(t *testing.T) {
		a := geoconv.NewDMSAngle(10, 130, 10)
		assert.Equal(t, 12, a.Degrees)
		assert.Equal(t, uint(10), a.Minutes)
	})
	t.Run("carry cascades through both fields", func(t *testing.T) {
		// 90 degrees expressed entirely in seconds
		a := geoconv.NewDMSAngle(0, 0, 90*3600)
		assert.Equal(t, 90, a.Degrees)
		assert.Equal(t, uint(0), a.Minutes)
		assert.InDelta(t, 0, a.Seconds, 1e-9)
	})
	t.Run("exactly sixty is not carried", func(t *testing.T) {
		a := geoconv.NewDMSAngle(1, 60, 60.0)
		assert.Equal(t, 1, a.Degrees)
		assert.Equal(t, uint(60), a.Minutes)
		assert.Equal(t, 60.0, a.Seconds)
	})
	t.Run("degrees are unconstrained", func(t *testing.T) {
		a := geoconv.NewDMSAngle(723, 0, 0)
		assert.Equal(t, 723, a.Degrees)
	})
	t.Run("negative seconds pass through", func(t *testing.T) {
		a := geoconv.NewDMSAngle(0, 0, -12.5)
		assert.Equal(t, -12.5, a.Seconds)
	})
}

func TestNewDMS(t *testing.T) {
	t.Run("in range pair is preserved verbatim", func(t *testing.T) {
		lat := geoconv.NewDMSAngle(49, 36, 27.40)
		lon := geoconv.NewDMSAngle(37, 19, 50.14)
		d := geoconv.NewDMS(lat, lon)
		assert.Equal(t, lat, d.Lat)
		assert.Equal(t, lon, d.Lon)
	})
	t.Run("latitude degrees reduced modulo 90", func(t *testing.T) {
		d := geoconv.NewDMS(geoconv.NewDMSAngle(91, 30, 0), geoconv.NewDMSAngle(0, 0, 0))
		assert.Equal(t, 1, d.Lat.Degrees)
		assert.Equal(t, uint(30), d.Lat.Minutes)

		d = geoconv.NewDMS(geoconv.NewDMSAngle(-100, 0, 0), geoconv.NewDMSAngle(0, 0, 0))
		assert.Equal(t, -10, d.Lat.Degrees)
	})
	t.Run("longitude degrees reduced modulo 180", func(t *testing.T) {
		d := geoconv.NewDMS(geoconv.NewDMSAngle(0, 0, 0), geoconv.NewDMSAngle(200, 15, 5))
		assert.Equal(t, 20, d.Lon.Degrees)
		assert.Equal(t, uint(15), d.Lon.Minutes)

		d = geoconv.NewDMS(geoconv.NewDMSAngle(0, 0, 0), geoconv.NewDMSAngle(-190, 0, 0))
		assert.Equal(t, -10, d.Lon.Degrees)
	})
	t.Run("boundary degrees pass through", func(t *testing.T) {
		for _, dd := range []int{-90, 90} {
			d := geoconv.NewDMS(geoconv.NewDMSAngle(dd, 0, 0), geoconv.NewDMSAngle(0, 0, 0))
			assert.Equal(t, dd, d.Lat.Degrees)
		}
		for _, dd := range []int{-180, 180} {
			d := geoconv.NewDMS(geoconv.NewDMSAngle(0, 0, 0), geoconv.NewDMSAngle(dd, 0, 0))
			assert.Equal(t, dd, d.Lon.Degrees)
		}
	})
}

func TestDMSFromCoord(t *testing.T) {
	d := geoconv.DMSFromCoord(geoconv.NewCoord(48.5863964, 36.5291404))
	assert.Equal(t, 48, d.Lat.Degrees)
	assert.Equal(t, uint(35), d.Lat.Minutes)
	assert.InDelta(t, 11.03, d.Lat.Seconds, 0.01)
	assert.Equal(t, 36, d.Lon.Degrees)
	assert.Equal(t, uint(31), d.Lon.Minutes)
	assert.InDelta(t, 44.91, d.Lon.Seconds, 0.01)
}

func TestDMSFromCoordNegative(t *testing.T) {
	// the degree field carries the sign; minutes and seconds stay
	// non-negative magnitudes
	d := geoconv.DMSFromCoord(geoconv.NewCoord(-2.3901266, 18.5498764))
	assert.Equal(t, -2, d.Lat.Degrees)
	assert.Equal(t, uint(23), d.Lat.Minutes)
	assert.InDelta(t, 24.46, d.Lat.Seconds, 0.01)
	assert.Equal(t, 18, d.Lon.Degrees)
	assert.Equal(t, uint(32), d.Lon.Minutes)
	assert.InDelta(t, 59.56, d.Lon.Seconds, 0.01)
}

func TestDMSFromCoordSubDegreeNegative(t *testing.T) {
	// with nothing in the degree field to carry the sign, the weight moves
	// onto a signed seconds field
	d := geoconv.DMSFromCoord(geoconv.NewCoord(-0.5, -0.25))
	assert.Equal(t, 0, d.Lat.Degrees)
	assert.Equal(t, uint(0), d.Lat.Minutes)
	assert.InDelta(t, -1800.0, d.Lat.Seconds, 1e-9)
	assert.Equal(t, 0, d.Lon.Degrees)
	assert.Equal(t, uint(0), d.Lon.Minutes)
	assert.InDelta(t, -900.0, d.Lon.Seconds, 1e-9)

	back := d.Coord()
	assert.InDelta(t, -0.5, back.Lat, 0.01/3600)
	assert.InDelta(t, -0.25, back.Lon, 0.01/3600)
}

func TestDMSToCoord(t *testing.T) {
	d := geoconv.NewDMS(geoconv.NewDMSAngle(-2, 23, 24.46), geoconv.NewDMSAngle(18, 32, 59.56))
	c := d.Coord()
	assert.InDelta(t, -2.3901266, c.Lat, 0.01)
	assert.InDelta(t, 18.5498764, c.Lon, 0.01)
}

func TestDMSCoordRoundTrip(t *testing.T) {
	// 0.01 seconds of arc in degrees
	const tolerance = 0.01 / 3600
	check := func(lat, lon float64) {
		c := geoconv.NewCoord(lat, lon)
		back := geoconv.DMSFromCoord(c).Coord()
		assert.InDelta(t, lat, back.Lat, tolerance, "lat %v lon %v", lat, lon)
		assert.InDelta(t, lon, back.Lon, tolerance, "lat %v lon %v", lat, lon)
	}
	for lat := -90.0; lat <= 90.0; lat += 7.3 {
		for lon := -180.0; lon <= 180.0; lon += 11.9 {
			check(lat, lon)
		}
	}
	// sub-degree values on both sides of zero
	for _, v := range []float64{-1, -0.9999, -0.5, -0.25, -0.0001, 0.0001, 0.75} {
		check(v, v)
	}
}

func TestDMSString(t *testing.T) {
	d := geoconv.DMSFromCoord(geoconv.NewCoord(48.5863964, -36.5291404))
	s := d.String()
	assert.Contains(t, s, "N, ")
	assert.True(t, strings.HasSuffix(s, "W"), "expected %q to end in W", s)

	d = geoconv.DMSFromCoord(geoconv.NewCoord(-48.5863964, 36.5291404))
	s = d.String()
	assert.Contains(t, s, "S, ")
	assert.True(t, strings.HasSuffix(s, "E"), "expected %q to end in E", s)

	// zero renders as the positive hemisphere
	s = geoconv.NewDMS(geoconv.DMSAngle{}, geoconv.DMSAngle{}).String()
	assert.Equal(t, `0°0'0"N, 0°0'0"E`, s)
}

func TestDMSAngleString(t *testing.T) {
	assert.Equal(t, `49°36'27.4"`, geoconv.NewDMSAngle(49, 36, 27.40).String())
	// the sign is dropped from the rendered triple
	assert.Equal(t, `1°31'57.3"`, geoconv.NewDMSAngle(-1, 31, 57.30).String())
}

func TestDMSAngleDecimal(t *testing.T) {
	assert.InDelta(t, 49.6076111, geoconv.NewDMSAngle(49, 36, 27.40).Decimal(), 1e-6)
	assert.InDelta(t, -1.5325833, geoconv.NewDMSAngle(-1, 31, 57.30).Decimal(), 1e-6)
}

func TestDMSFromUTMTransitive(t *testing.T) {
	coords := geoconv.UTMCoords{
		Zone:       37,
		Hemisphere: geoconv.HemisphereNorth,
		Easting:    455000,
		Northing:   5382000,
	}
	direct, err := geoconv.DMSFromUTM(coords)
	require.NoError(t, err)

	c, err := geoconv.CoordFromUTM(coords)
	require.NoError(t, err)
	viaCoord := geoconv.DMSFromCoord(c)

	const tolerance = 0.01 / 3600
	assert.InDelta(t, viaCoord.Coord().Lat, direct.Coord().Lat, tolerance)
	assert.InDelta(t, viaCoord.Coord().Lon, direct.Coord().Lon, tolerance)
}

func TestDMSFromMGRSTransitive(t *testing.T) {
	const mgrs = "16SGC3855124838"
	direct, err := geoconv.DMSFromMGRS(mgrs)
	require.NoError(t, err)

	c, err := geoconv.CoordFromMGRS(mgrs)
	require.NoError(t, err)
	viaCoord := geoconv.DMSFromCoord(c)

	const tolerance = 0.01 / 3600
	assert.InDelta(t, viaCoord.Coord().Lat, direct.Coord().Lat, tolerance)
	assert.InDelta(t, viaCoord.Coord().Lon, direct.Coord().Lon, tolerance)
}

func TestDMSFromUTMInvalid(t *testing.T) {
	_, err := geoconv.DMSFromUTM(geoconv.UTMCoords{Zone: 61})
	require.Error(t, err)

	_, err = geoconv.DMSFromMGRS("not an mgrs string")
	require.Error(t, err)
}

func TestDMSConstructionIsTotal(t *testing.T) {
	// pathological inputs still construct; nothing panics or errors
	assert.NotPanics(t, func() {
		geoconv.NewDMS(
			geoconv.NewDMSAngle(math.MaxInt32, 5000, 1e7),
			geoconv.NewDMSAngle(math.MinInt32, 0, -1e7),
		)
	})
}
