package geoconv

import (
	"fmt"
	"math"
)

// DMSAngle is an angle expressed as a degree, minute, second triple.
// The sign of the angle is carried by Degrees; Minutes and Seconds are
// always non-negative magnitudes within the degree.
type DMSAngle struct {
	Degrees int
	Minutes uint
	Seconds float64
}

// NewDMSAngle constructs a DMSAngle, carrying excess weight in the lower
// fields upward: seconds beyond 60 are promoted into minutes, minutes
// beyond 60 into degrees. The comparison is strict, so a field holding
// exactly 60 is left untouched, and negative seconds pass through
// unnormalized. Construction never fails.
func NewDMSAngle(degrees int, minutes uint, seconds float64) DMSAngle {
	if seconds > 60 {
		minutes += uint(seconds / 60)
		seconds = math.Mod(seconds, 60)
	}
	if minutes > 60 {
		degrees += int(minutes / 60)
		minutes %= 60
	}
	return DMSAngle{Degrees: degrees, Minutes: minutes, Seconds: seconds}
}

// DMSAngleFromDegrees converts a signed decimal-degree value to a DMSAngle.
// The magnitude is fed through the carry cascade as raw seconds and the
// sign is restored on the degree field afterwards. A negative value whose
// magnitude is below one degree has nothing to negate there, so its weight
// is folded back into a signed seconds field instead, which Decimal
// evaluates with the right sign.
func DMSAngleFromDegrees(degrees float64) DMSAngle {
	a := NewDMSAngle(0, 0, math.Abs(degrees)*3600)
	if degrees < 0 {
		if a.Degrees == 0 {
			a.Seconds = -(float64(a.Minutes)*60 + a.Seconds)
			a.Minutes = 0
		} else {
			a.Degrees = -a.Degrees
		}
	}
	return a
}

// Decimal returns the angle in signed decimal degrees.
func (a DMSAngle) Decimal() float64 {
	d := a.Degrees
	if d < 0 {
		d = -d
	}
	deg := float64(d) + float64(a.Minutes)/60 + a.Seconds/3600
	if a.Degrees < 0 {
		return -deg
	}
	return deg
}

// String renders the triple as |dd|°mm'ss". The sign is dropped here; DMS
// rendering reintroduces it as a hemisphere letter.
func (a DMSAngle) String() string {
	d := a.Degrees
	if d < 0 {
		d = -d
	}
	return fmt.Sprintf("%d°%d'%v\"", d, a.Minutes, a.Seconds)
}

// DMS is a latitude/longitude pair in degree, minute, second form.
type DMS struct {
	Lat DMSAngle
	Lon DMSAngle
}

// NewDMS constructs a DMS pair. A latitude degree field outside [-90, 90]
// is reduced modulo 90, a longitude degree field outside [-180, 180]
// modulo 180, with the remainder keeping the sign of the input. The
// boundaries themselves pass through, and minutes and seconds are kept
// as given.
func NewDMS(lat, lon DMSAngle) DMS {
	if lat.Degrees < -90 || lat.Degrees > 90 {
		lat.Degrees %= 90
	}
	if lon.Degrees < -180 || lon.Degrees > 180 {
		lon.Degrees %= 180
	}
	return DMS{Lat: lat, Lon: lon}
}

// DMSFromCoord converts decimal-degree coordinates to DMS form. Each
// component is multiplied by 3600 and cascaded from the seconds field up.
func DMSFromCoord(c Coord) DMS {
	return NewDMS(DMSAngleFromDegrees(c.Lat), DMSAngleFromDegrees(c.Lon))
}

// DMSFromUTM converts UTM coordinates to DMS form by way of the geodetic
// coordinate, using the WGS84 converter.
func DMSFromUTM(coords UTMCoords) (DMS, error) {
	c, err := CoordFromUTM(coords)
	if err != nil {
		return DMS{}, err
	}
	return DMSFromCoord(c), nil
}

// DMSFromMGRS converts an MGRS coordinate string to DMS form by way of the
// geodetic coordinate, using the WGS84 converter.
func DMSFromMGRS(mgrs string) (DMS, error) {
	c, err := CoordFromMGRS(mgrs)
	if err != nil {
		return DMS{}, err
	}
	return DMSFromCoord(c), nil
}

// Coord returns the pair as decimal-degree coordinates.
func (d DMS) Coord() Coord {
	return Coord{Lat: d.Lat.Decimal(), Lon: d.Lon.Decimal()}
}

// String renders the pair with hemisphere letters, e.g.
// 48°35'11.03"N, 36°31'44.91"E. A non-negative degree field selects N/E.
func (d DMS) String() string {
	ns := "N"
	if d.Lat.Degrees < 0 {
		ns = "S"
	}
	ew := "E"
	if d.Lon.Degrees < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%v%s, %v%s", d.Lat, ns, d.Lon, ew)
}
