package geoconv

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// PolarStereographic converts between geodetic coordinates and polar
// stereographic easting/northing. It backs the UPS grid used by MGRS at
// polar latitudes.
type PolarStereographic struct {
	ellipsoid

	es        float64 // first eccentricity
	esOverTwo float64
	southern  bool // projection centered on the south pole
	tc        float64
	k90       float64
	aMc       float64 // semi-major axis * mc
	twoA      float64 // 2 * semi-major axis

	standardParallel float64 // latitude of origin in radians, magnitude
	centralMeridian  float64 // longitude of origin in radians
	falseEasting     float64
	falseNorthing    float64
	scaleFactor      float64

	deltaEasting  float64
	deltaNorthing float64
}

// NewPolarStereographic constructs a polar stereographic projection from a
// standard parallel. Angles are in radians.
func NewPolarStereographic(semiMajorAxis, flattening, centralMeridian,
	standardParallel, falseEasting, falseNorthing float64) (*PolarStereographic, error) {

	p := &PolarStereographic{
		ellipsoid:     ellipsoid{semiMajorAxis: semiMajorAxis, flattening: flattening},
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
		scaleFactor:   1.0,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if standardParallel < -math.Pi/2 || standardParallel > math.Pi/2 {
		return nil, errors.New("origin latitude out of range")
	}
	if centralMeridian < -math.Pi || centralMeridian > 2*math.Pi {
		return nil, errors.New("origin longitude out of range")
	}

	slat := math.Sin(math.Abs(standardParallel))
	onePlusEs := 1.0 + p.eccentricity()
	oneMinusEs := 1.0 - p.eccentricity()
	k90 := math.Sqrt(math.Pow(onePlusEs, onePlusEs) * math.Pow(oneMinusEs, oneMinusEs))
	onePlusEsSlat := 1.0 + p.eccentricity()*slat
	oneMinusEsSlat := 1.0 - p.eccentricity()*slat
	p.scaleFactor = ((1 + slat) / 2) * (k90 /
		math.Sqrt(math.Pow(onePlusEsSlat, onePlusEs)*math.Pow(oneMinusEsSlat, oneMinusEs)))

	if err := p.init(centralMeridian, standardParallel); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPolarStereographicScaleFactor constructs a polar stereographic
// projection from a scale factor at the pole, solving iteratively for the
// equivalent standard parallel.
func NewPolarStereographicScaleFactor(semiMajorAxis, flattening, centralMeridian,
	scaleFactor float64, hemisphere Hemisphere,
	falseEasting, falseNorthing float64) (*PolarStereographic, error) {

	p := &PolarStereographic{
		ellipsoid:     ellipsoid{semiMajorAxis: semiMajorAxis, flattening: flattening},
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
		scaleFactor:   scaleFactor,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	const minScaleFactor, maxScaleFactor = 0.1, 3.0
	if scaleFactor < minScaleFactor || scaleFactor > maxScaleFactor {
		return nil, errors.New("scale factor out of range")
	}
	if centralMeridian < -math.Pi || centralMeridian > 2*math.Pi {
		return nil, errors.New("origin longitude out of range")
	}
	if hemisphere != HemisphereNorth && hemisphere != HemisphereSouth {
		return nil, errors.New("hemisphere out of range")
	}

	es := p.eccentricity()
	onePlusEs := 1.0 + es
	oneMinusEs := 1.0 - es
	k90 := math.Sqrt(math.Pow(onePlusEs, onePlusEs) * math.Pow(oneMinusEs, oneMinusEs))

	// iterate sin(standard parallel) to match the requested scale factor
	const tolerance = 1.0e-15
	count := 30
	sk := 0.0
	skPlus1 := -1 + 2*scaleFactor
	for math.Abs(skPlus1-sk) > tolerance && count != 0 {
		sk = skPlus1
		onePlusEsSk := 1.0 + es*sk
		oneMinusEsSk := 1.0 - es*sk
		skPlus1 = (2*scaleFactor*
			math.Sqrt(math.Pow(onePlusEsSk, onePlusEs)*math.Pow(oneMinusEsSk, oneMinusEs)))/k90 - 1
		count--
	}
	if count == 0 || skPlus1 < -1.0 || skPlus1 > 1.0 {
		return nil, errors.New("origin latitude error")
	}

	standardParallel := math.Asin(skPlus1)
	if hemisphere == HemisphereSouth {
		standardParallel = -standardParallel
	}

	if err := p.init(centralMeridian, standardParallel); err != nil {
		return nil, err
	}
	return p, nil
}

// init derives the projection constants shared by both constructors and
// computes the valid easting/northing envelope.
func (p *PolarStereographic) init(centralMeridian, standardParallel float64) error {
	p.twoA = 2.0 * p.semiMajorAxis
	p.es = p.eccentricity()
	p.esOverTwo = p.es / 2.0

	if centralMeridian > math.Pi {
		centralMeridian -= 2 * math.Pi
	}
	if standardParallel < 0 {
		p.southern = true
		p.standardParallel = -standardParallel
		p.centralMeridian = -centralMeridian
	} else {
		p.southern = false
		p.standardParallel = standardParallel
		p.centralMeridian = centralMeridian
	}

	onePlusEs := 1.0 + p.es
	oneMinusEs := 1.0 - p.es
	p.k90 = math.Sqrt(math.Pow(onePlusEs, onePlusEs) * math.Pow(oneMinusEs, oneMinusEs))

	p.tc = 1.0
	p.aMc = p.semiMajorAxis
	if math.Abs(p.standardParallel-math.Pi/2) > 1.0e-10 {
		sinolat := math.Sin(p.standardParallel)
		essin := p.es * sinolat
		cosolat := math.Cos(p.standardParallel)
		mc := cosolat / math.Sqrt(1.0-essin*essin)
		p.aMc = p.semiMajorAxis * mc
		p.tc = math.Tan(math.Pi/4-p.standardParallel/2.0) / p.polarPow(essin)
	}

	// radius at the equator on the central meridian bounds the grid
	equator := s2.LatLng{Lng: s1.Angle(centralMeridian), Lat: 0}
	coords, err := p.FromGeodetic(equator)
	if err != nil {
		return err
	}
	p.deltaNorthing = coords.Northing
	if p.falseNorthing != 0 {
		p.deltaNorthing -= p.falseNorthing
	}
	if p.deltaNorthing < 0 {
		p.deltaNorthing = -p.deltaNorthing
	}
	p.deltaNorthing *= 1.01
	p.deltaEasting = p.deltaNorthing
	return nil
}

// FromGeodetic converts geodetic coordinates to polar stereographic
// easting/northing.
func (p *PolarStereographic) FromGeodetic(geodetic s2.LatLng) (GridCoords, error) {
	longitude := geodetic.Lng.Radians()
	latitude := geodetic.Lat.Radians()

	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return GridCoords{}, errors.New("latitude out of range")
	}
	if (latitude < 0 && !p.southern) || (latitude > 0 && p.southern) {
		return GridCoords{}, errors.New("latitude and origin latitude in different hemispheres")
	}
	if longitude < -math.Pi || longitude > 2*math.Pi {
		return GridCoords{}, errors.New("longitude out of range")
	}

	if math.Abs(math.Abs(latitude)-math.Pi/2) < 1.0e-10 {
		return GridCoords{Easting: p.falseEasting, Northing: p.falseNorthing}, nil
	}

	if p.southern {
		longitude = -longitude
		latitude = -latitude
	}
	dlam := longitude - p.centralMeridian
	if dlam > math.Pi {
		dlam -= 2 * math.Pi
	}
	if dlam < -math.Pi {
		dlam += 2 * math.Pi
	}

	essin := p.es * math.Sin(latitude)
	t := math.Tan(math.Pi/4-latitude/2.0) / p.polarPow(essin)

	var rho float64
	if math.Abs(p.standardParallel-math.Pi/2) > 1.0e-10 {
		rho = p.aMc * t / p.tc
	} else {
		rho = p.twoA * t / p.k90
	}

	if p.southern {
		return GridCoords{
			Easting:  -(rho*math.Sin(dlam) - p.falseEasting),
			Northing: rho*math.Cos(dlam) + p.falseNorthing,
		}, nil
	}
	return GridCoords{
		Easting:  rho*math.Sin(dlam) + p.falseEasting,
		Northing: -rho*math.Cos(dlam) + p.falseNorthing,
	}, nil
}

// ToGeodetic converts polar stereographic easting/northing back to geodetic
// coordinates.
func (p *PolarStereographic) ToGeodetic(coords GridCoords) (s2.LatLng, error) {
	easting := coords.Easting
	northing := coords.Northing

	if easting < p.falseEasting-p.deltaEasting ||
		easting > p.falseEasting+p.deltaEasting {
		return s2.LatLng{}, errors.New("easting out of range")
	}
	if northing < p.falseNorthing-p.deltaNorthing ||
		northing > p.falseNorthing+p.deltaNorthing {
		return s2.LatLng{}, errors.New("northing out of range")
	}

	dy := northing - p.falseNorthing
	dx := easting - p.falseEasting

	rho := math.Sqrt(dx*dx + dy*dy)
	deltaRadius := math.Sqrt(p.deltaEasting*p.deltaEasting + p.deltaNorthing*p.deltaNorthing)
	if rho > deltaRadius {
		return s2.LatLng{}, errors.New("point is outside of projection area")
	}

	var latitude, longitude float64
	if dy == 0 && dx == 0 {
		latitude = math.Pi / 2
		longitude = p.centralMeridian
	} else {
		if p.southern {
			dy = -dy
			dx = -dx
		}

		var t float64
		if math.Abs(p.standardParallel-math.Pi/2) > 1.0e-10 {
			t = rho * p.tc / p.aMc
		} else {
			t = rho * p.k90 / p.twoA
		}
		phi := math.Pi/2 - 2.0*math.Atan(t)
		prev := 0.0
		for math.Abs(phi-prev) > 1.0e-10 {
			prev = phi
			essin := p.es * math.Sin(phi)
			phi = math.Pi/2 - 2.0*math.Atan(t*p.polarPow(essin))
		}
		latitude = phi
		longitude = p.centralMeridian + math.Atan2(dx, -dy)

		if longitude > math.Pi {
			longitude -= 2 * math.Pi
		} else if longitude < -math.Pi {
			longitude += 2 * math.Pi
		}

		// force distorted values onto the valid boundary
		if latitude > math.Pi/2 {
			latitude = math.Pi / 2
		} else if latitude < -math.Pi/2 {
			latitude = -math.Pi / 2
		}
		if longitude > math.Pi {
			longitude = math.Pi
		} else if longitude < -math.Pi {
			longitude = -math.Pi
		}
	}
	if p.southern {
		latitude = -latitude
		longitude = -longitude
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}

func (p *PolarStereographic) polarPow(esSin float64) float64 {
	return math.Pow((1.0-esSin)/(1.0+esSin), p.esOverTwo)
}
