package geoconv

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// tmTerms is the number of series terms carried by the projection.
const tmTerms = 6

// TransverseMercator converts between geodetic coordinates and transverse
// Mercator easting/northing, using the exact conformal-latitude series
// formulation (C. Rollins, 2006). Series coefficients are generated from
// Helmert's n for the configured ellipsoid.
type TransverseMercator struct {
	ellipsoid

	eps     float64 // first eccentricity
	k0R4    float64 // scale factor * isoperimetric radius
	k0R4Inv float64

	aCoeff [tmTerms]float64 // omega as a trig series in chi
	bCoeff [tmTerms]float64 // chi as a trig series in omega

	originLat     float64 // latitude of origin in radians
	originLon     float64 // central meridian in radians
	falseEasting  float64
	falseNorthing float64
	scaleFactor   float64

	// grid offset of the projection origin, fixed at construction
	originShift GridCoords

	deltaEasting  float64
	deltaNorthing float64
}

// NewTransverseMercator constructs a transverse Mercator projection for the
// given ellipsoid and projection parameters. Angles are in radians.
func NewTransverseMercator(semiMajorAxis, flattening, centralMeridian,
	latitudeOfTrueScale, falseEasting, falseNorthing, scaleFactor float64) (*TransverseMercator, error) {

	t := &TransverseMercator{
		ellipsoid:     ellipsoid{semiMajorAxis: semiMajorAxis, flattening: flattening},
		originLat:     latitudeOfTrueScale,
		originLon:     centralMeridian,
		falseEasting:  falseEasting,
		falseNorthing: falseNorthing,
		scaleFactor:   scaleFactor,
		deltaEasting:  20000000.0,
		deltaNorthing: 10000000.0,
	}

	if semiMajorAxis <= 0 {
		return nil, errors.New("semi-major axis must be greater than zero")
	}
	if 1/flattening < 150 {
		return nil, errors.New("inverse flattening out of range")
	}
	if latitudeOfTrueScale < -math.Pi/2 || latitudeOfTrueScale > math.Pi/2 {
		return nil, errors.New("latitude of true scale out of range")
	}
	if centralMeridian < -math.Pi || centralMeridian > 2*math.Pi {
		return nil, errors.New("central meridian out of range")
	}
	const minScaleFactor, maxScaleFactor = 0.1, 10.0
	if scaleFactor < minScaleFactor || scaleFactor > maxScaleFactor {
		return nil, errors.New("scale factor out of range")
	}

	if t.originLon > math.Pi {
		t.originLon -= 2 * math.Pi
	}

	t.eps = t.eccentricity()

	n := flattening / (2 - flattening) // Helmert's n = (a-b)/(a+b)
	r4OverA := tmSeriesCoefficients(n, &t.aCoeff, &t.bCoeff)
	t.k0R4 = r4OverA * scaleFactor * semiMajorAxis
	t.k0R4Inv = 1 / t.k0R4

	// The projection origin may sit away from (0,0) on the grid; fold its
	// offset into the false easting/northing applied per conversion.
	var err error
	t.originShift.Easting, t.originShift.Northing, err = t.project(t.originLat, t.originLon)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// tmSeriesCoefficients generates the series coefficients for the forward
// (aCoeff) and inverse (bCoeff) mappings as polynomials in Helmert's n,
// and returns the ratio R4/a of the meridional isoperimetric radius to the
// semi-major axis. The expansions are carried through n^8 (n^10 for R4/a),
// far below float64 precision for any geodetic ellipsoid.
func tmSeriesCoefficients(n float64, aCoeff, bCoeff *[tmTerms]float64) (r4OverA float64) {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n
	n7 := n6 * n
	n8 := n7 * n

	aCoeff[0] = n/2 - 2*n2/3 + 5*n3/16 + 41*n4/180 - 127*n5/288 +
		7891*n6/37800 + 72161*n7/387072 - 18975107*n8/50803200
	aCoeff[1] = 13*n2/48 - 3*n3/5 + 557*n4/1440 + 281*n5/630 -
		1983433*n6/1935360 + 13769*n7/28800 + 148003883*n8/174182400
	aCoeff[2] = 61*n3/240 - 103*n4/140 + 15061*n5/26880 +
		167603*n6/181440 - 67102379*n7/29030400 + 79682431*n8/79833600
	aCoeff[3] = 49561*n4/161280 - 179*n5/168 + 6601661*n6/7257600 +
		97445*n7/49896 - 40176129013*n8/7664025600
	aCoeff[4] = 34729*n5/80640 - 3418889*n6/1995840 +
		14644087*n7/9123840 + 2605413599*n8/622702080
	aCoeff[5] = 212378941*n6/319334400 - 30705481*n7/10378368 +
		175214326799*n8/58118860800

	bCoeff[0] = -n/2 + 2*n2/3 - 37*n3/96 + n4/360 + 81*n5/512 -
		96199*n6/604800 + 5406467*n7/38707200 - 7944359*n8/67737600
	bCoeff[1] = -n2/48 - n3/15 + 437*n4/1440 - 46*n5/105 +
		1118711*n6/3870720 - 51841*n7/1209600 - 24749483*n8/348364800
	bCoeff[2] = -17*n3/480 + 37*n4/840 + 209*n5/4480 - 5569*n6/90720 -
		9261899*n7/58060800 + 6457463*n8/17740800
	bCoeff[3] = -4397*n4/161280 + 11*n5/504 + 830251*n6/7257600 -
		466511*n7/2494800 - 324154477*n8/7664025600
	bCoeff[4] = -4583*n5/161280 + 108847*n6/3991680 +
		8005831*n7/63866880 - 22894433*n8/124540416
	bCoeff[5] = -20648693*n6/638668800 + 16363163*n7/518918400 +
		2204645983*n8/12915302400

	n10 := n8 * n2
	return (1 + n2/4 + n4/64 + n6/256 + 25*n8/16384 + 49*n10/65536) / (1 + n)
}

// checkDistortion rejects points too close to the singular meridian
// opposite the central meridian, where the projection distortion blows up.
func (t *TransverseMercator) checkDistortion(latitude, deltaLon float64) error {
	if deltaLon > math.Pi {
		deltaLon -= 2 * math.Pi
	}
	if deltaLon < -math.Pi {
		deltaLon += 2 * math.Pi
	}

	testAngle := math.Abs(deltaLon)
	if d := math.Abs(deltaLon - math.Pi); d < testAngle {
		testAngle = d
	}
	if d := math.Abs(deltaLon + math.Pi); d < testAngle {
		testAngle = d
	}
	// distance from either pole also bounds the distortion
	if d := math.Pi/2 - latitude; d < testAngle {
		testAngle = d
	}
	if d := math.Pi/2 + latitude; d < testAngle {
		testAngle = d
	}

	const maxDeltaLon = math.Pi * 70 / 180
	if testAngle > maxDeltaLon {
		return errors.New("longitude out of range")
	}
	return nil
}

// project maps geodetic radians to raw easting/northing, before false
// easting/northing offsets are applied.
func (t *TransverseMercator) project(latitude, longitude float64) (easting, northing float64, err error) {
	// longitude relative to the central meridian, wrapped to (-Pi, Pi]
	lambda := longitude - t.originLon
	if lambda > math.Pi {
		lambda -= 2 * math.Pi
	}
	if lambda < -math.Pi {
		lambda += 2 * math.Pi
	}
	if err := t.checkDistortion(latitude, lambda); err != nil {
		return 0, 0, err
	}

	cosLam := math.Cos(lambda)
	sinLam := math.Sin(lambda)
	cosPhi := math.Cos(latitude)
	sinPhi := math.Sin(latitude)

	// geodetic latitude phi to conformal latitude chi; only the cosine and
	// sine of chi are needed
	p := math.Exp(t.eps * math.Atanh(t.eps*sinPhi))
	part1 := (1 + sinPhi) / p
	part2 := (1 - sinPhi) * p
	denom := part1 + part2
	cosChi := 2 * cosPhi / denom
	sinChi := (part1 - part2) / denom

	// spherical transverse Mercator to the first plane
	u := math.Atanh(cosChi * sinLam)
	v := math.Atan2(sinChi, cosChi*cosLam)

	var c2ku, s2ku, c2kv, s2kv [tmTerms]float64
	coshSinhMultiples(2*u, &c2ku, &s2ku)
	cosSinMultiples(2*v, &c2kv, &s2kv)

	// first plane to second plane
	x := 0.0
	y := 0.0
	for k := tmTerms - 1; k >= 0; k-- {
		x += t.aCoeff[k] * s2ku[k] * c2kv[k]
		y += t.aCoeff[k] * c2ku[k] * s2kv[k]
	}
	x += u
	y += v

	return t.k0R4 * x, t.k0R4 * y, nil
}

// unproject maps raw easting/northing back to geodetic radians.
func (t *TransverseMercator) unproject(easting, northing float64) (latitude, longitude float64) {
	x := t.k0R4Inv * easting
	y := t.k0R4Inv * northing

	var c2kx, s2kx, c2ky, s2ky [tmTerms]float64
	coshSinhMultiples(2*x, &c2kx, &s2kx)
	cosSinMultiples(2*y, &c2ky, &s2ky)

	// second plane back to the first plane
	u := 0.0
	v := 0.0
	for k := tmTerms - 1; k >= 0; k-- {
		u += t.bCoeff[k] * s2kx[k] * c2ky[k]
		v += t.bCoeff[k] * c2kx[k] * s2ky[k]
	}
	u += x
	v += y

	// first plane back to the sphere
	coshU := math.Cosh(u)
	sinhU := math.Sinh(u)
	cosV := math.Cos(v)
	sinV := math.Sin(v)

	var lambda float64
	if math.Abs(cosV) < 10e-12 && math.Abs(coshU) < 10e-12 {
		lambda = 0
	} else {
		lambda = math.Atan2(sinhU, cosV)
	}

	sinChi := sinV / coshU
	return geodeticFromConformal(sinChi, t.eps), t.originLon + lambda
}

// FromGeodetic converts geodetic coordinates to projected easting/northing.
func (t *TransverseMercator) FromGeodetic(geodetic s2.LatLng) (GridCoords, error) {
	longitude := geodetic.Lng.Radians()
	latitude := geodetic.Lat.Radians()

	if longitude > math.Pi {
		longitude -= 2 * math.Pi
	}
	if longitude < -math.Pi {
		longitude += 2 * math.Pi
	}

	easting, northing, err := t.project(latitude, longitude)
	if err != nil {
		return GridCoords{}, err
	}
	return GridCoords{
		Easting:  easting + t.falseEasting - t.originShift.Easting,
		Northing: northing + t.falseNorthing - t.originShift.Northing,
	}, nil
}

// ToGeodetic converts projected easting/northing back to geodetic
// coordinates.
func (t *TransverseMercator) ToGeodetic(coords GridCoords) (s2.LatLng, error) {
	easting := coords.Easting
	northing := coords.Northing

	if easting < t.falseEasting-t.deltaEasting ||
		easting > t.falseEasting+t.deltaEasting {
		return s2.LatLng{}, errors.New("easting out of range")
	}
	if northing < t.falseNorthing-t.deltaNorthing ||
		northing > t.falseNorthing+t.deltaNorthing {
		return s2.LatLng{}, errors.New("northing out of range")
	}

	easting -= t.falseEasting - t.originShift.Easting
	northing -= t.falseNorthing - t.originShift.Northing

	latitude, longitude := t.unproject(easting, northing)

	if longitude > math.Pi {
		longitude -= 2 * math.Pi
	}
	if longitude <= -math.Pi {
		longitude += 2 * math.Pi
	}

	if math.Abs(latitude) > math.Pi/2 {
		return s2.LatLng{}, errors.New("northing out of range")
	}
	if longitude > math.Pi {
		longitude -= 2 * math.Pi
		if math.Abs(longitude) > math.Pi {
			return s2.LatLng{}, errors.New("easting out of range")
		}
	} else if longitude < -math.Pi {
		longitude += 2 * math.Pi
		if math.Abs(longitude) > math.Pi {
			return s2.LatLng{}, errors.New("easting out of range")
		}
	}
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}, nil
}

// geodeticFromConformal iterates the conformal latitude relation to recover
// the geodetic latitude from sin(chi).
func geodeticFromConformal(sinChi, e float64) float64 {
	sOld := 1.0e99
	s := sinChi
	onePlus := 1 + sinChi
	oneMinus := 1 - sinChi

	for i := 0; i < 30; i++ {
		p := math.Exp(e * math.Atanh(e*s))
		pSq := p * p
		s = (onePlus*pSq - oneMinus) / (onePlus*pSq + oneMinus)
		if math.Abs(s-sOld) < 1.0e-12 {
			break
		}
		sOld = s
	}
	return math.Asin(s)
}

// coshSinhMultiples fills c[k] = cosh(2(k+1)x) and s[k] = sinh(2(k+1)x)
// from cosh/sinh of twoX using the double- and sum-angle identities.
func coshSinhMultiples(twoX float64, c, s *[tmTerms]float64) {
	c[0] = math.Cosh(twoX)
	s[0] = math.Sinh(twoX)
	c[1] = 2*c[0]*c[0] - 1
	s[1] = 2 * c[0] * s[0]
	c[2] = c[0]*c[1] + s[0]*s[1]
	s[2] = c[1]*s[0] + c[0]*s[1]
	c[3] = 2*c[1]*c[1] - 1
	s[3] = 2 * c[1] * s[1]
	c[4] = c[0]*c[3] + s[0]*s[3]
	s[4] = c[3]*s[0] + c[0]*s[3]
	c[5] = 2*c[2]*c[2] - 1
	s[5] = 2 * c[2] * s[2]
}

// cosSinMultiples fills c[k] = cos(2(k+1)y) and s[k] = sin(2(k+1)y) from
// cos/sin of twoY using the double- and sum-angle identities.
func cosSinMultiples(twoY float64, c, s *[tmTerms]float64) {
	c[0] = math.Cos(twoY)
	s[0] = math.Sin(twoY)
	c[1] = 2*c[0]*c[0] - 1
	s[1] = 2 * c[0] * s[0]
	c[2] = c[1]*c[0] - s[1]*s[0]
	s[2] = c[1]*s[0] + c[0]*s[1]
	c[3] = 2*c[1]*c[1] - 1
	s[3] = 2 * c[1] * s[1]
	c[4] = c[3]*c[0] - s[3]*s[0]
	s[4] = c[3]*s[0] + c[0]*s[3]
	c[5] = 2*c[2]*c[2] - 1
	s[5] = 2 * c[2] * s[2]
}
