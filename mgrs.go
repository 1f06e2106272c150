package geoconv

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// MGRSConverter converts between geodetic coordinates and Military Grid
// Reference System coordinate strings. Within +-80/84 degrees of latitude
// the grid is built on UTM; beyond that it falls back to UPS.
type MGRSConverter struct {
	ellipsoid
	ellipsoidCode string
	ups           *UPSConverter
	utm           *UTMConverter
}

const mgrsEpsilon = 4.99e-4
const mgrsMaxPrecision = 5 // maximum digits of easting & northing
const mgrsMinNonPolarLat = -80.0 * (math.Pi / 180.0)
const mgrsMaxNonPolarLat = 84.0 * (math.Pi / 180.0)
const mgrsMinEasting = 100000.0
const mgrsMaxEasting = 900000.0
const mgrsMinNorthing = 0.0
const mgrsMaxNorthing = 10000000.0

// Alphabet indices used by the grid letter arithmetic. I and O are skipped
// on the grid but keep their slots here.
const (
	letterA = iota
	letterB
	letterC
	letterD
	letterE
	letterF
	letterG
	letterH
	letterI
	letterJ
	letterK
	letterL
	letterM
	letterN
	letterO
	letterP
	letterQ
	letterR
	letterS
	letterT
	letterU
	letterV
	letterW
	letterX
	letterY
	letterZ
)

// Ellipsoid codes using the AL grid lettering pattern instead of AA.
const (
	clarke1866        = "CC"
	clarke1880        = "CD"
	bessel1841        = "BR"
	bessel1841Namibia = "BN"
)

type latitudeBand struct {
	letter         int     // letter representing the latitude band
	minNorthing    float64 // minimum northing for the band
	north          float64 // upper latitude of the band, degrees
	south          float64 // lower latitude of the band, degrees
	northingOffset float64 // band northing offset
}

var latitudeBands = [20]latitudeBand{
	{letterC, 1100000.0, -72.0, -80.5, 0.0},
	{letterD, 2000000.0, -64.0, -72.0, 2000000.0},
	{letterE, 2800000.0, -56.0, -64.0, 2000000.0},
	{letterF, 3700000.0, -48.0, -56.0, 2000000.0},
	{letterG, 4600000.0, -40.0, -48.0, 4000000.0},
	{letterH, 5500000.0, -32.0, -40.0, 4000000.0},
	{letterJ, 6400000.0, -24.0, -32.0, 6000000.0},
	{letterK, 7300000.0, -16.0, -24.0, 6000000.0},
	{letterL, 8200000.0, -8.0, -16.0, 8000000.0},
	{letterM, 9100000.0, 0.0, -8.0, 8000000.0},
	{letterN, 0.0, 8.0, 0.0, 0.0},
	{letterP, 800000.0, 16.0, 8.0, 0.0},
	{letterQ, 1700000.0, 24.0, 16.0, 0.0},
	{letterR, 2600000.0, 32.0, 24.0, 2000000.0},
	{letterS, 3500000.0, 40.0, 32.0, 2000000.0},
	{letterT, 4400000.0, 48.0, 40.0, 4000000.0},
	{letterU, 5300000.0, 56.0, 48.0, 4000000.0},
	{letterV, 6200000.0, 64.0, 56.0, 6000000.0},
	{letterW, 7000000.0, 72.0, 64.0, 6000000.0},
	{letterX, 7900000.0, 84.5, 72.0, 6000000.0},
}

type upsBand struct {
	letter        int     // letter representing the polar band
	ltr2LowValue  int     // 2nd letter range, low
	ltr2HighValue int     // 2nd letter range, high
	ltr3HighValue int     // 3rd letter range, high
	falseEasting  float64 // false easting based on 2nd letter
	falseNorthing float64 // false northing based on 3rd letter
}

var upsBands = [4]upsBand{
	{letterA, letterJ, letterZ, letterZ, 800000.0, 800000.0},
	{letterB, letterA, letterR, letterZ, 2000000.0, 800000.0},
	{letterY, letterJ, letterZ, letterP, 800000.0, 1300000.0},
	{letterZ, letterA, letterJ, letterP, 2000000.0, 1300000.0},
}

// NewMGRSConverter constructs an MGRS converter for the given ellipsoid
// parameters. The two-letter ellipsoid code selects the grid lettering
// pattern; WGS84 is "WE".
func NewMGRSConverter(semiMajorAxis, flattening float64, ellipsoidCode string) (*MGRSConverter, error) {
	m := &MGRSConverter{
		ellipsoid:     ellipsoid{semiMajorAxis: semiMajorAxis, flattening: flattening},
		ellipsoidCode: ellipsoidCode,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	var err error
	m.ups, err = NewUPSConverter(semiMajorAxis, flattening)
	if err != nil {
		return nil, err
	}
	m.utm, err = NewUTMConverterEllipsoid(semiMajorAxis, flattening, 0)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FromCoord converts a geodetic coordinate to an MGRS coordinate string
// with the given precision (0-5 digit pairs per component).
func (m *MGRSConverter) FromCoord(c Coord, precision int) (string, error) {
	geodetic := c.LatLng()
	latitude := geodetic.Lat.Radians()
	longitude := geodetic.Lng.Radians()

	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return "", errors.New("latitude out of range")
	}
	if longitude < -math.Pi-epsilonRadians || longitude > 2*math.Pi+epsilonRadians {
		return "", errors.New("longitude out of range")
	}
	if precision < 0 || precision > mgrsMaxPrecision {
		return "", errors.New("precision out of range")
	}

	// non-polar latitudes go through UTM, the rest through UPS
	if latitude >= mgrsMinNonPolarLat-epsilonRadians &&
		latitude < mgrsMaxNonPolarLat+epsilonRadians {
		utmCoords, err := m.utm.FromCoord(c, 0)
		if err != nil {
			return "", err
		}
		return m.fromUTM(utmCoords, longitude, latitude, precision)
	}
	upsCoords, err := m.ups.FromCoord(c)
	if err != nil {
		return "", err
	}
	return m.fromUPS(upsCoords, precision)
}

// FromUTM converts UTM coordinates to an MGRS coordinate string with the
// given precision.
func (m *MGRSConverter) FromUTM(coords UTMCoords, precision int) (string, error) {
	if coords.Zone < 1 || coords.Zone > 60 {
		return "", errors.New("zone out of range")
	}
	if coords.Hemisphere != HemisphereNorth && coords.Hemisphere != HemisphereSouth {
		return "", errors.New("hemisphere out of range")
	}
	if coords.Easting < mgrsMinEasting || coords.Easting > mgrsMaxEasting {
		return "", errors.New("easting out of range")
	}
	if coords.Northing < mgrsMinNorthing || coords.Northing > mgrsMaxNorthing {
		return "", errors.New("northing out of range")
	}
	if precision < 0 || precision > mgrsMaxPrecision {
		return "", errors.New("precision out of range")
	}

	c, err := m.utm.ToCoord(coords)
	if err != nil {
		return "", err
	}
	geodetic := c.LatLng()
	latitude := geodetic.Lat.Radians()

	if latitude >= mgrsMinNonPolarLat-epsilonRadians &&
		latitude < mgrsMaxNonPolarLat+epsilonRadians {
		return m.fromUTM(coords, geodetic.Lng.Radians(), latitude, precision)
	}
	upsCoords, err := m.ups.FromCoord(c)
	if err != nil {
		return "", err
	}
	return m.fromUPS(upsCoords, precision)
}

// ToCoord converts an MGRS or USNG coordinate string back to a geodetic
// coordinate.
func (m *MGRSConverter) ToCoord(mgrs string) (Coord, error) {
	zone, letters, easting, northing, precision, err := parseMGRS(mgrs)
	if err != nil {
		return Coord{}, err
	}
	if zone != 0 {
		utmCoords, err := m.toUTM(zone, letters, easting, northing, precision)
		if err != nil {
			return Coord{}, err
		}
		return m.utm.ToCoord(utmCoords)
	}
	upsCoords, err := m.toUPS(letters, easting, northing)
	if err != nil {
		return Coord{}, err
	}
	return m.ups.ToCoord(upsCoords)
}

// fromUPS encodes UPS coordinates as an MGRS string.
func (m *MGRSConverter) fromUPS(coords UPSCoords, precision int) (string, error) {
	divisor := precisionScale(precision)
	easting := float64(int((coords.Easting+mgrsEpsilon)/divisor)) * divisor
	northing := float64(int((coords.Northing+mgrsEpsilon)/divisor)) * divisor

	var letters [3]int
	var band upsBand
	if coords.Hemisphere == HemisphereNorth {
		letters[0] = letterY
		if easting >= 2000000 {
			letters[0] = letterZ
		}
		band = upsBands[letters[0]-22]
	} else {
		letters[0] = letterA
		if easting >= 2000000 {
			letters[0] = letterB
		}
		band = upsBands[letters[0]]
	}

	gridNorthing := northing - band.falseNorthing
	letters[2] = int(gridNorthing / 100000)
	if letters[2] > letterH {
		letters[2]++
	}
	if letters[2] > letterN {
		letters[2]++
	}

	gridEasting := easting - band.falseEasting
	letters[1] = band.ltr2LowValue + int(gridEasting/100000)
	if easting < 2000000 {
		if letters[1] > letterL {
			letters[1] += 3
		}
		if letters[1] > letterU {
			letters[1] += 2
		}
	} else {
		if letters[1] > letterC {
			letters[1] += 2
		}
		if letters[1] > letterH {
			letters[1]++
		}
		if letters[1] > letterL {
			letters[1] += 3
		}
	}

	return encodeMGRS(0, letters, easting, northing, precision)
}

// fromUTM encodes UTM coordinates as an MGRS string. longitude and latitude
// are the geodetic radians of the point, used for the latitude band letter
// and the grid zone exceptions.
func (m *MGRSConverter) fromUTM(coords UTMCoords, longitude, latitude float64, precision int) (string, error) {
	var letters [3]int
	zone := coords.Zone
	easting := coords.Easting
	northing := coords.Northing

	var err error
	letters[0], err = latitudeLetter(latitude)
	if err != nil {
		return "", err
	}

	// reproject into the natural zone when the UTM input came from an
	// override zone
	const lat6 = 6.0 * (math.Pi / 180.0)
	pad := mgrsEpsilon / m.semiMajorAxis
	var zoneNatural int
	if longitude < math.Pi {
		zoneNatural = int(31 + (longitude+pad)/lat6)
	} else {
		zoneNatural = int((longitude+pad)/lat6 - 29)
	}
	if zoneNatural > 60 {
		zoneNatural = 1
	}
	if zone != zoneNatural {
		zone, easting, northing, err = m.reproject(longitude, latitude, zoneNatural)
		if err != nil {
			return "", err
		}
	}

	// grid exceptions around zones 31X-37X and 31V/32V
	var override int
	if letters[0] == letterV {
		if zone == 31 && easting >= 500000.0 {
			override = 32 // extension of zone 32V
		}
	} else if letters[0] == letterX {
		switch {
		case zone == 32 && easting < 500000.0: // extension of zone 31X
			override = 31
		case (zone == 32 && easting >= 500000.0) ||
			(zone == 34 && easting < 500000.0): // zone 33X
			override = 33
		case (zone == 34 && easting >= 500000.0) ||
			(zone == 36 && easting < 500000.0): // zone 35X
			override = 35
		case zone == 36 && easting >= 500000.0: // western extension of zone 37X
			override = 37
		}
	}
	if override != 0 {
		zone, easting, northing, err = m.reproject(longitude, latitude, override)
		if err != nil {
			return "", err
		}
	}

	divisor := precisionScale(precision)
	easting = float64(int((easting+mgrsEpsilon)/divisor)) * divisor
	northing = float64(int((northing+mgrsEpsilon)/divisor)) * divisor

	if latitude <= 0.0 && northing == 1.0e7 {
		northing = 0.0
	}

	ltr2LowValue, _, patternOffset := m.gridValues(zone)

	gridNorthing := northing
	for gridNorthing >= 2000000 {
		gridNorthing -= 2000000
	}
	gridNorthing += patternOffset
	if gridNorthing >= 2000000 {
		gridNorthing -= 2000000
	}

	letters[2] = int(gridNorthing / 100000)
	if letters[2] > letterH {
		letters[2]++
	}
	if letters[2] > letterN {
		letters[2]++
	}

	letters[1] = ltr2LowValue + int(easting/100000) - 1
	if ltr2LowValue == letterJ && letters[1] > letterN {
		letters[1]++
	}

	return encodeMGRS(zone, letters, easting, northing, precision)
}

// reproject converts the geodetic point into the given override zone and
// returns the resulting zone, easting and northing.
func (m *MGRSConverter) reproject(longitude, latitude float64, zone int) (int, float64, float64, error) {
	converter, err := NewUTMConverterEllipsoid(m.semiMajorAxis, m.flattening, zone)
	if err != nil {
		return 0, 0, 0, err
	}
	coords, err := converter.FromCoord(CoordFromLatLng(radiansLatLng(latitude, longitude)), 0)
	if err != nil {
		return 0, 0, 0, err
	}
	return coords.Zone, coords.Easting, coords.Northing, nil
}

// precisionScale returns the meter scale of one digit pair at a precision.
func precisionScale(precision int) float64 {
	scale := 1.0e5
	for i := 0; i < precision; i++ {
		scale /= 10
	}
	return scale
}

// encodeMGRS assembles an MGRS string from its component parts.
func encodeMGRS(zone int, letters [3]int, easting, northing float64, precision int) (string, error) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	buf := bytes.Buffer{}
	if zone != 0 {
		fmt.Fprintf(&buf, "%2.2d", zone)
	}
	for _, l := range letters {
		if l < 0 || l >= len(alphabet) {
			return "", errors.New("invalid letters")
		}
		buf.WriteByte(alphabet[l])
	}

	divisor := precisionScale(precision)
	const roundEpsilon = 4.99e-1

	easting = math.Mod(easting, 100000.0)
	if easting >= 99999.5 {
		easting = 99999.0
	}
	fmt.Fprintf(&buf, "%*.*d", precision, precision, int((easting+roundEpsilon)/divisor))

	northing = math.Mod(northing, 100000.0)
	if northing >= 99999.5 {
		northing = 99999.0
	}
	fmt.Fprintf(&buf, "%*.*d", precision, precision, int((northing+roundEpsilon)/divisor))
	return buf.String(), nil
}

// parseMGRS breaks an MGRS coordinate string into its component parts.
func parseMGRS(mgrs string) (zone int, letters [3]int, easting, northing float64, precision int, err error) {
	for i := 0; i < len(mgrs); i++ {
		if !isDigit(mgrs[i]) && !isAlpha(mgrs[i]) {
			err = errors.New("invalid character")
			return
		}
	}

	i := 0
	for i < len(mgrs) && isDigit(mgrs[i]) {
		i++
	}
	switch numDigits := i; {
	case numDigits == 0:
		zone = 0
	case numDigits <= 2:
		if _, err = fmt.Sscanf(mgrs[:numDigits], "%d", &zone); err != nil {
			return
		}
		if zone < 1 || zone > 60 {
			err = errors.New("zone out of range")
			return
		}
	default:
		err = errors.New("too few digits")
		return
	}

	j := i
	for i < len(mgrs) && isAlpha(mgrs[i]) {
		i++
	}
	if i-j != 3 {
		err = errors.New("wrong number of letters")
		return
	}
	for k := 0; k < 3; k++ {
		letters[k] = int(toUpper(mgrs[j+k]) - 'A')
		if letters[k] == letterI || letters[k] == letterO {
			err = errors.New("invalid letter")
			return
		}
	}

	j = i
	for i < len(mgrs) && isDigit(mgrs[i]) {
		i++
	}
	numDigits := i - j
	if numDigits > 10 || numDigits%2 != 0 {
		err = errors.New("wrong number of digits")
		return
	}
	n := numDigits / 2
	precision = n
	if n > 0 {
		var east, north int
		if _, err = fmt.Sscanf(mgrs[j:j+n], "%d", &east); err != nil {
			return
		}
		if _, err = fmt.Sscanf(mgrs[j+n:j+2*n], "%d", &north); err != nil {
			return
		}
		multiplier := precisionScale(n)
		easting = float64(east) * multiplier
		northing = float64(north) * multiplier
	}
	return
}

// gridValues returns the 2nd-letter range and the pattern offset for a grid
// zone, based on the zone's set number and the ellipsoid lettering pattern.
func (m *MGRSConverter) gridValues(zone int) (ltr2LowValue, ltr2HighValue int, patternOffset float64) {
	setNumber := zone % 6
	if setNumber == 0 {
		setNumber = 6
	}

	aaPattern := true
	switch m.ellipsoidCode {
	case clarke1866, clarke1880, bessel1841, bessel1841Namibia:
		aaPattern = false
	}

	switch setNumber {
	case 1, 4:
		ltr2LowValue = letterA
		ltr2HighValue = letterH
	case 2, 5:
		ltr2LowValue = letterJ
		ltr2HighValue = letterR
	case 3, 6:
		ltr2LowValue = letterS
		ltr2HighValue = letterZ
	}

	if aaPattern {
		if setNumber%2 == 0 {
			patternOffset = 500000.0
		}
	} else {
		patternOffset = 1000000.0
		if setNumber%2 == 0 {
			patternOffset = 1500000.0
		}
	}
	return
}

// toUTM converts parsed MGRS components to UTM coordinates.
func (m *MGRSConverter) toUTM(zone int, letters [3]int, easting, northing float64, precision int) (UTMCoords, error) {
	if letters[0] == letterX && (zone == 32 || zone == 34 || zone == 36) {
		return UTMCoords{}, errors.New("invalid letters")
	}
	if letters[0] == letterV && zone == 31 && letters[1] > letterD {
		return UTMCoords{}, errors.New("invalid letters")
	}

	hemisphere := HemisphereNorth
	if letters[0] < letterN {
		hemisphere = HemisphereSouth
	}

	ltr2LowValue, ltr2HighValue, patternOffset := m.gridValues(zone)

	// the 2nd letter must sit in the zone's letter range and the 3rd must
	// be a valid row letter
	if letters[1] < ltr2LowValue || letters[1] > ltr2HighValue || letters[2] > letterV {
		return UTMCoords{}, errors.New("invalid letters")
	}

	gridEasting := float64(letters[1]-ltr2LowValue+1) * 100000
	if ltr2LowValue == letterJ && letters[1] > letterO {
		gridEasting -= 100000
	}

	rowNorthing := float64(letters[2]) * 100000
	if letters[2] > letterO {
		rowNorthing -= 100000
	}
	if letters[2] > letterI {
		rowNorthing -= 100000
	}
	if rowNorthing >= 2000000 {
		rowNorthing -= 2000000
	}

	minNorthing, northingOffset, err := latitudeBandNorthing(letters[0])
	if err != nil {
		return UTMCoords{}, err
	}

	gridNorthing := rowNorthing - patternOffset
	if gridNorthing < 0 {
		gridNorthing += 2000000
	}
	gridNorthing += northingOffset
	if gridNorthing < minNorthing {
		gridNorthing += 2000000
	}

	utmCoords := UTMCoords{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    gridEasting + easting,
		Northing:   gridNorthing + northing,
	}

	// check that the point is within the latitude band bounds
	c, err := m.utm.ToCoord(utmCoords)
	if err != nil {
		return UTMCoords{}, err
	}
	latitude := c.LatLng().Lat.Radians()
	border := math.Pi / 180 / (100000 / precisionScale(precision))

	inRange, err := inLatitudeRange(letters[0], latitude, border)
	if err != nil {
		return UTMCoords{}, err
	}
	if !inRange {
		// a band boundary can cut across a 100km square; accept the point
		// when both adjacent bands contain it
		prevBand := letters[0] - 1
		nextBand := letters[0] + 1
		if letters[0] == letterC {
			prevBand = letters[0]
		}
		if letters[0] == letterX {
			nextBand = letters[0]
		}
		if prevBand == letterI || prevBand == letterO {
			prevBand--
		}
		if nextBand == letterI || nextBand == letterO {
			nextBand++
		}

		prevInRange, err := inLatitudeRange(prevBand, latitude, border)
		if err != nil {
			return UTMCoords{}, err
		}
		nextInRange, err := inLatitudeRange(nextBand, latitude, border)
		if err != nil {
			return UTMCoords{}, err
		}
		if !prevInRange || !nextInRange {
			return UTMCoords{}, errors.New("invalid MGRS")
		}
	}
	return utmCoords, nil
}

// toUPS converts parsed MGRS components to UPS coordinates.
func (m *MGRSConverter) toUPS(letters [3]int, easting, northing float64) (UPSCoords, error) {
	var band upsBand
	var hemisphere Hemisphere
	switch letters[0] {
	case letterY, letterZ:
		hemisphere = HemisphereNorth
		band = upsBands[letters[0]-22]
	case letterA, letterB:
		hemisphere = HemisphereSouth
		band = upsBands[letters[0]]
	default:
		return UPSCoords{}, errors.New("invalid MGRS string")
	}

	// the 2nd letter must sit in the band's letter range, skipping the
	// letters absent from the polar grid, and the 3rd must be valid
	if letters[1] < band.ltr2LowValue || letters[1] > band.ltr2HighValue ||
		letters[1] == letterD || letters[1] == letterE ||
		letters[1] == letterM || letters[1] == letterN ||
		letters[1] == letterV || letters[1] == letterW ||
		letters[2] > band.ltr3HighValue {
		return UPSCoords{}, errors.New("invalid MGRS string")
	}

	gridNorthing := float64(letters[2])*100000 + band.falseNorthing
	if letters[2] > letterI {
		gridNorthing -= 100000
	}
	if letters[2] > letterO {
		gridNorthing -= 100000
	}

	gridEasting := float64(letters[1]-band.ltr2LowValue)*100000 + band.falseEasting
	if band.ltr2LowValue != letterA {
		if letters[1] > letterL {
			gridEasting -= 300000.0
		}
		if letters[1] > letterU {
			gridEasting -= 200000.0
		}
	} else {
		if letters[1] > letterC {
			gridEasting -= 200000.0
		}
		if letters[1] > letterI {
			gridEasting -= 100000
		}
		if letters[1] > letterL {
			gridEasting -= 300000.0
		}
	}

	return UPSCoords{
		Hemisphere: hemisphere,
		Easting:    gridEasting + easting,
		Northing:   gridNorthing + northing,
	}, nil
}

// latitudeBandNorthing returns the minimum northing and northing offset of
// a latitude band letter.
func latitudeBandNorthing(letter int) (minNorthing, northingOffset float64, err error) {
	band, err := bandForLetter(letter)
	if err != nil {
		return 0, 0, err
	}
	return band.minNorthing, band.northingOffset, nil
}

// inLatitudeRange reports whether a latitude lies within the band of the
// given letter, widened by border on each side.
func inLatitudeRange(letter int, latitude, border float64) (bool, error) {
	band, err := bandForLetter(letter)
	if err != nil {
		return false, err
	}
	north := band.north * math.Pi / 180
	south := band.south * math.Pi / 180
	return south-border <= latitude && latitude <= north+border, nil
}

// bandForLetter indexes latitudeBands, skipping the I and O slots.
func bandForLetter(letter int) (latitudeBand, error) {
	switch {
	case letter >= letterC && letter <= letterH:
		return latitudeBands[letter-2], nil
	case letter >= letterJ && letter <= letterN:
		return latitudeBands[letter-3], nil
	case letter >= letterP && letter <= letterX:
		return latitudeBands[letter-4], nil
	}
	return latitudeBand{}, errors.New("invalid MGRS")
}

// latitudeLetter returns the latitude band letter for a latitude in
// radians.
func latitudeLetter(latitude float64) (int, error) {
	const lat72 = 72.0 * (math.Pi / 180.0)
	const lat845 = 84.5 * (math.Pi / 180.0)
	const lat80 = 80.0 * (math.Pi / 180.0)
	const lat805 = 80.5 * (math.Pi / 180.0)
	const lat8 = 8.0 * (math.Pi / 180.0)

	switch {
	case latitude >= lat72 && latitude < lat845:
		return letterX, nil
	case latitude > -lat805 && latitude < lat72:
		band := int((latitude+lat80)/lat8 + 1.0e-12)
		if band < 0 {
			band = 0
		}
		return latitudeBands[band].letter, nil
	}
	return 0, errors.New("latitude out of range")
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
