package admconv

import "math"

const deg2rad = math.Pi / 180
const rad2deg = 180 / math.Pi

// vertex is an (x, y) point on the unit square footprint, shared by both
// the forward (polar azimuth -> square point) and reverse (square point
// -> polar azimuth) sector tables.
type vertex struct{ x, y float64 }

// sector describes one of the five ADM azimuth regions: sweeping
// azimuth from azR up to azL (anti-clockwise) maps linearly, via
// [MapAzToLinear], onto the straight edge from vR to vL on the unit
// square footprint.
type sector struct {
	azL, azR float64
	vL, vR   vertex
}

// sectors is the ADM azimuth partition from BS.2127-1 §6: five
// rectangular regions of the unit-square footprint, reached by a
// non-linear azimuth remap within each region.
var sectors = [5]sector{
	{azL: 30, azR: 0, vL: vertex{-1, 1}, vR: vertex{0, 1}},
	{azL: 0, azR: -30, vL: vertex{0, 1}, vR: vertex{1, 1}},
	{azL: -30, azR: -110, vL: vertex{1, 1}, vR: vertex{1, -1}},
	{azL: -110, azR: 110, vL: vertex{1, -1}, vR: vertex{-1, -1}},
	{azL: 110, azR: 30, vL: vertex{-1, -1}, vR: vertex{-1, 1}},
}

// sectorTol is the membership tolerance used when locating the azimuth
// sector containing a given direction.
const sectorTol = 1e-9

// findSectorForAzimuth returns the sector containing az (wrapped into
// (-180, 180]).
func findSectorForAzimuth(az float64) sector {
	for _, s := range sectors {
		if insideSector(az, s) {
			return s
		}
	}

	// The sectors cover the whole circle, so this is reached only for a
	// non-finite azimuth (e.g. NaN); it returns the last sector.
	return sectors[len(sectors)-1]
}

func insideSector(az float64, s sector) bool {
	span := mod360(s.azL - s.azR)
	rel := mod360(az - s.azR)

	return rel <= span+sectorTol || rel >= 360-sectorTol
}

func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}

	return m
}

// MapAzToLinear maps az, known to lie between azR and azL (azL reached
// by sweeping anti-clockwise from azR), onto the linear parameter t in
// [0,1]: t=0 at azR, t=1 at azL.
func MapAzToLinear(azL, azR, az float64) float64 {
	span := mod360(azL - azR)
	half := span / 2

	relFromR := mod360(az - azR)
	azRel := relFromR - half

	gr := 0.5 * (1 + math.Tan(azRel*deg2rad)/math.Tan(half*deg2rad))

	return (2 / math.Pi) * math.Atan2(gr, 1-gr)
}

// MapLinearToAz is the inverse of [MapAzToLinear]: given t in [0,1], it
// returns the azimuth between azR (t=0) and azL (t=1).
func MapLinearToAz(azL, azR, t float64) float64 {
	span := mod360(azL - azR)
	half := span / 2

	theta := t * math.Pi / 2
	gr := math.Sin(theta) / (math.Sin(theta) + math.Cos(theta))

	azRel := math.Atan(math.Tan(half*deg2rad)*(2*gr-1)) * rad2deg
	relFromR := azRel + half

	return WrapAzimuth(azR + relFromR)
}

// WrapAzimuth wraps an azimuth in degrees into (-180, 180].
func WrapAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az <= -180 {
		az += 360
	} else if az > 180 {
		az -= 360
	}

	return az
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
