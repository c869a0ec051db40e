package geom

import "math"

// mod360 reduces a degree value to the half-open range [0, 360).
func mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}

	return m
}

// RelativeAngle returns the representative of az in [ref, ref+360).
func RelativeAngle(ref, az float64) float64 {
	return ref + mod360(az-ref)
}

// InsideAngleRange reports whether az lies inside the arc swept
// anti-clockwise (increasing azimuth) from start to end, inclusive, with
// tolerance tol applied at both ends. Angles are taken modulo 360; end <
// start denotes an arc that wraps through the 360/0 boundary.
func InsideAngleRange(az, start, end, tol float64) bool {
	span := mod360(end - start)

	rel := mod360(az - start)

	return rel <= span+tol || rel >= 360-tol
}
