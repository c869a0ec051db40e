package admconv

import (
	"math"

	"github.com/cwbudde/algo-admrender/dsp/geom"
)

// elevationForward maps |el| <= 30 linearly onto |el'| <= 45, and |el| >
// 30 linearly into (45, 90], preserving sign.
func elevationForward(el float64) float64 {
	sign := 1.0
	if el < 0 {
		sign = -1
		el = -el
	}

	var mapped float64
	if el <= 30 {
		mapped = el * 45 / 30
	} else {
		mapped = 45 + (el-30)*45/60
	}

	return sign * mapped
}

// elevationInverse is the exact inverse of [elevationForward].
func elevationInverse(elMapped float64) float64 {
	sign := 1.0
	if elMapped < 0 {
		sign = -1
		elMapped = -elMapped
	}

	var el float64
	if elMapped <= 45 {
		el = elMapped * 30 / 45
	} else {
		el = 30 + (elMapped-45)*60/45
	}

	return sign * el
}

// PointPolarToCart converts an ADM polar position to an ADM cartesian
// position using the five-sector azimuth remap and piecewise-linear
// elevation remap of BS.2127-1 §6. It is the mutual inverse of
// [PointCartToPolar] to within 1e-10 over the whole sphere, except the
// degenerate pole case.
func PointPolarToCart(p geom.PolarPosition) geom.CartesianPosition {
	az := WrapAzimuth(p.Azimuth)
	s := findSectorForAzimuth(az)
	t := MapAzToLinear(s.azL, s.azR, az)

	x0 := lerp(s.vR.x, s.vL.x, t)
	y0 := lerp(s.vR.y, s.vL.y, t)

	elMapped := elevationForward(p.Elevation)
	elRad := elMapped * deg2rad
	cosEl := math.Cos(elRad)
	sinEl := math.Sin(elRad)

	return geom.CartesianPosition{
		X: p.Distance * cosEl * x0,
		Y: p.Distance * cosEl * y0,
		Z: p.Distance * sinEl,
	}
}

// PointCartToPolar converts an ADM cartesian position back to polar. The
// degenerate x=y=0 case maps to (0, sign(z)*90, |z|).
func PointCartToPolar(c geom.CartesianPosition) geom.PolarPosition {
	r := math.Max(math.Abs(c.X), math.Abs(c.Y))

	if r == 0 && c.Z == 0 {
		return geom.PolarPosition{}
	}

	distance := math.Sqrt(r*r + c.Z*c.Z)

	elRad := math.Atan2(c.Z, r)
	elMapped := elRad * rad2deg
	el := elevationInverse(elMapped)

	if r == 0 {
		return geom.PolarPosition{Azimuth: 0, Elevation: el, Distance: distance}
	}

	x0 := c.X / r
	y0 := c.Y / r

	phi := math.Atan2(-x0, y0) * rad2deg
	s := sectorForPhi(phi)

	t := edgeParameter(s, x0, y0)
	az := MapLinearToAz(s.azL, s.azR, t)

	return geom.PolarPosition{Azimuth: az, Elevation: el, Distance: distance}
}

// sectorForPhi classifies the geometric (Euclidean) angle phi of a unit
// square footprint point into the ADM azimuth sector whose square edge
// contains it. The square's corners sit at phi = +-45 and +-135 degrees,
// the boundaries BS.2127-1 uses for the cartesian-to-polar direction.
func sectorForPhi(phi float64) sector {
	switch {
	case phi >= 0 && phi <= 45+sectorTol:
		return sectors[0]
	case phi >= -45-sectorTol && phi < 0:
		return sectors[1]
	case phi >= -135-sectorTol && phi < -45:
		return sectors[2]
	case phi > 135-sectorTol || phi <= -135:
		return sectors[3]
	default: // 45 < phi <= 135
		return sectors[4]
	}
}

// edgeParameter inverts the (x0, y0) square-edge point of sector s back
// to the linear parameter t in [0,1] (t=0 at vR, t=1 at vL), by
// projecting onto whichever coordinate varies along that edge.
func edgeParameter(s sector, x0, y0 float64) float64 {
	dx := s.vL.x - s.vR.x
	dy := s.vL.y - s.vR.y

	if math.Abs(dx) >= math.Abs(dy) {
		if dx == 0 {
			return 0
		}

		return (x0 - s.vR.x) / dx
	}

	return (y0 - s.vR.y) / dy
}
