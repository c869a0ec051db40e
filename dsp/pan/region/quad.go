package region

import (
	"math"

	"github.com/cwbudde/algo-admrender/dsp/core"
	"github.com/cwbudde/algo-admrender/dsp/geom"
)

// QuadRegion is a four-loudspeaker panning region (e.g. a screen
// quadrilateral) solved via BS.2127-1's bilinear-to-two-quadratics
// reduction: the direction vector is expressed as a bilinear
// interpolation dir = sum(g[i] * corner[i]) over unit barycentric-like
// weights (s,t) in [0,1]^2, and (s,t) is recovered by solving the two
// independent quadratics obtained from the X/Y and X/Z planes of the
// corner basis.
//
// Near-degenerate corner configurations (where the quadratic's leading
// coefficient collapses to near zero, e.g. a quad that is almost a
// parallelogram) fall back to the linear solution of the same system,
// since the standard quadratic formula is numerically unstable there;
// BS.2127-1 leaves the exact boundary of "near-degenerate" unspecified,
// so [core.DefaultEpsilon] is used as the switchover threshold.
type QuadRegion struct {
	speakers [4]int
	corners  [4]geom.CartesianPosition
}

// NewQuadRegion builds a QuadRegion from four speaker indices and
// their unit direction vectors, ordered corner-0..corner-3 around the
// quadrilateral (not necessarily planar).
func NewQuadRegion(speakers [4]int, dirs [4]geom.CartesianPosition) QuadRegion {
	return QuadRegion{speakers: speakers, corners: dirs}
}

func (q QuadRegion) Speakers() []int { return q.speakers[:] }

// CalculateGains implements [Handler].
func (q QuadRegion) CalculateGains(dir geom.CartesianPosition) []float64 {
	gains := make([]float64, 4)

	s, t, ok := q.solveST(dir)
	if !ok {
		return gains
	}

	if s < -core.DefaultEpsilon || s > 1+core.DefaultEpsilon ||
		t < -core.DefaultEpsilon || t > 1+core.DefaultEpsilon {
		return gains
	}

	s = core.Clamp(s, 0, 1)
	t = core.Clamp(t, 0, 1)

	gains[0] = (1 - s) * (1 - t)
	gains[1] = s * (1 - t)
	gains[2] = s * t
	gains[3] = (1 - s) * t

	// solveBilinear2D picks whichever quadratic root lands closer to
	// [0,1] without checking it actually reconstructs dir: reject the
	// solve if the bilinear recombination of the corners points away
	// from the query direction, per BS.2127-1's QuadRegion acceptance
	// test.
	reconstructed := q.corners[0].Scale(gains[0]).
		Add(q.corners[1].Scale(gains[1])).
		Add(q.corners[2].Scale(gains[2])).
		Add(q.corners[3].Scale(gains[3]))

	if reconstructed.Dot(dir) < 0 {
		return make([]float64, 4)
	}

	// Bilinear weights already sum to 1 by construction; convert to the
	// region's common unit-power convention.
	sumSq := 0.0
	for _, g := range gains {
		sumSq += g * g
	}

	if sumSq == 0 {
		return gains
	}

	normalizeInPlace(gains)

	return gains
}

// solveST recovers the bilinear parameters (s,t) such that
// dir == (1-s)(1-t)*c0 + s(1-t)*c1 + s*t*c2 + (1-s)*t*c3, by solving the
// quadratic obtained from eliminating t out of the X and Y component
// equations. Returns ok=false if the corner configuration is singular
// along every axis pairing tried.
func (q QuadRegion) solveST(dir geom.CartesianPosition) (s, t float64, ok bool) {
	c0, c1, c2, c3 := q.corners[0], q.corners[1], q.corners[2], q.corners[3]

	axisPairs := [][2]func(geom.CartesianPosition) float64{
		{func(v geom.CartesianPosition) float64 { return v.X }, func(v geom.CartesianPosition) float64 { return v.Y }},
		{func(v geom.CartesianPosition) float64 { return v.X }, func(v geom.CartesianPosition) float64 { return v.Z }},
		{func(v geom.CartesianPosition) float64 { return v.Y }, func(v geom.CartesianPosition) float64 { return v.Z }},
	}

	for _, pair := range axisPairs {
		u, v := pair[0], pair[1]

		s, t, ok = solveBilinear2D(
			u(c0), u(c1), u(c2), u(c3), u(dir),
			v(c0), v(c1), v(c2), v(c3), v(dir),
		)
		if ok {
			return s, t, true
		}
	}

	return 0, 0, false
}

// solveBilinear2D solves for (s,t) in:
//
//	px = (1-s)(1-t)*p0 + s(1-t)*p1 + s*t*p2 + (1-s)*t*p3
//	qx = (1-s)(1-t)*q0 + s(1-t)*q1 + s*t*q2 + (1-s)*t*q3
//
// by eliminating t to produce a quadratic in s, following the
// BS.2127-1 reduction from two bilinear equations to two independent
// quadratics. Falls back to a linear solve when the quadratic's leading
// coefficient is within [core.DefaultEpsilon] of zero.
func solveBilinear2D(p0, p1, p2, p3, px, q0, q1, q2, q3, qx float64) (s, t float64, ok bool) {
	// Rewrite each plane equation as A(s)*t + B(s) = 0 after
	// cross-multiplying p and q to eliminate t, yielding a quadratic
	// a*s^2 + b*s + c = 0 whose coefficients combine the two planes'
	// bilinear coefficients.
	pa := p0 - p1 - p3 + p2
	pb := p1 - p0
	pc := p3 - p0
	pd := p0 - px

	qa := q0 - q1 - q3 + q2
	qb := q1 - q0
	qc := q3 - q0
	qd := q0 - qx

	// t = -(pa*s + pb)*0 ... derive t from the p-equation:
	// (pa*s+pc)*t = -(pb*s+pd)  =>  t = -(pb*s+pd) / (pa*s+pc)
	// Substitute into the q-equation and clear denominators:
	//   (qa*s+qc) * (-(pb*s+pd)) + (qb*s+qd) * (pa*s+pc) = 0
	a := -qa*pb + qb*pa
	b := -qa*pd - qc*pb + qb*pc + qd*pa
	c := -qc*pd + qd*pc

	if math.Abs(a) < core.DefaultEpsilon {
		if math.Abs(b) < core.DefaultEpsilon {
			return 0, 0, false
		}

		s = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, 0, false
		}

		sqrtDisc := math.Sqrt(disc)
		s1 := (-b + sqrtDisc) / (2 * a)
		s2 := (-b - sqrtDisc) / (2 * a)

		s = pickInRange01(s1, s2)
	}

	denom := pa*s + pc
	if math.Abs(denom) < core.DefaultEpsilon {
		return 0, 0, false
	}

	t = -(pb*s + pd) / denom

	return s, t, true
}

// pickInRange01 returns whichever of s1, s2 is closer to the [0,1]
// interval, breaking ties toward s1.
func pickInRange01(s1, s2 float64) float64 {
	d1 := distanceOutside01(s1)
	d2 := distanceOutside01(s2)

	if d2 < d1 {
		return s2
	}

	return s1
}

func distanceOutside01(s float64) float64 {
	if s < 0 {
		return -s
	}

	if s > 1 {
		return s - 1
	}

	return 0
}
