package region

import (
	"math"

	"github.com/cwbudde/algo-admrender/dsp/core"
	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/internal/fastmath"
)

// Triplet is a panning region spanned by three loudspeaker directions,
// following ITU-R BS.2127-1 §7.1's VBAP-style construction: the
// direction vector is expressed in the basis of the three speaker unit
// vectors, the resulting coefficients are checked for non-negativity
// (inside the spherical triangle), and normalized so their squares sum
// to 1.
type Triplet struct {
	speakers []int
	basisInv geom.Matrix3
	degenerate bool
}

// NewTriplet builds a Triplet from three speaker layout indices and
// their unit direction vectors dirs[0..2]. If the three directions are
// coplanar through the origin (zero determinant), the region is
// retained but reports degenerate and always returns all-zero gains,
// mirroring how a singular VBAP basis is skipped rather than treated
// as an error at the panner level.
func NewTriplet(speakers [3]int, dirs [3]geom.CartesianPosition) Triplet {
	basis := geom.Matrix3{
		{X: dirs[0].X, Y: dirs[1].X, Z: dirs[2].X},
		{X: dirs[0].Y, Y: dirs[1].Y, Z: dirs[2].Y},
		{X: dirs[0].Z, Y: dirs[1].Z, Z: dirs[2].Z},
	}

	inv, err := basis.Inverse()
	if err != nil {
		return Triplet{speakers: speakers[:], degenerate: true}
	}

	return Triplet{speakers: speakers[:], basisInv: inv}
}

func (t Triplet) Speakers() []int { return t.speakers }

// CalculateGains implements [Handler].
func (t Triplet) CalculateGains(dir geom.CartesianPosition) []float64 {
	gains := make([]float64, 3)
	if t.degenerate {
		return gains
	}

	// The basis matrix maps gain-space to direction-space, so the
	// inverse maps the query direction to the (possibly negative) gain
	// coefficients that would reproduce it.
	g := t.basisInv.MulVec(dir)

	if g.X < -core.DefaultEpsilon || g.Y < -core.DefaultEpsilon || g.Z < -core.DefaultEpsilon {
		return gains
	}

	gains[0] = math.Max(g.X, 0)
	gains[1] = math.Max(g.Y, 0)
	gains[2] = math.Max(g.Z, 0)

	normalizeInPlace(gains)

	return gains
}

// normalizeInPlace scales g so the sum of its squares is 1, unless g is
// all zero.
func normalizeInPlace(g []float64) {
	sumSq := 0.0
	for _, v := range g {
		sumSq += v * v
	}

	if sumSq == 0 {
		return
	}

	inv := 1 / fastmath.Sqrt(sumSq)
	for i := range g {
		g[i] *= inv
	}
}
