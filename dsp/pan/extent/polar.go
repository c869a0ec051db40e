package extent

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/internal/fastmath"
)

// PointSourcePanner is the narrow interface [PolarHandler] needs from a
// point-source panner: a gain vector for a unit direction.
type PointSourcePanner interface {
	CalculateGains(dir geom.CartesianPosition) []float64
}

// PolarHandler integrates a polar (w,h,d) extent by summing a point
// source panner's output over a weighted grid of virtual directions
// spanning the extent's solid angle, then blending in a uniform
// (depth-driven) contribution across every member speaker to stand in
// for BS.2127-1's origin-placed depth source.
type PolarHandler struct {
	panner PointSourcePanner
	nCh    int
}

// NewPolarHandler builds a PolarHandler wrapping panner, whose output
// gain vectors are nCh long.
func NewPolarHandler(panner PointSourcePanner, nCh int) *PolarHandler {
	return &PolarHandler{panner: panner, nCh: nCh}
}

// CalculateGains returns the unit-normalized gain vector for a source
// at pos with extent (width, height, depth) in ADM degrees/[0,1] units.
func (h *PolarHandler) CalculateGains(pos geom.PolarPosition, width, height, depth float64) []float64 {
	out := make([]float64, h.nCh)
	scaled := make([]float64, h.nCh)

	for _, s := range polarGrid(pos, width, height) {
		g := h.panner.CalculateGains(s.dir)
		vecmath.ScaleBlock(scaled, g, s.weight)
		vecmath.AddBlockInPlace(out, scaled)
	}

	if depth > 0 {
		blendDepth(out, depth)
	}

	normalize(out)

	return out
}

// blendDepth mixes in a uniform 1/sqrt(n)-per-speaker contribution,
// proportional to depth, standing in for BS.2127-1's source placed at
// the origin: a fully-depth-spread object radiates toward the listener
// from every direction at once.
func blendDepth(gains []float64, depth float64) {
	n := len(gains)
	if n == 0 {
		return
	}

	uniform := depth / fastmath.Sqrt(float64(n))

	for i := range gains {
		gains[i] = (1-depth)*gains[i] + uniform
	}
}

func normalize(g []float64) {
	sumSq := vecmath.DotProduct(g, g)
	if sumSq == 0 {
		return
	}

	vecmath.ScaleBlockInPlace(g, 1/fastmath.Sqrt(sumSq))
}
