package extent

import (
	"github.com/cwbudde/algo-admrender/dsp/admconv"
	"github.com/cwbudde/algo-admrender/dsp/geom"
)

// AllocentricPanner is the narrow interface [AllocentricHandler] needs:
// a gain vector for a cube-coordinate position.
type AllocentricPanner interface {
	CalculateGains(pos geom.CartesianPosition) []float64
}

// cubeGridSamples is the per-axis sample count used to integrate an
// allocentric extent's half-extent box.
const cubeGridSamples = 3

// AllocentricHandler is [PolarHandler]'s cube-coordinate counterpart:
// it integrates an allocentric panner's output over a grid of points
// filling the half-extent box (width, height, depth converted via
// [admconv.WHDToXYZ]) around the source's cube position.
type AllocentricHandler struct {
	panner AllocentricPanner
	nCh    int
}

// NewAllocentricHandler builds an AllocentricHandler wrapping panner.
func NewAllocentricHandler(panner AllocentricPanner, nCh int) *AllocentricHandler {
	return &AllocentricHandler{panner: panner, nCh: nCh}
}

// CalculateGains returns the unit-normalized gain vector for a source
// at cube position pos with extent (width, height, depth) in ADM
// degrees/[0,1] units. The half-extent box is rotated via
// [admconv.RotateExtent] into pos's own direction before sampling, so
// a narrow "width" extent spreads across the source's local left-right
// axis rather than always the world X axis.
func (h *AllocentricHandler) CalculateGains(pos geom.CartesianPosition, width, height, depth float64) []float64 {
	out := make([]float64, h.nCh)

	half := admconv.WHDToXYZ(width, height, depth)

	if half.X == 0 && half.Y == 0 && half.Z == 0 {
		g := h.panner.CalculateGains(pos)
		copy(out, g)

		normalize(out)

		return out
	}

	direction := admconv.PointCartToPolar(pos)

	total := 0.0

	for _, dx := range cubeOffsets(half.X) {
		for _, dy := range cubeOffsets(half.Y) {
			for _, dz := range cubeOffsets(half.Z) {
				offset := admconv.RotateExtent(direction, geom.CartesianPosition{X: dx, Y: dy, Z: dz})
				p := pos.Add(offset)

				g := h.panner.CalculateGains(p)
				for i, v := range g {
					out[i] += v
				}

				total++
			}
		}
	}

	if total > 0 {
		for i := range out {
			out[i] /= total
		}
	}

	normalize(out)

	return out
}

// cubeOffsets returns cubeGridSamples evenly spaced offsets spanning
// [-half, half] (a single 0 offset when half is 0).
func cubeOffsets(half float64) []float64 {
	if half == 0 {
		return []float64{0}
	}

	offsets := make([]float64, cubeGridSamples)

	step := 2 * half / float64(cubeGridSamples-1)
	for i := range offsets {
		offsets[i] = -half + float64(i)*step
	}

	return offsets
}
