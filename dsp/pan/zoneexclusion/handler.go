package zoneexclusion

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-admrender/dsp/layout"
	"github.com/cwbudde/algo-admrender/internal/fastmath"
)

// rowOrder lists BS.2127-1's layer rows from ceiling to floor; ear
// level is the "M" (mid) row.
var rowOrder = []string{"T", "U", "M", "L", "B"}

func rowRank(name string) int {
	if len(name) == 0 {
		return indexOf(rowOrder, "M")
	}

	prefix := name[:1]

	if i := indexOf(rowOrder, prefix); i >= 0 {
		return i
	}

	return indexOf(rowOrder, "M")
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

// Handler redistributes gain mass from excluded speakers onto
// non-excluded ones for a fixed layout.
type Handler struct {
	l layout.Layout
}

// NewHandler builds a Handler for l.
func NewHandler(l layout.Layout) *Handler {
	return &Handler{l: l}
}

// Handle redistributes gains (length l.NCh()) in place, routing mass
// assigned to any index in excluded onto a non-excluded speaker via the
// same-row / adjacent-row-toward-ear-level / opposite-side priority
// cascade, then rescales the whole vector back to unit power. If every
// non-LFE speaker is excluded, the result is all zero.
func (h *Handler) Handle(gains []float64, excluded map[int]bool) {
	nonLFE := h.l.NonLFEIndices()

	allExcluded := true

	for _, idx := range nonLFE {
		if !excluded[idx] {
			allExcluded = false
			break
		}
	}

	if allExcluded {
		for i := range gains {
			gains[i] = 0
		}

		return
	}

	out := make([]float64, len(gains))

	for _, idx := range nonLFE {
		if gains[idx] == 0 {
			continue
		}

		target := idx
		if excluded[idx] {
			target = h.route(idx, excluded)
		}

		out[target] += gains[idx]
	}

	normalize(out)

	copy(gains, out)
}

// route finds the destination speaker for gain mass excluded from idx,
// following BS.2127-1's priority cascade: another non-excluded speaker
// in the same row, nearest by azimuth; failing that, the nearest row
// stepping toward ear level (M) that has any non-excluded speaker;
// failing that, the same row's azimuth-mirrored ("opposite side")
// speaker; failing that, any non-excluded speaker in the layout.
func (h *Handler) route(idx int, excluded map[int]bool) int {
	src := h.l.Channels[idx]
	srcRow := rowRank(src.Name)

	if t, ok := h.nearestInRow(srcRow, src.Nominal.Azimuth, excluded, -1); ok {
		return t
	}

	earLevel := indexOf(rowOrder, "M")

	step := 1
	if srcRow > earLevel {
		step = -1
	}

	for row := srcRow + step; row >= 0 && row < len(rowOrder); row += step {
		if t, ok := h.nearestInRow(row, src.Nominal.Azimuth, excluded, -1); ok {
			return t
		}
	}

	if t, ok := h.nearestInRow(srcRow, -src.Nominal.Azimuth, excluded, idx); ok {
		return t
	}

	for _, other := range h.l.NonLFEIndices() {
		if !excluded[other] {
			return other
		}
	}

	return idx
}

// nearestInRow returns the non-excluded speaker in row rowRank closest
// in azimuth to az, excluding the speaker index skip if >= 0.
func (h *Handler) nearestInRow(rowIdx int, az float64, excluded map[int]bool, skip int) (int, bool) {
	best := -1
	bestDiff := math.Inf(1)

	for _, idx := range h.l.NonLFEIndices() {
		if idx == skip || excluded[idx] {
			continue
		}

		c := h.l.Channels[idx]
		if rowRank(c.Name) != rowIdx {
			continue
		}

		d := angularDiff(c.Nominal.Azimuth, az)
		if d < bestDiff {
			bestDiff = d
			best = idx
		}
	}

	if best < 0 {
		return 0, false
	}

	return best, true
}

func angularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}

	return d
}

func normalize(g []float64) {
	sumSq := vecmath.DotProduct(g, g)
	if sumSq == 0 {
		return
	}

	vecmath.ScaleBlockInPlace(g, 1/fastmath.Sqrt(sumSq))
}
