package pointsource

import (
	"errors"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
	"github.com/cwbudde/algo-admrender/dsp/pan/region"
)

// ErrEmptyLayout is returned by [NewPanner] when the layout has no
// non-LFE channels to pan across.
var ErrEmptyLayout = errors.New("pointsource: layout has no non-LFE channels")

// Panner computes point-source loudspeaker gains for a fixed [layout.Layout].
// The region list is built once at construction and reused for every
// CalculateGains call; a Panner is safe for concurrent read-only use.
type Panner struct {
	l       layout.Layout
	regions []region.Handler
}

// NewPanner builds a Panner covering l's non-LFE channels.
func NewPanner(l layout.Layout) (*Panner, error) {
	nonLFE := l.NonLFEIndices()
	if len(nonLFE) == 0 {
		return nil, ErrEmptyLayout
	}

	return &Panner{l: l, regions: buildRegions(l, nonLFE)}, nil
}

// CalculateGains returns a gain for every channel in the panner's
// layout (LFE channels always 0) for the unit direction vector dir. It
// scans the region list in order and returns the first region's result
// that is not all-zero.
func (p *Panner) CalculateGains(dir geom.CartesianPosition) []float64 {
	out := make([]float64, p.l.NCh())

	for _, h := range p.regions {
		g := h.CalculateGains(dir)

		nonZero := false

		for _, v := range g {
			if v != 0 {
				nonZero = true
				break
			}
		}

		if !nonZero {
			continue
		}

		for i, sp := range h.Speakers() {
			out[sp] += g[i]
		}

		return out
	}

	return out
}
