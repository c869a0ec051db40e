package extent

import "github.com/cwbudde/algo-admrender/dsp/geom"

// AmbisonicEncoder produces Ambisonic encoding coefficients for a
// unit-gain point source at a given direction. Decoding to loudspeaker
// or binaural output is out of this module's scope; callers plug in
// whatever encoder matches their target Ambisonic order and
// normalization.
type AmbisonicEncoder interface {
	Encode(dir geom.CartesianPosition) []float64
}

// AmbisonicHandler integrates a polar (w,h) extent the same way
// [PolarHandler] does, but accumulates Ambisonic coefficients from an
// [AmbisonicEncoder] instead of loudspeaker gains; depth blends in the
// encoder's own zeroth-order (omnidirectional) response rather than a
// per-speaker uniform share.
type AmbisonicHandler struct {
	encoder AmbisonicEncoder
}

// NewAmbisonicHandler builds an AmbisonicHandler wrapping encoder.
func NewAmbisonicHandler(encoder AmbisonicEncoder) *AmbisonicHandler {
	return &AmbisonicHandler{encoder: encoder}
}

// CalculateCoefficients returns the integrated Ambisonic coefficient
// vector for a source at pos with extent (width, height, depth).
func (h *AmbisonicHandler) CalculateCoefficients(pos geom.PolarPosition, width, height, depth float64) []float64 {
	var out []float64

	for _, s := range polarGrid(pos, width, height) {
		c := h.encoder.Encode(s.dir)

		if out == nil {
			out = make([]float64, len(c))
		}

		for i, v := range c {
			out[i] += s.weight * v
		}
	}

	if depth > 0 && len(out) > 0 {
		// W (channel 0) is the omnidirectional Ambisonic component;
		// blending depth toward it models a source radiating equally
		// from every direction as it approaches the listener.
		zeroth := make([]float64, len(out))
		zeroth[0] = out[0]

		for i := range out {
			out[i] = (1-depth)*out[i] + depth*zeroth[i]
		}
	}

	return out
}
