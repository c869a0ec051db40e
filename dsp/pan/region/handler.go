package region

import "github.com/cwbudde/algo-admrender/dsp/geom"

// Handler computes loudspeaker gains for a single panning region. All
// implementations return a gain slice the same length as Speakers(),
// all zero when dir falls outside the region.
type Handler interface {
	// CalculateGains returns the gain contributed to each of this
	// region's member speakers for the unit direction vector dir.
	CalculateGains(dir geom.CartesianPosition) []float64

	// Speakers returns the layout channel indices this region covers,
	// in the same order as the gain slice CalculateGains returns.
	Speakers() []int
}
