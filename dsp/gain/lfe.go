package gain

import "github.com/cwbudde/algo-admrender/dsp/layout"

// insertLFE zeroes every LFE channel position in an nCh-long gain
// vector. Every region, point-source, allocentric, and extent handler
// in this module already produces nCh-wide output with LFE positions
// implicitly at 0 (they are never written to), so this is the final
// defensive pass BS.2127-1's "insertLFE: expand nChNoLFE -> nCh"
// step collapses to once gains are carried at full channel width
// throughout the pipeline rather than compacted and re-expanded.
func insertLFE(l layout.Layout, gains []float64) {
	for i, c := range l.Channels {
		if c.IsLFE {
			gains[i] = 0
		}
	}
}
