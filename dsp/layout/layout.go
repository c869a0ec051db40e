package layout

import (
	"fmt"

	"github.com/cwbudde/algo-admrender/dsp/geom"
)

// Channel is a single loudspeaker position within a [Layout].
type Channel struct {
	Name    string
	Nominal geom.PolarPosition
	Real    geom.PolarPosition
	IsLFE   bool

	// Index is this channel's 0-based position in the owning Layout,
	// set by NewLayout.
	Index int
}

// Layout is an ordered, immutable sequence of loudspeaker channels.
// Indices are 0-based and contiguous; LFE channels receive zero gain
// from every panning subsystem in this module.
type Layout struct {
	Name    string
	Channels []Channel

	// AllocentricSupport reports whether this layout defines a cube
	// (room-relative) coordinate partition, enabling dsp/pan/allocentric
	// and cube-coordinate channel lock/extent. 0+2+0 and 0+5+0 do not;
	// 9+10+3 does.
	AllocentricSupport bool

	byName map[string]int
}

// NewLayout builds a Layout from an ordered channel list, assigning
// contiguous 0-based indices. The Index field of each input channel is
// ignored and overwritten.
func NewLayout(name string, channels []Channel, allocentricSupport bool) Layout {
	out := make([]Channel, len(channels))
	byName := make(map[string]int, len(channels))

	for i, c := range channels {
		c.Index = i
		out[i] = c
		byName[c.Name] = i
	}

	return Layout{
		Name:               name,
		Channels:           out,
		AllocentricSupport: allocentricSupport,
		byName:             byName,
	}
}

// NCh returns the total channel count, including LFE.
func (l Layout) NCh() int {
	return len(l.Channels)
}

// NChNoLFE returns the channel count excluding LFE channels.
func (l Layout) NChNoLFE() int {
	n := 0

	for _, c := range l.Channels {
		if !c.IsLFE {
			n++
		}
	}

	return n
}

// HasLFE reports whether the layout has at least one LFE channel.
func (l Layout) HasLFE() bool {
	for _, c := range l.Channels {
		if c.IsLFE {
			return true
		}
	}

	return false
}

// IndexOf returns the channel index for name, and false if no channel
// by that name exists.
func (l Layout) IndexOf(name string) (int, bool) {
	i, ok := l.byName[name]
	return i, ok
}

// NonLFEIndices returns the indices of every non-LFE channel, in layout order.
func (l Layout) NonLFEIndices() []int {
	idx := make([]int, 0, l.NChNoLFE())

	for i, c := range l.Channels {
		if !c.IsLFE {
			idx = append(idx, i)
		}
	}

	return idx
}

// String implements fmt.Stringer for diagnostics.
func (l Layout) String() string {
	return fmt.Sprintf("layout(%s, %d channels)", l.Name, l.NCh())
}
