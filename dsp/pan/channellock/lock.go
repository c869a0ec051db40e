package channellock

import (
	"math"

	"github.com/cwbudde/algo-admrender/dsp/core"
	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
)

// DistanceFunc measures the distance between a source position and a
// candidate speaker position, both expressed as [geom.CartesianPosition].
type DistanceFunc func(source, speaker geom.CartesianPosition) float64

// GreatCircleDistance is the angular distance in radians between two
// directions on the unit sphere, used by a polar-layout [Locker].
func GreatCircleDistance(source, speaker geom.CartesianPosition) float64 {
	d := core.Clamp(source.Normalized().Dot(speaker.Normalized()), -1, 1)
	return math.Acos(d)
}

// EuclideanDistance is ordinary straight-line distance, used by an
// allocentric-layout [Locker].
func EuclideanDistance(source, speaker geom.CartesianPosition) float64 {
	return source.Sub(speaker).Length()
}

// rowPriority ranks channel-name prefixes from lowest (floor) to
// highest (ceiling) numeric priority, so that -priority sorts a
// ceiling speaker ahead of a floor speaker in the tie-break tuple.
var rowPriority = map[string]int{"T": 4, "U": 3, "M": 2, "L": 1, "B": 0}

func priorityOf(name string) int {
	if len(name) == 0 {
		return 0
	}

	p, ok := rowPriority[name[:1]]
	if !ok {
		return 0
	}

	return p
}

// Result is the outcome of a channel-lock attempt.
type Result struct {
	// Locked is false when no eligible candidate speaker exists (every
	// speaker excluded, or all farther than maxDistance); callers keep
	// the object's original position in that case.
	Locked   bool
	Index    int
	Position geom.PolarPosition
}

// Locker implements BS.2127-1 §7.3.6 channel locking for one layout
// and distance function.
type Locker struct {
	l    layout.Layout
	dist DistanceFunc
}

// NewPolarLocker builds a Locker using great-circle angular distance.
func NewPolarLocker(l layout.Layout) *Locker {
	return &Locker{l: l, dist: GreatCircleDistance}
}

// NewAllocentricLocker builds a Locker using Euclidean cube-coordinate
// distance.
func NewAllocentricLocker(l layout.Layout) *Locker {
	return &Locker{l: l, dist: EuclideanDistance}
}

// tol is the distance tolerance used to collect near-tied candidates
// around the minimum distance.
const tol = 1e-6

type candidate struct {
	idx int
	d   float64
}

// Lock attempts to snap source onto a loudspeaker. excluded marks
// speaker indices ineligible for locking (e.g. zone-excluded
// channels); maxDistance, if non-nil, discards candidates farther than
// *maxDistance before the nearest-distance search.
func (lk *Locker) Lock(source geom.CartesianPosition, excluded map[int]bool, maxDistance *float64) Result {
	var all []candidate

	for _, idx := range lk.l.NonLFEIndices() {
		if excluded[idx] {
			continue
		}

		c := lk.l.Channels[idx]
		all = append(all, candidate{idx: idx, d: lk.dist(source, c.Real.ToUnitVector())})
	}

	if len(all) == 0 {
		return Result{}
	}

	filtered := all

	if maxDistance != nil {
		filtered = filtered[:0:0]

		for _, c := range all {
			if c.d <= *maxDistance {
				filtered = append(filtered, c)
			}
		}

		if len(filtered) == 0 {
			return Result{}
		}
	}

	dmin := math.Inf(1)
	for _, c := range filtered {
		if c.d < dmin {
			dmin = c.d
		}
	}

	var within []candidate
	for _, c := range filtered {
		if c.d <= dmin+tol {
			within = append(within, c)
		}
	}

	best := within[0]
	bestTuple := lk.tuple(best.idx)

	for _, c := range within[1:] {
		t := lk.tuple(c.idx)
		if lessTuple(t, bestTuple) {
			best = c
			bestTuple = t
		}
	}

	return Result{Locked: true, Index: best.idx, Position: lk.l.Channels[best.idx].Real}
}

func (lk *Locker) tuple(idx int) [3]float64 {
	c := lk.l.Channels[idx]
	return [3]float64{
		-float64(priorityOf(c.Name)),
		math.Abs(c.Nominal.Azimuth),
		math.Abs(c.Nominal.Elevation),
	}
}

func lessTuple(a, b [3]float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
