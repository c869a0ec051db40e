package region

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/internal/fastmath"
)

// VirtualNgon is an N-sided panning region (N > 3) synthesized by
// adding a virtual centre speaker at the mean direction of its real
// members, then splitting into a ring of N [Triplet]s (each pair of
// adjacent members plus the virtual centre). Gain mass assigned to the
// virtual centre by the accepting triplet is redistributed back to the
// real members equally, scaled by 1/sqrt(N) to preserve total power, per
// BS.2127-1 §7.1.3.
type VirtualNgon struct {
	speakers []int
	triplets []Triplet

	// centreWeight is the per-member share (1/sqrt(n)) used to
	// redistribute virtual-centre gain back onto real speakers.
	centreWeight float64
}

// NewVirtualNgon builds a VirtualNgon from n >= 4 member speaker
// indices and their unit direction vectors, in angular order around
// the region (order does not need to be pre-sorted; it is sorted here
// by angle from the synthesized centre). The centre is the normalized
// mean of the member directions; for a layout whose members encircle
// the listener (e.g. a horizontal ring of mid-layer speakers) that mean
// is near zero, so use [NewVirtualNgonAround] to supply an explicit
// centre direction instead (typically the zenith or nadir).
func NewVirtualNgon(speakers []int, dirs []geom.CartesianPosition) VirtualNgon {
	centre := geom.CartesianPosition{}
	for _, d := range dirs {
		centre = centre.Add(d)
	}

	return newVirtualNgon(speakers, dirs, centre.Normalized())
}

// NewVirtualNgonAround builds a VirtualNgon using an explicit,
// caller-supplied centre direction rather than the mean of the member
// directions.
func NewVirtualNgonAround(speakers []int, dirs []geom.CartesianPosition, centre geom.CartesianPosition) VirtualNgon {
	return newVirtualNgon(speakers, dirs, centre.Normalized())
}

func newVirtualNgon(speakers []int, dirs []geom.CartesianPosition, centre geom.CartesianPosition) VirtualNgon {
	n := len(speakers)

	basis := geom.LocalCoordinateSystem(func() (float64, float64) {
		p := centre.ToPolar()
		return p.Azimuth, p.Elevation
	}())

	type member struct {
		idx   int
		dir   geom.CartesianPosition
		angle float64
	}

	members := make([]member, n)
	for i, d := range dirs {
		local := basis.MulVec(d)
		members[i] = member{idx: speakers[i], dir: d, angle: math.Atan2(local.Z, local.X)}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].angle < members[j].angle })

	triplets := make([]Triplet, n)
	for i := range members {
		next := members[(i+1)%n]
		cur := members[i]

		triplets[i] = NewTriplet(
			[3]int{cur.idx, next.idx, -1},
			[3]geom.CartesianPosition{cur.dir, next.dir, centre},
		)
	}

	sortedSpeakers := make([]int, n)
	for i, m := range members {
		sortedSpeakers[i] = m.idx
	}

	return VirtualNgon{
		speakers:     sortedSpeakers,
		triplets:     triplets,
		centreWeight: 1 / fastmath.Sqrt(float64(n)),
	}
}

func (v VirtualNgon) Speakers() []int { return v.speakers }

// CalculateGains implements [Handler]. It scans the ring of triplets in
// order, accepting the first whose in-triangle test is satisfied (per
// BS.2127-1's "first accepting triplet" scan, not a winner-take-all
// search over all of them), and redistributes any gain assigned to the
// virtual centre across all real members.
func (v VirtualNgon) CalculateGains(dir geom.CartesianPosition) []float64 {
	n := len(v.speakers)
	out := make([]float64, n)

	for i, tr := range v.triplets {
		g := tr.CalculateGains(dir)
		if g[0] == 0 && g[1] == 0 && g[2] == 0 {
			continue
		}

		out[i] += g[0]
		out[(i+1)%n] += g[1]

		centreGain := g[2]
		if centreGain != 0 {
			share := centreGain * v.centreWeight
			for j := range out {
				out[j] += share
			}
		}

		normalizeInPlace(out)

		return out
	}

	return out
}
