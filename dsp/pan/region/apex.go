package region

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-admrender/dsp/geom"
)

// ApexFan is a ring-to-pole panning region: a ring of n real speakers
// fanned out to a single real apex speaker (e.g. a top pole channel
// like T+000 or a bottom pole like B+000), built as a ring of n
// [Triplet]s (each pair of adjacent ring members plus the apex).
// Unlike [VirtualNgon], the apex here is a real speaker, so gain
// assigned to it by the accepting triplet is kept rather than
// redistributed across the ring.
type ApexFan struct {
	speakers []int // ring members in angular order, apex last
	triplets []Triplet
	apexPos  int
}

// NewApexFan builds an ApexFan from n ring member speaker indices and
// directions plus one real apex speaker index and direction.
func NewApexFan(ringSpeakers []int, ringDirs []geom.CartesianPosition, apexSpeaker int, apexDir geom.CartesianPosition) ApexFan {
	n := len(ringSpeakers)

	basis := geom.LocalCoordinateSystem(func() (float64, float64) {
		p := apexDir.ToPolar()
		return p.Azimuth, p.Elevation
	}())

	type member struct {
		idx   int
		dir   geom.CartesianPosition
		angle float64
	}

	members := make([]member, n)
	for i, d := range ringDirs {
		local := basis.MulVec(d)
		members[i] = member{idx: ringSpeakers[i], dir: d, angle: math.Atan2(local.Z, local.X)}
	}

	sort.Slice(members, func(i, j int) bool { return members[i].angle < members[j].angle })

	triplets := make([]Triplet, n)
	for i := range members {
		next := members[(i+1)%n]
		cur := members[i]

		triplets[i] = NewTriplet(
			[3]int{cur.idx, next.idx, apexSpeaker},
			[3]geom.CartesianPosition{cur.dir, next.dir, apexDir},
		)
	}

	speakers := make([]int, n+1)
	for i, m := range members {
		speakers[i] = m.idx
	}

	speakers[n] = apexSpeaker

	return ApexFan{speakers: speakers, triplets: triplets, apexPos: n}
}

func (a ApexFan) Speakers() []int { return a.speakers }

// CalculateGains implements [Handler].
func (a ApexFan) CalculateGains(dir geom.CartesianPosition) []float64 {
	n := len(a.triplets)
	out := make([]float64, n+1)

	for i, tr := range a.triplets {
		g := tr.CalculateGains(dir)
		if g[0] == 0 && g[1] == 0 && g[2] == 0 {
			continue
		}

		out[i] += g[0]
		out[(i+1)%n] += g[1]
		out[a.apexPos] += g[2]

		return out
	}

	return out
}
