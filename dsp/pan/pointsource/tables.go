package pointsource

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
	"github.com/cwbudde/algo-admrender/dsp/pan/region"
)

// layerTolerance groups channels whose nominal elevation differs by
// less than this many degrees into the same horizontal ring.
const layerTolerance = 1.0

// poleThreshold is the elevation magnitude beyond which a single-member
// ring is treated as a real pole speaker (e.g. T+000, B+000) rather
// than a ring needing a synthetic zenith/nadir fan.
const poleThreshold = 80.0

// layer is one horizontal ring of a layout: every non-LFE channel
// sharing (within layerTolerance) a nominal elevation, in azimuth
// order. BS.2127 layouts are built from a small number of these rings
// (e.g. 0+5+0 has a single mid ring; 9+10+3 has bottom/mid/upper rings
// plus a single-channel top pole), so grouping by elevation recovers
// the per-layout-name region table from the layout's own channel data
// instead of a hand-authored mesh per layout.
type layer struct {
	elevation float64
	members   []int
}

func (ly layer) isPole() bool {
	return len(ly.members) == 1 && math.Abs(ly.elevation) >= poleThreshold
}

// buildRegions partitions l's non-LFE speakers into elevation layers
// and covers the sphere with: a zenith-side cap on the topmost layer, a
// nadir-side cap on the bottommost layer (a real apex fan if that
// layer is a true pole speaker, otherwise a virtual ring fan), and a
// quad strip between every pair of adjacent non-pole layers.
func buildRegions(l layout.Layout, nonLFE []int) []region.Handler {
	layers := groupLayers(l, nonLFE)
	if len(layers) == 0 {
		return nil
	}

	var regions []region.Handler

	regions = append(regions, capLayer(l, layers, len(layers)-1, true)...)
	regions = append(regions, capLayer(l, layers, 0, false)...)

	for i := 0; i+1 < len(layers); i++ {
		if layers[i].isPole() || layers[i+1].isPole() {
			continue
		}

		regions = append(regions, quadStrip(l, layers[i], layers[i+1])...)
	}

	return regions
}

func groupLayers(l layout.Layout, nonLFE []int) []layer {
	byElev := map[float64][]int{}

	for _, idx := range nonLFE {
		el := l.Channels[idx].Nominal.Elevation
		key := math.Round(el/layerTolerance) * layerTolerance
		byElev[key] = append(byElev[key], idx)
	}

	elevations := make([]float64, 0, len(byElev))
	for e := range byElev {
		elevations = append(elevations, e)
	}

	sort.Float64s(elevations)

	layers := make([]layer, len(elevations))

	for i, e := range elevations {
		members := byElev[e]
		sort.Slice(members, func(a, b int) bool {
			return l.Channels[members[a]].Nominal.Azimuth < l.Channels[members[b]].Nominal.Azimuth
		})

		layers[i] = layer{elevation: e, members: members}
	}

	return layers
}

// capLayer closes off the extreme (top when top is true, otherwise
// bottom) layer of the stack.
func capLayer(l layout.Layout, layers []layer, i int, top bool) []region.Handler {
	ly := layers[i]

	if ly.isPole() {
		next := i + 1
		if top {
			next = i - 1
		}

		if next < 0 || next >= len(layers) {
			return nil
		}

		apexIdx := ly.members[0]
		apexDir := l.Channels[apexIdx].Nominal.ToUnitVector()

		return []region.Handler{apexFanFor(l, layers[next], apexIdx, apexDir)}
	}

	centre := geom.CartesianPosition{Z: 1}
	if !top {
		centre = geom.CartesianPosition{Z: -1}
	}

	return []region.Handler{ringFan(l, ly, centre)}
}

func ringFan(l layout.Layout, ly layer, centre geom.CartesianPosition) region.Handler {
	dirs := make([]geom.CartesianPosition, len(ly.members))
	for i, idx := range ly.members {
		dirs[i] = l.Channels[idx].Nominal.ToUnitVector()
	}

	return region.NewVirtualNgonAround(ly.members, dirs, centre)
}

func apexFanFor(l layout.Layout, ring layer, apexIdx int, apexDir geom.CartesianPosition) region.Handler {
	dirs := make([]geom.CartesianPosition, len(ring.members))
	for i, idx := range ring.members {
		dirs[i] = l.Channels[idx].Nominal.ToUnitVector()
	}

	return region.NewApexFan(ring.members, dirs, apexIdx, apexDir)
}

// quadStrip connects two adjacent rings with a strip of [QuadRegion]s,
// one per edge of whichever ring has fewer members; each quad's far
// edge is completed with the nearest-by-azimuth member of the other
// ring, so rings of unequal channel counts (e.g. a 5-channel mid ring
// under a 4-channel upper ring) still produce full angular coverage.
func quadStrip(l layout.Layout, lower, upper layer) []region.Handler {
	outer, inner := lower, upper
	if len(upper.members) <= len(lower.members) {
		outer, inner = upper, lower
	}

	n := len(outer.members)
	handlers := make([]region.Handler, 0, n)

	for i := 0; i < n; i++ {
		a := outer.members[i]
		b := outer.members[(i+1)%n]

		aAz := l.Channels[a].Nominal.Azimuth
		bAz := l.Channels[b].Nominal.Azimuth

		ia := nearestByAzimuth(l, inner.members, aAz)
		ib := nearestByAzimuth(l, inner.members, bAz)

		corners := [4]geom.CartesianPosition{
			l.Channels[a].Nominal.ToUnitVector(),
			l.Channels[b].Nominal.ToUnitVector(),
			l.Channels[ib].Nominal.ToUnitVector(),
			l.Channels[ia].Nominal.ToUnitVector(),
		}

		handlers = append(handlers, region.NewQuadRegion([4]int{a, b, ib, ia}, corners))
	}

	return handlers
}

func nearestByAzimuth(l layout.Layout, members []int, az float64) int {
	best := members[0]
	bestDiff := math.Inf(1)

	for _, idx := range members {
		d := angularDiff(l.Channels[idx].Nominal.Azimuth, az)
		if d < bestDiff {
			bestDiff = d
			best = idx
		}
	}

	return best
}

func angularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}

	return d
}
