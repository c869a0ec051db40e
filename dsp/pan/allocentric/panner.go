package allocentric

import (
	"errors"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
	"github.com/cwbudde/algo-admrender/internal/fastmath"
)

// ErrNotSupported is returned by [NewPanner] when the layout does not
// declare allocentric support.
var ErrNotSupported = errors.New("allocentric: layout does not support allocentric panning")

// bucketEpsilon is the half-width around zero used to classify a cube
// coordinate as the centre (as opposed to left/right or front/back)
// column or aisle.
const bucketEpsilon = 1e-6

// rowPriority ranks the channel-name prefixes BS.2127-1 recognizes for
// row substitution, ceiling first (highest priority, tried first as a
// substitute) down to floor.
var rowPriority = []string{"T", "U", "M", "L", "B"}

func rowPrefix(name string) string {
	if len(name) == 0 {
		return ""
	}

	return name[:1]
}

// cell is one (layer, x-bucket, y-bucket) grid position; members holds
// the non-LFE speaker indices whose nominal direction falls there.
type cell struct {
	members []int
}

// Panner computes allocentric (room-relative) gains for one layout.
type Panner struct {
	l layout.Layout

	pos map[int]geom.CartesianPosition

	layerElev []float64      // distinct layer elevations, ascending
	layerName []string       // row-priority prefix per layer, same order as layerElev
	cells     map[[3]int][]int // (layerIdx, bucketX, bucketY) -> speaker indices
}

// NewPanner builds an allocentric Panner for l. Returns [ErrNotSupported]
// if l does not declare allocentric support.
func NewPanner(l layout.Layout) (*Panner, error) {
	if !l.AllocentricSupport {
		return nil, ErrNotSupported
	}

	p := &Panner{
		l:     l,
		pos:   map[int]geom.CartesianPosition{},
		cells: map[[3]int][]int{},
	}

	layerOf := map[float64]int{}

	for _, idx := range l.NonLFEIndices() {
		c := l.Channels[idx]
		v := c.Nominal.ToUnitVector()
		p.pos[idx] = v

		el := math.Round(c.Nominal.Elevation*10) / 10

		layerIdx, ok := layerOf[el]
		if !ok {
			layerIdx = len(p.layerElev)
			layerOf[el] = layerIdx
			p.layerElev = append(p.layerElev, el)
			p.layerName = append(p.layerName, rowPrefix(c.Name))
		}

		key := [3]int{layerIdx, bucket(v.X), bucket(v.Y)}
		p.cells[key] = append(p.cells[key], idx)
	}

	order := make([]int, len(p.layerElev))
	for i := range order {
		order[i] = i
	}

	sort.Slice(order, func(i, j int) bool { return p.layerElev[order[i]] < p.layerElev[order[j]] })

	sortedElev := make([]float64, len(order))
	sortedName := make([]string, len(order))

	for newIdx, oldIdx := range order {
		sortedElev[newIdx] = p.layerElev[oldIdx]
		sortedName[newIdx] = p.layerName[oldIdx]
	}

	remap := make([]int, len(order))
	for newIdx, oldIdx := range order {
		remap[oldIdx] = newIdx
	}

	remappedCells := make(map[[3]int][]int, len(p.cells))
	for k, v := range p.cells {
		k[0] = remap[k[0]]
		remappedCells[k] = v
	}

	p.layerElev = sortedElev
	p.layerName = sortedName
	p.cells = remappedCells

	return p, nil
}

// bucket classifies a cube coordinate into -1 (negative side), 0
// (centred within bucketEpsilon), or 1 (positive side).
func bucket(v float64) int {
	if v < -bucketEpsilon {
		return -1
	}

	if v > bucketEpsilon {
		return 1
	}

	return 0
}

// hatWeights returns the triangular interpolation weights for the
// three bucket anchors -1, 0, 1 given a target coordinate, clamped at
// the ends of [-1, 1].
func hatWeights(target float64) map[int]float64 {
	target = geom.Clamp(target, -1, 1)

	w := map[int]float64{}

	switch {
	case target <= -1:
		w[-1] = 1
	case target < 0:
		w[-1] = -target
		w[0] = 1 + target
	case target == 0:
		w[0] = 1
	case target < 1:
		w[0] = 1 - target
		w[1] = target
	default:
		w[1] = 1
	}

	return w
}

// layerWeights returns the bracket-interpolation weight for each layer
// index given a target z coordinate.
func (p *Panner) layerWeights(targetZ float64) map[int]float64 {
	n := len(p.layerElev)
	if n == 0 {
		return nil
	}

	targetDeg := math.Asin(geom.Clamp(targetZ, -1, 1)) * 180 / math.Pi

	if n == 1 {
		return map[int]float64{0: 1}
	}

	if targetDeg <= p.layerElev[0] {
		return map[int]float64{0: 1}
	}

	if targetDeg >= p.layerElev[n-1] {
		return map[int]float64{n - 1: 1}
	}

	for i := 0; i+1 < n; i++ {
		lo, hi := p.layerElev[i], p.layerElev[i+1]
		if targetDeg >= lo && targetDeg <= hi {
			span := hi - lo
			if span == 0 {
				return map[int]float64{i: 1}
			}

			wHi := (targetDeg - lo) / span
			return map[int]float64{i: 1 - wHi, i + 1: wHi}
		}
	}

	return map[int]float64{n - 1: 1}
}

// substituteLayer finds the highest-priority layer other than skip that
// has a non-empty cell at (bucketX, bucketY), searching BS.2127-1's
// fixed ceiling>upper>mid>lower>floor order.
func (p *Panner) substituteLayer(skip, bucketX, bucketY int) (int, bool) {
	for _, prefix := range rowPriority {
		for i, name := range p.layerName {
			if i == skip || name != prefix {
				continue
			}

			if len(p.cells[[3]int{i, bucketX, bucketY}]) > 0 {
				return i, true
			}
		}
	}

	return 0, false
}

// CalculateGains returns a gain for every channel in the panner's
// layout (LFE always 0) for the cube-coordinate target position.
func (p *Panner) CalculateGains(target geom.CartesianPosition) []float64 {
	out := make([]float64, p.l.NCh())

	wx := hatWeights(target.X)
	wy := hatWeights(target.Y)
	wz := p.layerWeights(target.Z)

	for layerIdx, lw := range wz {
		for bx, xw := range wx {
			for by, yw := range wy {
				weight := lw * xw * yw
				if weight == 0 {
					continue
				}

				members := p.cells[[3]int{layerIdx, bx, by}]

				if len(members) == 0 {
					sub, ok := p.substituteLayer(layerIdx, bx, by)
					if !ok {
						continue
					}

					members = p.cells[[3]int{sub, bx, by}]
				}

				share := weight / float64(len(members))
				for _, m := range members {
					out[m] += share
				}
			}
		}
	}

	normalize(out)

	return out
}

func normalize(g []float64) {
	sumSq := vecmath.DotProduct(g, g)
	if sumSq == 0 {
		return
	}

	vecmath.ScaleBlockInPlace(g, 1/fastmath.Sqrt(sumSq))
}
