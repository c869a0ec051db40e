package zoneexclusion

import (
	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
)

// angleTol is the tolerance applied at azimuth/elevation range
// boundaries, matching the general-purpose tolerance used for
// "inside the region" checks elsewhere in the panning pipeline.
const angleTol = 1e-6

// PolarRange is an azimuth/elevation/distance range; a zero-valued
// MaxDistance is treated as unconstrained (speakers are tested at any
// distance).
type PolarRange struct {
	MinAzimuth, MaxAzimuth     float64
	MinElevation, MaxElevation float64
	MinDistance, MaxDistance   float64
}

// CartesianBox is an axis-aligned box in cube coordinates.
type CartesianBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// Zone is an exclusion zone expressed either as a [PolarRange] or a
// [CartesianBox]; exactly one of the two constructors should be used to
// build a given Zone.
type Zone struct {
	polar *PolarRange
	box   *CartesianBox
}

// NewPolarZone builds a Zone from a polar range.
func NewPolarZone(r PolarRange) Zone {
	return Zone{polar: &r}
}

// NewCartesianZone builds a Zone from a cartesian box.
func NewCartesianZone(b CartesianBox) Zone {
	return Zone{box: &b}
}

// Contains reports whether channel c's real position lies inside the zone.
func (z Zone) Contains(c layout.Channel) bool {
	if z.polar != nil {
		return z.containsPolar(c.Real)
	}

	return z.containsCartesian(c.Real.ToUnitVector())
}

func (z Zone) containsPolar(p geom.PolarPosition) bool {
	r := z.polar

	if !geom.InsideAngleRange(p.Azimuth, r.MinAzimuth, r.MaxAzimuth, angleTol) {
		return false
	}

	if p.Elevation < r.MinElevation-angleTol || p.Elevation > r.MaxElevation+angleTol {
		return false
	}

	if r.MaxDistance > 0 && (p.Distance < r.MinDistance || p.Distance > r.MaxDistance) {
		return false
	}

	return true
}

func (z Zone) containsCartesian(v geom.CartesianPosition) bool {
	b := z.box

	return v.X >= b.MinX && v.X <= b.MaxX &&
		v.Y >= b.MinY && v.Y <= b.MaxY &&
		v.Z >= b.MinZ && v.Z <= b.MaxZ
}

// ExcludedSet returns, for every non-LFE channel of l, whether it falls
// inside at least one of zones.
func ExcludedSet(l layout.Layout, zones []Zone) map[int]bool {
	excluded := make(map[int]bool)

	for _, idx := range l.NonLFEIndices() {
		c := l.Channels[idx]

		for _, z := range zones {
			if z.Contains(c) {
				excluded[idx] = true
				break
			}
		}
	}

	return excluded
}
