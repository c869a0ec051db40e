package screen

import "github.com/cwbudde/algo-admrender/dsp/geom"

// EdgeLock snaps a source position onto a screen's edge along the
// metadata-selected axis (or axes) once it lies outside the screen's
// angular extent.
type EdgeLock struct {
	screen Descriptor
}

// NewEdgeLock builds an EdgeLock against screen.
func NewEdgeLock(screen Descriptor) EdgeLock {
	return EdgeLock{screen: screen}
}

// Apply snaps pos's azimuth to the nearer screen edge when horizontal
// is set and pos.Azimuth lies outside [AzimuthMin, AzimuthMax], and
// likewise snaps elevation when vertical is set.
func (l EdgeLock) Apply(pos geom.PolarPosition, horizontal, vertical bool) geom.PolarPosition {
	if horizontal {
		pos.Azimuth = clampEdge(pos.Azimuth, l.screen.AzimuthMin, l.screen.AzimuthMax)
	}

	if vertical {
		pos.Elevation = clampEdge(pos.Elevation, l.screen.ElevationMin, l.screen.ElevationMax)
	}

	return pos
}

func clampEdge(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
