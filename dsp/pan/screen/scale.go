package screen

import "github.com/cwbudde/algo-admrender/dsp/geom"

// ScaleHandler remaps positions from the reference screen's geometry to
// the reproduction screen's, leaving distance untouched.
type ScaleHandler struct {
	ref, rep Descriptor
}

// NewScaleHandler builds a ScaleHandler warping positions expressed
// relative to ref onto rep.
func NewScaleHandler(ref, rep Descriptor) ScaleHandler {
	return ScaleHandler{ref: ref, rep: rep}
}

// Apply returns pos warped from the reference to the reproduction
// screen geometry, azimuth and elevation independently.
func (h ScaleHandler) Apply(pos geom.PolarPosition) geom.PolarPosition {
	pos.Azimuth = remapAxis(pos.Azimuth, h.ref.AzimuthMin, h.ref.AzimuthMax, h.rep.AzimuthMin, h.rep.AzimuthMax, 180)
	pos.Elevation = remapAxis(pos.Elevation, h.ref.ElevationMin, h.ref.ElevationMax, h.rep.ElevationMin, h.rep.ElevationMax, 90)

	return pos
}

// remapAxis applies BS.2127-1's three-segment piecewise-linear screen
// warp along one axis: inside [refMin, refMax] the value scales
// linearly onto [repMin, repMax]; outside it, the value scales linearly
// from the reference edge out to the axis limit (+-limit) onto the
// reproduction edge out to the same limit, so the warp is continuous at
// the screen edges and identity at the axis limit.
func remapAxis(v, refMin, refMax, repMin, repMax, limit float64) float64 {
	switch {
	case v >= refMin && v <= refMax:
		return lerp(v, refMin, refMax, repMin, repMax)
	case v > refMax:
		return lerp(v, refMax, limit, repMax, limit)
	default:
		return lerp(v, -limit, refMin, -limit, repMin)
	}
}

// lerp maps v from [loIn, hiIn] onto [loOut, hiOut], assuming
// loIn != hiIn.
func lerp(v, loIn, hiIn, loOut, hiOut float64) float64 {
	span := hiIn - loIn
	if span == 0 {
		return loOut
	}

	t := (v - loIn) / span

	return loOut + t*(hiOut-loOut)
}
