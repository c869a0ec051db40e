package gain

import (
	"math"

	"github.com/cwbudde/algo-admrender/dsp/geom"
)

// divergedPosition is one of the (1 or 3) positions produced by
// [diverge], paired with its linear mixing weight.
type divergedPosition struct {
	pos  geom.Position
	gain float64
}

// diverge implements BS.2127-1 §7.3.7: with no divergence setting, the
// position is returned unchanged with unit gain. Otherwise it returns
// the position itself plus two copies rotated +-azimuthRange degrees
// about the origin, weighted [(1-v)/(1+v), v/(1+v), v/(1+v)]; the three
// weights sum to 1 regardless of v, so the diverged mix never changes
// the source's total linear gain budget.
//
// Divergence rotates whichever representation (polar or cartesian) the
// position already carries at this point in the pipeline and is applied
// identically either way; per Design Notes this is deliberate — the
// source flags asymmetric behavior under cartesian<->polar conversion
// as a suspected ITU equation bug and leaves it uncorrected, and this
// implementation preserves that rather than inventing a fix.
func diverge(pos geom.Position, d *Divergence) []divergedPosition {
	if d == nil {
		return []divergedPosition{{pos: pos, gain: 1}}
	}

	v := d.Value
	denom := 1 + v

	centreGain := (1 - v) / denom
	sideGain := v / denom

	return []divergedPosition{
		{pos: pos, gain: centreGain},
		{pos: rotateAzimuth(pos, d.AzimuthRange), gain: sideGain},
		{pos: rotateAzimuth(pos, -d.AzimuthRange), gain: sideGain},
	}
}

// rotateAzimuth rotates pos by deltaDeg degrees of azimuth, about the
// origin, preserving its representation (polar or cartesian) and its
// elevation/distance or Z component.
func rotateAzimuth(pos geom.Position, deltaDeg float64) geom.Position {
	if pos.IsPolar() {
		p := pos.Polar()
		p.Azimuth = geom.WrapAzimuth(p.Azimuth + deltaDeg)

		return geom.NewPolarPosition(p)
	}

	c := pos.Cartesian()
	rad := deltaDeg * math.Pi / 180

	cosD := math.Cos(rad)
	sinD := math.Sin(rad)

	return geom.NewCartesianPosition(geom.CartesianPosition{
		X: cosD*c.X - sinD*c.Y,
		Y: sinD*c.X + cosD*c.Y,
		Z: c.Z,
	})
}
