package gain

import (
	"math"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/pan/screen"
	"github.com/cwbudde/algo-admrender/dsp/pan/zoneexclusion"
)

// Divergence is an object's divergence setting: splitting a point
// source into itself plus two virtual sources rotated by +-azimuthRange
// degrees, blended by value.
type Divergence struct {
	Value        float64
	AzimuthRange float64
}

// ChannelLock is an object's channel-lock setting; a nil MaxDistance
// means unconstrained (every non-excluded, non-LFE speaker is eligible).
type ChannelLock struct {
	MaxDistance *float64
}

// ObjectMetadata carries one ADM object's per-block rendering metadata,
// as consumed by [GainCalculator.CalculateGains].
type ObjectMetadata struct {
	// Position is the object's position, polar or cartesian.
	Position geom.Position

	// Width, Height, Depth are the ADM extent values: Width/Height in
	// degrees, Depth in [0,1].
	Width, Height, Depth float64

	// Divergence is nil when the object does not diverge.
	Divergence *Divergence

	// ChannelLock is nil when the object is not channel-locked.
	ChannelLock *ChannelLock

	// ExclusionZones lists the zones this object's audio must avoid.
	ExclusionZones []zoneexclusion.Zone

	// ScreenRef is the reproduction screen geometry; the zero value
	// selects [screen.DefaultDescriptor].
	ScreenRef screen.Descriptor

	// ScreenEdgeLockHorizontal/Vertical request edge-lock on the
	// corresponding axis once ScreenRef is applied.
	ScreenEdgeLockHorizontal bool
	ScreenEdgeLockVertical   bool

	// Diffuse is the diffuse/direct split fraction in [0,1].
	Diffuse float64

	// Gain is the object's overall linear gain in [0, inf).
	Gain float64

	// JumpPosition, when true, requests that a channel-lock or
	// position change apply instantaneously rather than via
	// interpolation; block-to-block interpolation is out of this
	// module's scope, so this flag is carried through unused by
	// CalculateGains itself and is available to calling code that
	// performs its own interpolation between blocks.
	JumpPosition bool
}

// validate reports an [Error] of kind [KindInvalidMetadata] if m carries
// a NaN, out-of-nominal-range, or negative value that would corrupt the
// pipeline.
func (m ObjectMetadata) validate() error {
	if m.Position.IsPolar() {
		p := m.Position.Polar()

		if math.IsNaN(p.Azimuth) || math.IsNaN(p.Elevation) || math.IsNaN(p.Distance) {
			return newError(KindInvalidMetadata, "position: NaN value", nil)
		}
	} else {
		c := m.Position.Cartesian()

		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
			return newError(KindInvalidMetadata, "position: NaN value", nil)
		}
	}

	if math.IsNaN(m.Width) || math.IsNaN(m.Height) || math.IsNaN(m.Depth) {
		return newError(KindInvalidMetadata, "extent: NaN value", nil)
	}

	if m.Depth < 0 || m.Depth > 1 {
		return newError(KindInvalidMetadata, "depth out of range [0,1]", nil)
	}

	if m.Divergence != nil {
		v := m.Divergence.Value
		if math.IsNaN(v) || v < 0 || v > 1 {
			return newError(KindInvalidMetadata, "divergence value out of range [0,1]", nil)
		}

		if math.IsNaN(m.Divergence.AzimuthRange) {
			return newError(KindInvalidMetadata, "divergence azimuthRange: NaN value", nil)
		}
	}

	if m.ChannelLock != nil && m.ChannelLock.MaxDistance != nil {
		d := *m.ChannelLock.MaxDistance
		if math.IsNaN(d) || d < 0 {
			return newError(KindInvalidMetadata, "channelLock.maxDistance must be >= 0", nil)
		}
	}

	if math.IsNaN(m.Diffuse) || m.Diffuse < 0 || m.Diffuse > 1 {
		return newError(KindInvalidMetadata, "diffuse out of range [0,1]", nil)
	}

	if math.IsNaN(m.Gain) || m.Gain < 0 {
		return newError(KindInvalidMetadata, "gain must be >= 0", nil)
	}

	return nil
}
