package gain

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-admrender/dsp/admconv"
	"github.com/cwbudde/algo-admrender/dsp/core"
	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
	"github.com/cwbudde/algo-admrender/dsp/pan/allocentric"
	"github.com/cwbudde/algo-admrender/dsp/pan/channellock"
	"github.com/cwbudde/algo-admrender/dsp/pan/extent"
	"github.com/cwbudde/algo-admrender/dsp/pan/pointsource"
	"github.com/cwbudde/algo-admrender/dsp/pan/screen"
	"github.com/cwbudde/algo-admrender/dsp/pan/zoneexclusion"
	"github.com/cwbudde/algo-admrender/internal/fastmath"
)

// GainCalculator is the public entry point of this module: it turns one
// ADM object's per-block [ObjectMetadata] into direct and diffuse gain
// vectors for a fixed [layout.Layout], implementing the BS.2127-1
// §4.11 pipeline. A GainCalculator holds instance-owned scratch
// buffers and is not safe for concurrent CalculateGains calls on the
// same instance; independent instances share no state and may run on
// independent goroutines freely.
type GainCalculator struct {
	layout layout.Layout
	cfg    config

	pointSource *pointsource.Panner
	allocentric *allocentric.Panner

	polarExtent     *extent.PolarHandler
	allocentricExt  *extent.AllocentricHandler
	ambisonicExt    *extent.AmbisonicHandler

	locker      *channellock.Locker
	zoneHandler *zoneexclusion.Handler

	// gains is the instance-owned scratch accumulator for the weighted
	// sum of diverged-position panning results, resized in place to
	// avoid per-call heap traffic on the steady-state path.
	gains []float64
}

// NewGainCalculator builds a GainCalculator for l. It fails with
// [KindUnsupportedLayout] if l is not one of the recognized BS.2127
// layouts in [layout.Catalog].
func NewGainCalculator(l layout.Layout, opts ...Option) (*GainCalculator, error) {
	if cat, ok := layout.Catalog()[l.Name]; !ok || cat.NCh() != l.NCh() {
		return nil, newError(KindUnsupportedLayout, fmt.Sprintf("layout %q is not a recognized BS.2127 layout", l.Name), nil)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, newError(KindInvalidMetadata, "applying options", err)
	}

	ps, err := pointsource.NewPanner(l)
	if err != nil {
		return nil, newError(KindUnsupportedLayout, "building point-source panner", err)
	}

	g := &GainCalculator{
		layout:      l,
		cfg:         cfg,
		pointSource: ps,
		polarExtent: extent.NewPolarHandler(ps, l.NCh()),
		zoneHandler: zoneexclusion.NewHandler(l),
		gains:       make([]float64, l.NCh()),
	}

	if l.AllocentricSupport {
		alloc, err := allocentric.NewPanner(l)
		if err != nil {
			return nil, newError(KindUnsupportedLayout, "building allocentric panner", err)
		}

		g.allocentric = alloc
		g.allocentricExt = extent.NewAllocentricHandler(alloc, l.NCh())
		g.locker = channellock.NewAllocentricLocker(l)
	} else {
		g.locker = channellock.NewPolarLocker(l)
	}

	if cfg.ambisonicEncoder != nil {
		g.ambisonicExt = extent.NewAmbisonicHandler(cfg.ambisonicEncoder)
	}

	return g, nil
}

// screenRefOrDefault returns m.ScreenRef, substituting
// [screen.DefaultDescriptor] when it is the zero value.
func (m ObjectMetadata) screenRefOrDefault() screen.Descriptor {
	if m.ScreenRef == (screen.Descriptor{}) {
		return screen.DefaultDescriptor
	}

	return m.ScreenRef
}

// resolvePosition runs §4.11 steps 1-5: the toPolar/toCartesian
// normalization for the layout's coordinate system, screen scaling and
// edge lock, and channel lock. It returns the resolved position and the
// zone-excluded speaker set (needed by both channel lock and the
// zone-exclusion gain redistribution step).
func (g *GainCalculator) resolvePosition(m ObjectMetadata) (geom.Position, map[int]bool) {
	pos := m.Position

	switch {
	case !g.layout.AllocentricSupport && !pos.IsPolar():
		pos = geom.NewPolarPosition(admconv.PointCartToPolar(pos.Cartesian()))
	case g.layout.AllocentricSupport && pos.IsPolar():
		pos = geom.NewCartesianPosition(admconv.PointPolarToCart(pos.Polar()))
	}

	// Screen scale/edge-lock is defined in azimuth/elevation; it only
	// applies once the position is carried in polar form.
	if !g.layout.AllocentricSupport {
		p := pos.Polar()
		rep := m.screenRefOrDefault()

		p = screen.NewScaleHandler(g.cfg.referenceScreen, rep).Apply(p)

		if m.ScreenEdgeLockHorizontal || m.ScreenEdgeLockVertical {
			p = screen.NewEdgeLock(rep).Apply(p, m.ScreenEdgeLockHorizontal, m.ScreenEdgeLockVertical)
		}

		pos = geom.NewPolarPosition(p)
	}

	excluded := zoneexclusion.ExcludedSet(g.layout, m.ExclusionZones)

	if m.ChannelLock != nil {
		var source geom.CartesianPosition
		if g.layout.AllocentricSupport {
			source = pos.Cartesian()
		} else {
			source = pos.Polar().ToUnitVector()
		}

		res := g.locker.Lock(source, excluded, m.ChannelLock.MaxDistance)
		if res.Locked {
			if g.layout.AllocentricSupport {
				pos = geom.NewCartesianPosition(admconv.PointPolarToCart(res.Position))
			} else {
				pos = geom.NewPolarPosition(res.Position)
			}
		}
	}

	return pos, excluded
}

// panOne computes the gain vector (length nCh) for a single diverged
// position, dispatching to the extent panner when the object has a
// non-zero width/height/depth, else the plain point-source/allocentric
// panner (§4.11 step 7).
func (g *GainCalculator) panOne(pos geom.Position, m ObjectMetadata) []float64 {
	hasExtent := m.Width > 0 || m.Height > 0 || m.Depth > 0

	if g.layout.AllocentricSupport {
		cube := pos.Cartesian()

		if hasExtent {
			return g.allocentricExt.CalculateGains(cube, m.Width, m.Height, m.Depth)
		}

		return g.allocentric.CalculateGains(cube)
	}

	p := pos.Polar()

	if hasExtent {
		return g.polarExtent.CalculateGains(p, m.Width, m.Height, m.Depth)
	}

	return g.pointSource.CalculateGains(p.ToUnitVector())
}

// CalculateGains implements the full BS.2127-1 §4.11 pipeline for one
// object metadata block, writing equal-length direct and diffuse gain
// vectors (resized in place to the layout's channel count) into
// *directGains and *diffuseGains.
func (g *GainCalculator) CalculateGains(m ObjectMetadata, directGains, diffuseGains *[]float64) error {
	if err := m.validate(); err != nil {
		return err
	}

	nCh := g.layout.NCh()
	*directGains = core.EnsureLen(*directGains, nCh)
	*diffuseGains = core.EnsureLen(*diffuseGains, nCh)

	pos, excluded := g.resolvePosition(m)

	diverged := diverge(pos, m.Divergence)

	core.Zero(g.gains)

	for _, dp := range diverged {
		contribution := g.panOne(dp.pos, m)

		vecmath.ScaleBlockInPlace(contribution, dp.gain)
		vecmath.AddBlockInPlace(g.gains, contribution)
	}

	// Zone-exclusion membership depends only on the zones and the
	// speakers, not on which coordinate form the object's own position
	// is carried in (zoneexclusion.Zone.Contains tests a polar zone
	// against the speaker's polar position and a box zone against its
	// cartesian direction); it is therefore applied whenever the object
	// declares exclusion zones, not gated on the layout's allocentric
	// support.
	if len(m.ExclusionZones) > 0 {
		g.zoneHandler.Handle(g.gains, excluded)
	}

	gMeta := m.Gain
	directCoeff := gMeta * fastmath.Sqrt(1-m.Diffuse)
	diffuseCoeff := gMeta * fastmath.Sqrt(m.Diffuse)

	vecmath.ScaleBlock(*directGains, g.gains, directCoeff)
	vecmath.ScaleBlock(*diffuseGains, g.gains, diffuseCoeff)

	insertLFE(g.layout, *directGains)
	insertLFE(g.layout, *diffuseGains)

	return nil
}

// CalculateAmbisonicCoefficients runs the same position resolution and
// divergence steps as CalculateGains, but integrates an Ambisonic
// encoder (configured via [WithAmbisonicEncoder]) over the object's
// extent instead of panning to the layout's loudspeakers. It ignores
// zone exclusion and channel-gain diffuse/direct split, which are
// loudspeaker-bus concepts; callers feeding an Ambisonic bus are
// expected to apply their own decode and diffuse handling downstream.
func (g *GainCalculator) CalculateAmbisonicCoefficients(m ObjectMetadata) ([]float64, error) {
	if g.ambisonicExt == nil {
		return nil, newError(KindInvalidMetadata, "no ambisonic encoder configured; use WithAmbisonicEncoder", nil)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	pos, _ := g.resolvePosition(m)

	diverged := diverge(pos, m.Divergence)

	var out []float64

	for _, dp := range diverged {
		p := dp.pos

		if g.layout.AllocentricSupport {
			p = geom.NewPolarPosition(admconv.PointCartToPolar(p.Cartesian()))
		}

		coeffs := g.ambisonicExt.CalculateCoefficients(p.Polar(), m.Width, m.Height, m.Depth)

		if out == nil {
			out = make([]float64, len(coeffs))
		}

		vecmath.ScaleBlockInPlace(coeffs, dp.gain)
		vecmath.AddBlockInPlace(out, coeffs)
	}

	return out, nil
}
