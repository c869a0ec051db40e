package pointsource

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
)

func sumSquares(g []float64) float64 {
	sum := 0.0
	for _, v := range g {
		sum += v * v
	}

	return sum
}

func TestNewPannerRejectsEmptyLayout(t *testing.T) {
	empty := layout.NewLayout("empty", nil, false)

	if _, err := NewPanner(empty); err == nil {
		t.Fatal("expected an error for a layout with no non-LFE channels")
	}
}

func TestSurround50SpeakerCoincidentUnityGain(t *testing.T) {
	l := layout.Surround50()

	p, err := NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	for _, idx := range l.NonLFEIndices() {
		c := l.Channels[idx]
		dir := c.Nominal.ToUnitVector()

		g := p.CalculateGains(dir)
		if math.Abs(g[idx]-1) > 1e-6 {
			t.Errorf("channel %s: gain = %v, want ~1 (gains=%v)", c.Name, g[idx], g)
		}
	}
}

func TestSurround50LFEAlwaysZero(t *testing.T) {
	l := layout.Surround50()

	p, err := NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	lfeIdx, ok := l.IndexOf("LFE1")
	if !ok {
		t.Fatal("expected an LFE1 channel in the 0+5+0 layout")
	}

	for _, az := range []float64{0, 30, 90, 150, -150} {
		dir := layoutDir(az, 10)
		g := p.CalculateGains(dir)

		if g[lfeIdx] != 0 {
			t.Errorf("az=%v: LFE gain = %v, want 0", az, g[lfeIdx])
		}
	}
}

func TestSurround50EnergyPreservedInsideCoverage(t *testing.T) {
	l := layout.Surround50()

	p, err := NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	dir := layoutDir(15, 0)
	g := p.CalculateGains(dir)

	if math.Abs(sumSquares(g)-1) > 1e-9 {
		t.Errorf("sum of squares = %v, want 1 (gains=%v)", sumSquares(g), g)
	}
}

func TestSurround50NoCentreEquidistantBoundary(t *testing.T) {
	l := layout.Surround50NoCentre()

	p, err := NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	m030, _ := l.IndexOf("M+030")
	mNeg030, _ := l.IndexOf("M-030")

	dir := layoutDir(0, 0)
	g := p.CalculateGains(dir)

	want := 1 / math.Sqrt(2)

	if math.Abs(g[m030]-want) > 1e-6 || math.Abs(g[mNeg030]-want) > 1e-6 {
		t.Fatalf("straight ahead with no centre channel: gains = %v, want [%v]=%v and [%v]=%v", g, m030, want, mNeg030, want)
	}

	for i, v := range g {
		if i != m030 && i != mNeg030 && v != 0 {
			t.Errorf("channel %d: gain = %v, want 0", i, v)
		}
	}
}

func TestSurround9103TopPoleUnityGain(t *testing.T) {
	l := layout.Surround9_10_3()

	p, err := NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	idx, ok := l.IndexOf("T+000")
	if !ok {
		t.Fatal("expected a T+000 channel in the 9+10+3 layout")
	}

	dir := l.Channels[idx].Nominal.ToUnitVector()
	g := p.CalculateGains(dir)

	if math.Abs(g[idx]-1) > 1e-6 {
		t.Errorf("T+000: gain = %v, want ~1 (gains=%v)", g[idx], g)
	}
}

func layoutDir(az, el float64) geom.CartesianPosition {
	return geom.PolarToUnitVector(az, el)
}
