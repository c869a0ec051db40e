package extent

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-admrender/dsp/geom"
	"github.com/cwbudde/algo-admrender/dsp/layout"
	"github.com/cwbudde/algo-admrender/dsp/pan/allocentric"
	"github.com/cwbudde/algo-admrender/dsp/pan/pointsource"
)

func sumSquares(g []float64) float64 {
	sum := 0.0
	for _, v := range g {
		sum += v * v
	}

	return sum
}

func TestPolarHandlerDegenerateMatchesPointSource(t *testing.T) {
	l := layout.Surround50()

	panner, err := pointsource.NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	h := NewPolarHandler(panner, l.NCh())

	pos := geom.PolarPosition{Azimuth: 0, Elevation: 0, Distance: 1}

	want := panner.CalculateGains(pos.ToUnitVector())
	got := h.CalculateGains(pos, 0, 0, 0)

	for i := range want {
		if math.Abs(want[i]-got[i]) > 1e-9 {
			t.Errorf("channel %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPolarHandlerSpreadIsUnitNormalized(t *testing.T) {
	l := layout.Surround50()

	panner, err := pointsource.NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	h := NewPolarHandler(panner, l.NCh())

	pos := geom.PolarPosition{Azimuth: 10, Elevation: 0, Distance: 1}
	g := h.CalculateGains(pos, 30, 20, 0)

	if math.Abs(sumSquares(g)-1) > 1e-9 {
		t.Errorf("sum of squares = %v, want 1", sumSquares(g))
	}
}

func TestPolarHandlerFullDepthStillNormalized(t *testing.T) {
	l := layout.Surround50()

	panner, err := pointsource.NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	h := NewPolarHandler(panner, l.NCh())

	pos := geom.PolarPosition{Azimuth: 0, Elevation: 0, Distance: 1}
	g := h.CalculateGains(pos, 0, 0, 1)

	if math.Abs(sumSquares(g)-1) > 1e-9 {
		t.Errorf("sum of squares = %v, want 1", sumSquares(g))
	}
}

func TestAllocentricHandlerDegenerateMatchesPanner(t *testing.T) {
	l := layout.Surround9_10_3()

	panner, err := allocentric.NewPanner(l)
	if err != nil {
		t.Fatalf("NewPanner: %v", err)
	}

	h := NewAllocentricHandler(panner, l.NCh())

	pos := geom.CartesianPosition{X: 0, Y: 1, Z: 0}

	want := panner.CalculateGains(pos)
	got := h.CalculateGains(pos, 0, 0, 0)

	for i := range want {
		if math.Abs(want[i]-got[i]) > 1e-9 {
			t.Errorf("channel %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

type stubEncoder struct{}

func (stubEncoder) Encode(dir geom.CartesianPosition) []float64 {
	return []float64{1, dir.X, dir.Y, dir.Z}
}

func TestAmbisonicHandlerDegenerateMatchesEncoder(t *testing.T) {
	h := NewAmbisonicHandler(stubEncoder{})

	pos := geom.PolarPosition{Azimuth: 30, Elevation: 10, Distance: 1}
	got := h.CalculateCoefficients(pos, 0, 0, 0)
	want := (stubEncoder{}).Encode(pos.ToUnitVector())

	for i := range want {
		if math.Abs(want[i]-got[i]) > 1e-9 {
			t.Errorf("coefficient %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
