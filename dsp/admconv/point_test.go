package admconv

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-admrender/dsp/geom"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPointPolarToCartKnownDirections(t *testing.T) {
	tests := []struct {
		name    string
		p       geom.PolarPosition
		want    geom.CartesianPosition
		tol     float64
	}{
		{"front", geom.PolarPosition{Azimuth: 0, Elevation: 0, Distance: 1}, geom.CartesianPosition{X: 0, Y: 1, Z: 0}, 1e-9},
		{"left30", geom.PolarPosition{Azimuth: 30, Elevation: 0, Distance: 1}, geom.CartesianPosition{X: -1, Y: 1, Z: 0}, 1e-9},
		{"right30", geom.PolarPosition{Azimuth: -30, Elevation: 0, Distance: 1}, geom.CartesianPosition{X: 1, Y: 1, Z: 0}, 1e-9},
		{"rear", geom.PolarPosition{Azimuth: 180, Elevation: 0, Distance: 1}, geom.CartesianPosition{X: 0, Y: -1, Z: 0}, 1e-9},
		{"up", geom.PolarPosition{Azimuth: 0, Elevation: 90, Distance: 1}, geom.CartesianPosition{X: 0, Y: 0, Z: 1}, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointPolarToCart(tt.p)
			if !almostEqual(got.X, tt.want.X, tt.tol) || !almostEqual(got.Y, tt.want.Y, tt.tol) || !almostEqual(got.Z, tt.want.Z, tt.tol) {
				t.Fatalf("PointPolarToCart(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointRoundTrip(t *testing.T) {
	for az := -179.0; az < 180; az += 11 {
		for el := -89.0; el < 90; el += 13 {
			p := geom.PolarPosition{Azimuth: az, Elevation: el, Distance: 0.7}

			c := PointPolarToCart(p)
			back := PointCartToPolar(c)

			if !almostEqual(back.Azimuth, p.Azimuth, 1e-7) {
				t.Errorf("az round trip at (%v,%v): got %v want %v", az, el, back.Azimuth, p.Azimuth)
			}

			if !almostEqual(back.Elevation, p.Elevation, 1e-7) {
				t.Errorf("el round trip at (%v,%v): got %v want %v", az, el, back.Elevation, p.Elevation)
			}

			if !almostEqual(back.Distance, p.Distance, 1e-9) {
				t.Errorf("distance round trip at (%v,%v): got %v want %v", az, el, back.Distance, p.Distance)
			}
		}
	}
}

func TestPointCartToPolarDegeneratePole(t *testing.T) {
	p := PointCartToPolar(geom.CartesianPosition{X: 0, Y: 0, Z: 0.5})
	if p.Azimuth != 0 {
		t.Errorf("azimuth = %v, want 0", p.Azimuth)
	}

	if !almostEqual(p.Elevation, 90, 1e-9) {
		t.Errorf("elevation = %v, want 90", p.Elevation)
	}

	if !almostEqual(p.Distance, 0.5, 1e-9) {
		t.Errorf("distance = %v, want 0.5", p.Distance)
	}
}

func TestMapAzLinearRoundTrip(t *testing.T) {
	azL, azR := 30.0, -30.0

	for az := -30.0; az <= 30; az += 2.5 {
		tParam := MapAzToLinear(azL, azR, az)
		back := MapLinearToAz(azL, azR, tParam)

		if !almostEqual(back, az, 1e-9) {
			t.Errorf("az=%v: t=%v back=%v", az, tParam, back)
		}
	}
}
