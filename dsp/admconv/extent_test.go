package admconv

import (
	"testing"

	"github.com/cwbudde/algo-admrender/dsp/geom"
)

func TestWHDToXYZBasic(t *testing.T) {
	e := WHDToXYZ(0, 0, 0)
	if e != (geom.CartesianPosition{}) {
		t.Fatalf("zero extent should map to zero vector, got %+v", e)
	}

	full := WHDToXYZ(180, 180, 0)
	if !almostEqual(full.X, 1, 1e-9) || !almostEqual(full.Z, 1, 1e-9) {
		t.Fatalf("180-degree width/height should saturate to 1, got %+v", full)
	}
}

func TestXYZToWHDRoundTrip(t *testing.T) {
	tests := []struct{ w, h, d float64 }{
		{30, 20, 0},
		{90, 60, 0},
		{10, 170, 0},
	}

	for _, tt := range tests {
		e := WHDToXYZ(tt.w, tt.h, tt.d)
		w, h, _ := XYZToWHD(e)

		if !almostEqual(w, tt.w, 1e-6) {
			t.Errorf("width round trip: got %v want %v", w, tt.w)
		}

		if !almostEqual(h, tt.h, 1e-6) {
			t.Errorf("height round trip: got %v want %v", h, tt.h)
		}
	}
}

func TestRotateExtentFrontIsIdentity(t *testing.T) {
	e := geom.CartesianPosition{X: 0.1, Y: 0.2, Z: 0.3}
	rotated := RotateExtent(geom.PolarPosition{Azimuth: 0, Elevation: 0}, e)

	if !almostEqual(rotated.X, e.X, 1e-9) || !almostEqual(rotated.Y, e.Y, 1e-9) || !almostEqual(rotated.Z, e.Z, 1e-9) {
		t.Fatalf("extent at the front direction should be unrotated, got %+v want %+v", rotated, e)
	}
}
