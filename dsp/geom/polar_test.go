package geom

import (
	"math"
	"testing"
)

const testEps = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestWrapAzimuth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-181, 179},
		{360, 0},
		{720 + 10, 10},
	}

	for _, tt := range tests {
		got := WrapAzimuth(tt.in)
		if !almostEqual(got, tt.want, testEps) {
			t.Errorf("WrapAzimuth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPolarToUnitVectorAxes(t *testing.T) {
	front := PolarToUnitVector(0, 0)
	if !almostEqual(front.Y, 1, testEps) || !almostEqual(front.X, 0, testEps) || !almostEqual(front.Z, 0, testEps) {
		t.Fatalf("front = %+v, want (0,1,0)", front)
	}

	left := PolarToUnitVector(90, 0)
	if !almostEqual(left.X, -1, testEps) {
		t.Fatalf("left.X = %v, want -1 (positive azimuth rotates left)", left.X)
	}

	up := PolarToUnitVector(0, 90)
	if !almostEqual(up.Z, 1, testEps) {
		t.Fatalf("up.Z = %v, want 1", up.Z)
	}
}

func TestUnitVectorRoundTrip(t *testing.T) {
	for az := -170.0; az <= 180; az += 17 {
		for el := -80.0; el <= 90; el += 19 {
			v := PolarToUnitVector(az, el)
			gotAz, gotEl := UnitVectorToPolar(v)

			if !almostEqual(gotAz, az, 1e-8) {
				t.Errorf("az round trip: in=%v got=%v", az, gotAz)
			}

			if !almostEqual(gotEl, el, 1e-8) {
				t.Errorf("el round trip: in=%v got=%v", el, gotEl)
			}
		}
	}
}

func TestUnitVectorToPolarPole(t *testing.T) {
	az, el := UnitVectorToPolar(CartesianPosition{X: 0, Y: 0, Z: 1})
	if az != 0 {
		t.Errorf("pole azimuth = %v, want 0", az)
	}

	if !almostEqual(el, 90, testEps) {
		t.Errorf("pole elevation = %v, want 90", el)
	}
}
