package geom

import "testing"

func TestCrossDot(t *testing.T) {
	x := CartesianPosition{X: 1}
	y := CartesianPosition{Y: 1}

	z := x.Cross(y)
	if z != (CartesianPosition{Z: 1}) {
		t.Fatalf("x cross y = %+v, want (0,0,1)", z)
	}

	if x.Dot(y) != 0 {
		t.Fatalf("x dot y = %v, want 0", x.Dot(y))
	}

	if x.Dot(x) != 1 {
		t.Fatalf("x dot x = %v, want 1", x.Dot(x))
	}
}

func TestNormalized(t *testing.T) {
	v := CartesianPosition{X: 3, Y: 4}

	n := v.Normalized()
	if !almostEqual(n.Length(), 1, testEps) {
		t.Fatalf("length = %v, want 1", n.Length())
	}

	zero := CartesianPosition{}
	if zero.Normalized() != zero {
		t.Fatalf("normalizing the zero vector should return it unchanged")
	}
}

func TestToPolar(t *testing.T) {
	p := CartesianPosition{Y: 2}.ToPolar()
	if !almostEqual(p.Distance, 2, testEps) {
		t.Fatalf("distance = %v, want 2", p.Distance)
	}

	if !almostEqual(p.Azimuth, 0, testEps) || !almostEqual(p.Elevation, 0, testEps) {
		t.Fatalf("az/el = %v/%v, want 0/0", p.Azimuth, p.Elevation)
	}
}
