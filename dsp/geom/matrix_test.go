package geom

import "testing"

func TestMatrixInverseIdentity(t *testing.T) {
	m := Matrix3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if inv != m {
		t.Fatalf("inverse of identity = %+v, want identity", inv)
	}
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	m := Matrix3{
		{X: 2, Y: 1, Z: 0},
		{X: 0, Y: 3, Z: 1},
		{X: 1, Y: 0, Z: 4},
	}

	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v := CartesianPosition{X: 5, Y: -2, Z: 7}
	roundTrip := inv.MulVec(m.MulVec(v))

	if !almostEqual(roundTrip.X, v.X, 1e-9) || !almostEqual(roundTrip.Y, v.Y, 1e-9) || !almostEqual(roundTrip.Z, v.Z, 1e-9) {
		t.Fatalf("round trip = %+v, want %+v", roundTrip, v)
	}
}

func TestMatrixInverseSingular(t *testing.T) {
	m := Matrix3{
		{X: 1, Y: 1, Z: 1},
		{X: 2, Y: 2, Z: 2},
		{X: 0, Y: 1, Z: 0},
	}

	_, err := m.Inverse()
	if err == nil {
		t.Fatal("expected error for singular matrix")
	}
}

func TestLocalCoordinateSystemOrthonormal(t *testing.T) {
	for _, az := range []float64{0, 30, -110, 175} {
		for _, el := range []float64{-30, 0, 45} {
			m := LocalCoordinateSystem(az, el)

			for i := range m {
				if !almostEqual(m[i].Length(), 1, 1e-9) {
					t.Fatalf("row %d not unit length at az=%v el=%v: %+v", i, az, el, m[i])
				}
			}

			if !almostEqual(m[0].Dot(m[1]), 0, 1e-9) {
				t.Fatalf("right/front not orthogonal at az=%v el=%v", az, el)
			}

			if !almostEqual(m[1].Dot(m[2]), 0, 1e-9) {
				t.Fatalf("front/up not orthogonal at az=%v el=%v", az, el)
			}
		}
	}
}
