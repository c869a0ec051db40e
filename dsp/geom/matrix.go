package geom

import "errors"

// ErrSingularMatrix is returned by [Matrix3.Inverse] when the matrix has
// zero determinant (e.g. three coincident or coplanar-through-origin
// speaker directions passed to a Triplet region).
var ErrSingularMatrix = errors.New("geom: matrix is singular")

// Matrix3 is a 3x3 matrix stored row-major as three row vectors.
type Matrix3 [3]CartesianPosition

// MulVec returns m*v, treating v as a column vector.
func (m Matrix3) MulVec(v CartesianPosition) CartesianPosition {
	return CartesianPosition{
		X: m[0].Dot(v),
		Y: m[1].Dot(v),
		Z: m[2].Dot(v),
	}
}

// Determinant returns det(m).
func (m Matrix3) Determinant() float64 {
	return m[0].X*(m[1].Y*m[2].Z-m[1].Z*m[2].Y) -
		m[0].Y*(m[1].X*m[2].Z-m[1].Z*m[2].X) +
		m[0].Z*(m[1].X*m[2].Y-m[1].Y*m[2].X)
}

// Inverse returns the inverse of m via the standard 3x3 cofactor formula.
// Returns [ErrSingularMatrix] if det(m) is zero.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, ErrSingularMatrix
	}

	invDet := 1 / det

	cof := Matrix3{
		{
			X: (m[1].Y*m[2].Z - m[1].Z*m[2].Y) * invDet,
			Y: (m[0].Z*m[2].Y - m[0].Y*m[2].Z) * invDet,
			Z: (m[0].Y*m[1].Z - m[0].Z*m[1].Y) * invDet,
		},
		{
			X: (m[1].Z*m[2].X - m[1].X*m[2].Z) * invDet,
			Y: (m[0].X*m[2].Z - m[0].Z*m[2].X) * invDet,
			Z: (m[0].Z*m[1].X - m[0].X*m[1].Z) * invDet,
		},
		{
			X: (m[1].X*m[2].Y - m[1].Y*m[2].X) * invDet,
			Y: (m[0].Y*m[2].X - m[0].X*m[2].Y) * invDet,
			Z: (m[0].X*m[1].Y - m[0].Y*m[1].X) * invDet,
		},
	}

	return cof, nil
}

// LocalCoordinateSystem returns the 3x3 matrix whose rows are the local
// right, front, and up unit vectors at direction (azimuthDeg,
// elevationDeg): row 0 is right, row 1 is front (the look direction
// itself), row 2 is up, forming a right-handed basis.
func LocalCoordinateSystem(azimuthDeg, elevationDeg float64) Matrix3 {
	front := PolarToUnitVector(azimuthDeg, elevationDeg)
	right := PolarToUnitVector(azimuthDeg-90, 0)
	up := right.Cross(front)

	return Matrix3{right, front, up}
}
