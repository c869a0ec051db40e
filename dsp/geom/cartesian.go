package geom

import "math"

// CartesianPosition is a point or direction vector in R^3. For ADM
// cartesian metadata it is nominally inside the unit cube; as a bare
// direction vector (e.g. a region handler's query direction) it need
// only be non-zero.
type CartesianPosition struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v CartesianPosition) Add(o CartesianPosition) CartesianPosition {
	return CartesianPosition{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v CartesianPosition) Sub(o CartesianPosition) CartesianPosition {
	return CartesianPosition{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v CartesianPosition) Scale(s float64) CartesianPosition {
	return CartesianPosition{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v CartesianPosition) Dot(o CartesianPosition) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v CartesianPosition) Cross(o CartesianPosition) CartesianPosition {
	return CartesianPosition{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm of v.
func (v CartesianPosition) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit length. Returns v unchanged if its
// length is zero.
func (v CartesianPosition) Normalized() CartesianPosition {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Scale(1 / l)
}

// ToPolar converts v to an ordinary-spherical polar position; Distance is
// set to v's length. See [UnitVectorToPolar] for the direction-only form.
func (v CartesianPosition) ToPolar() PolarPosition {
	l := v.Length()

	unit := v
	if l != 0 {
		unit = v.Scale(1 / l)
	}

	az, el := UnitVectorToPolar(unit)

	return PolarPosition{Azimuth: az, Elevation: el, Distance: l}
}
