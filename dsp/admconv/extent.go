package admconv

import (
	"math"

	"github.com/cwbudde/algo-admrender/dsp/geom"
)

// WHDToXYZ converts a width/height/depth extent (degrees, degrees,
// [0,1]) to the three component half-sizes used by the extent panners.
// Per BS.2127-1 §6: the x and z components are sine-based angular
// half-widths that saturate to 1 once the corresponding angle reaches
// 180 degrees; y takes the largest of the two angular depth terms and
// the explicit depth value.
func WHDToXYZ(width, height, depth float64) geom.CartesianPosition {
	sx := 1.0
	if width < 180 {
		sx = math.Sin(width * deg2rad / 2)
	}

	sz := 1.0
	if height < 180 {
		sz = math.Sin(height * deg2rad / 2)
	}

	wy := 0.5 * (1 - math.Cos(width*deg2rad/2))
	hy := 0.5 * (1 - math.Cos(height*deg2rad/2))
	sy := math.Max(math.Max(wy, hy), depth)

	return geom.CartesianPosition{X: sx, Y: sy, Z: sz}
}

// XYZToWHD is the approximate inverse of [WHDToXYZ]: it recovers width
// and height from an arcsine of the dominant (x, z) components, then
// recovers depth by subtracting the angular contribution the recovered
// width/height would themselves produce. It only round-trips exactly
// when the source width and height are each below 180 degrees — beyond
// that [WHDToXYZ] saturates to 1 and the original angle is lost, which
// matches the ITU reference behaviour BS.2127-1 documents as
// approximate for wide sources.
func XYZToWHD(e geom.CartesianPosition) (width, height, depth float64) {
	width = 2 * math.Asin(geom.Clamp(e.X, -1, 1)) * rad2deg
	height = 2 * math.Asin(geom.Clamp(e.Z, -1, 1)) * rad2deg

	wy := 0.5 * (1 - math.Cos(width*deg2rad/2))
	hy := 0.5 * (1 - math.Cos(height*deg2rad/2))

	depth = e.Y - math.Max(wy, hy)
	if depth < 0 {
		depth = e.Y
	}

	return width, height, depth
}

// RotateExtent rotates an extent vector (width axis = local right,
// depth axis = local front, height axis = local up) into world
// cartesian space for a source at polar position pos, per BS.2127-1's
// directional-extent rule: extent is only meaningful relative to the
// object's own direction, so it must be expressed in the object's local
// frame before the dimensional conversion.
func RotateExtent(pos geom.PolarPosition, extent geom.CartesianPosition) geom.CartesianPosition {
	m := geom.LocalCoordinateSystem(pos.Azimuth, pos.Elevation)

	right, front, up := m[0], m[1], m[2]

	return right.Scale(extent.X).Add(front.Scale(extent.Y)).Add(up.Scale(extent.Z))
}
