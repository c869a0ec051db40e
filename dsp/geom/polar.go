package geom

import "math"

// PolarPosition is an azimuth/elevation/distance position. Azimuth is in
// degrees in (-180, 180], 0 is straight ahead and positive values rotate
// to the left, matching the ITU-R BS.2127 convention. Elevation is in
// degrees in [-90, 90]. Distance is nominally in [0, 1].
type PolarPosition struct {
	Azimuth   float64
	Elevation float64
	Distance  float64
}

// Normalized returns p with its azimuth wrapped into (-180, 180].
func (p PolarPosition) Normalized() PolarPosition {
	p.Azimuth = WrapAzimuth(p.Azimuth)
	return p
}

// WrapAzimuth wraps an azimuth in degrees into (-180, 180].
func WrapAzimuth(az float64) float64 {
	az = math.Mod(az, 360)
	if az <= -180 {
		az += 360
	} else if az > 180 {
		az -= 360
	}

	return az
}

// ToUnitVector converts the direction (azimuth, elevation) to an ordinary
// spherical unit vector, ignoring distance. This is the geometry
// package's plain spherical conversion; ADM's piecewise polar<->cartesian
// metadata remap lives in dsp/admconv.
func (p PolarPosition) ToUnitVector() CartesianPosition {
	return PolarToUnitVector(p.Azimuth, p.Elevation)
}

// PolarToUnitVector converts azimuth/elevation in degrees to an ordinary
// spherical unit vector using the right(+X)/front(+Y)/up(+Z) axis
// convention: azimuth 0 is front, positive azimuth rotates left.
func PolarToUnitVector(azimuthDeg, elevationDeg float64) CartesianPosition {
	az := azimuthDeg * math.Pi / 180
	el := elevationDeg * math.Pi / 180

	cosEl := math.Cos(el)

	return CartesianPosition{
		X: -math.Sin(az) * cosEl,
		Y: math.Cos(az) * cosEl,
		Z: math.Sin(el),
	}
}

// UnitVectorToPolar is the ordinary-spherical inverse of
// [PolarToUnitVector]. The degenerate pole case (x=y=0) maps to azimuth 0.
func UnitVectorToPolar(v CartesianPosition) (azimuthDeg, elevationDeg float64) {
	el := math.Asin(Clamp(v.Z, -1, 1))

	var az float64
	if v.X == 0 && v.Y == 0 {
		az = 0
	} else {
		az = math.Atan2(-v.X, v.Y)
	}

	return az * 180 / math.Pi, el * 180 / math.Pi
}

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}
