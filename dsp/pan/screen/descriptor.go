package screen

// Descriptor is a rectangular screen's angular extent as seen from the
// listening position: azimuth in (-180, 180], elevation in [-90, 90],
// with Min < 0 < Max for both axes (a screen straddling the centre of
// the room).
type Descriptor struct {
	AzimuthMin, AzimuthMax     float64
	ElevationMin, ElevationMax float64
}

// DefaultDescriptor is BS.2127-1's nominal reference screen: ±29.0929
// degrees azimuth and ±15.8489 degrees elevation, matching the ITU reference renderer's
// built-in default when no explicit screen geometry is supplied.
var DefaultDescriptor = Descriptor{
	AzimuthMin:   -29.0929,
	AzimuthMax:   29.0929,
	ElevationMin: -15.8489,
	ElevationMax: 15.8489,
}
