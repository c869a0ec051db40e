package geom

// Position is a tagged union of a polar and a cartesian position. Use
// [NewPolarPosition] or [NewCartesianPosition] to construct one; the
// zero value is a polar position at the origin.
type Position struct {
	isCartesian bool
	polar       PolarPosition
	cartesian   CartesianPosition
}

// NewPolarPosition wraps a polar position.
func NewPolarPosition(p PolarPosition) Position {
	return Position{polar: p}
}

// NewCartesianPosition wraps a cartesian position.
func NewCartesianPosition(c CartesianPosition) Position {
	return Position{isCartesian: true, cartesian: c}
}

// IsPolar reports whether the position is carried in polar form.
func (p Position) IsPolar() bool {
	return !p.isCartesian
}

// Polar returns the polar value. Only meaningful when IsPolar is true.
func (p Position) Polar() PolarPosition {
	return p.polar
}

// Cartesian returns the cartesian value. Only meaningful when IsPolar is false.
func (p Position) Cartesian() CartesianPosition {
	return p.cartesian
}
