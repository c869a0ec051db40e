// Package geom provides the polar/cartesian position types and the
// vector, matrix, and angle-range primitives the panning packages build
// on: unit-vector conversion (ordinary spherical, not the ADM piecewise
// remap — that lives in dsp/admconv), 3x3 matrix inversion, azimuth
// wrapping, and the angle-range membership test used by zone exclusion.
package geom
