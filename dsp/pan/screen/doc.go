// Package screen implements the two screen-related position warps:
// [ScaleHandler], which remaps a source so the nominal reference
// screen's edges are reproduced at the reproduction screen's edges via
// a piecewise-linear azimuth/elevation warp, and [EdgeLock], which
// snaps a source beyond the screen's azimuth or elevation extent onto
// the nearest screen edge.
package screen
