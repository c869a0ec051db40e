// Package fastmath provides the square-root primitive used on the
// gain-normalization hot path. The default build uses math.Sqrt; building
// with -tags fastmath swaps in algo-approx's polynomial approximation,
// the same trade the teacher library offers for its compressor's
// log/exp/sqrt calls.
package fastmath
