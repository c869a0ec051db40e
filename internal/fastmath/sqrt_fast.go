//go:build fastmath

package fastmath

import "github.com/meko-christian/algo-approx"

// Sqrt computes sqrt(x) using a fast polynomial approximation. Gain
// normalization runs once per region solve, the same hot-path shape the
// teacher library optimizes for its compressor's makeup-gain math.
func Sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
