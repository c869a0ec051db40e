//go:build !fastmath

package fastmath

import "math"

// Sqrt computes sqrt(x) using the standard library.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}
