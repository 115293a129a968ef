//go:build !fastmath

package fastmath

import "math"

// Exact reports whether Sqrt is IEEE 754 exact.
const Exact = true

// Sqrt computes sqrt(x) using standard library math.
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}
