//go:build fastmath

package fastmath

import (
	"github.com/meko-christian/algo-approx"
)

// Exact reports whether Sqrt is IEEE 754 exact.
const Exact = false

// Sqrt computes sqrt(x) using fast approximation.
func Sqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return approx.FastSqrt(x)
}
