package fastmath

import (
	"math"
	"testing"
)

func TestSqrt(t *testing.T) {
	tol := 0.0
	if !Exact {
		tol = 1e-4
	}
	for _, x := range []float64{0, 0.25, 1, 2, 144, 999.5} {
		got := Sqrt(x)
		want := math.Sqrt(x)
		if math.Abs(got-want) > tol*math.Max(want, 1) {
			t.Errorf("Sqrt(%v) = %v, want %v", x, got, want)
		}
	}
}
