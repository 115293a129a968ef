package alphabet

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDistribution is returned by NewDistribution for tables that are
// not usable as letter weights.
var ErrInvalidDistribution = errors.New("alphabet: invalid distribution")

// Distribution holds one relative frequency per letter, A through Z.
type Distribution [Size]float64

// englishPercent is the relative letter frequency of English text in percent.
var englishPercent = Distribution{
	8.17, 1.49, 2.78, 4.25, 12.70, 2.23, 2.02, 6.09, 6.97, 0.15, 0.77, 4.03,
	2.41, 6.75, 7.51, 1.93, 0.10, 5.99, 6.33, 9.06, 2.76, 0.98, 2.36, 0.15,
	1.97, 0.07,
}

// English returns the standard English letter frequencies in percent.
func English() Distribution {
	return englishPercent
}

// NewDistribution builds a Distribution from 26 finite, non-negative weights
// with a positive sum. The weights are used as given, not normalized.
func NewDistribution(weights []float64) (Distribution, error) {
	var d Distribution
	if len(weights) != Size {
		return d, fmt.Errorf("%w: got %d weights, want %d", ErrInvalidDistribution, len(weights), Size)
	}

	var sum float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return d, fmt.Errorf("%w: weight %c = %v", ErrInvalidDistribution, 'A'+i, w)
		}
		d[i] = w
		sum += w
	}
	if sum <= 0 {
		return d, fmt.Errorf("%w: weights sum to zero", ErrInvalidDistribution)
	}

	return d, nil
}

// Sum returns the total weight.
func (d Distribution) Sum() float64 {
	var s float64
	for _, v := range d {
		s += v
	}
	return s
}

// Slice returns the weights as a new slice.
func (d Distribution) Slice() []float64 {
	out := make([]float64, Size)
	copy(out, d[:])
	return out
}
