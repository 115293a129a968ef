package coincidence

import (
	"github.com/cwbudde/algo-vigenere/internal/fastmath"
)

// Summary holds the statistics of a coincidence signal.
type Summary struct {
	Length   int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64 // population standard deviation
	Max      int
	MaxShift int // shift (1-based) of the first maximum
	Min      int
}

// Summarize computes mean, population variance and extrema of signal, where
// signal[c-1] is the count for shift c.
func Summarize(signal []int) (Summary, error) {
	n := len(signal)
	if n == 0 {
		return Summary{}, ErrEmptySignal
	}

	mean := Mean(signal)

	var (
		m2     float64
		maxVal = signal[0]
		maxPos int
		minVal = signal[0]
	)
	for i, v := range signal {
		d := float64(v) - mean
		m2 += d * d
		if v > maxVal {
			maxVal = v
			maxPos = i
		}
		if v < minVal {
			minVal = v
		}
	}

	variance := m2 / float64(n)

	return Summary{
		Length:   n,
		Mean:     mean,
		Variance: variance,
		StdDev:   fastmath.Sqrt(variance),
		Max:      maxVal,
		MaxShift: maxPos + 1,
		Min:      minVal,
	}, nil
}

// Mean returns the arithmetic mean of signal, or 0 for an empty signal.
func Mean(signal []int) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Kahan summation.
	var sum, c float64
	for _, v := range signal {
		y := float64(v) - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum / float64(len(signal))
}

// Threshold returns Mean + factor*StdDev.
func (s Summary) Threshold(factor float64) float64 {
	return s.Mean + factor*s.StdDev
}
