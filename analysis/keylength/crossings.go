package keylength

import "fmt"

// CrossingState classifies how many times a signal exceeded its threshold.
type CrossingState int

const (
	// NoCrossings means no shift exceeded the threshold.
	NoCrossings CrossingState = iota

	// OneCrossing means exactly one shift exceeded the threshold, so no gap
	// between crossings was completed.
	OneCrossing

	// MultipleCrossings means at least one gap was measured.
	MultipleCrossings
)

// String returns the state name.
func (s CrossingState) String() string {
	switch s {
	case NoCrossings:
		return "none"
	case OneCrossing:
		return "one"
	case MultipleCrossings:
		return "multiple"
	default:
		return fmt.Sprintf("CrossingState(%d)", int(s))
	}
}

// Crossings holds the shifts whose coincidence count exceeded a threshold.
type Crossings struct {
	// Shifts lists the crossing shifts (1-based) in increasing order.
	Shifts []int
}

// DetectCrossings scans signal in shift order and records every shift whose
// count is strictly greater than threshold. signal[c-1] is the count for
// shift c.
func DetectCrossings(signal []int, threshold float64) Crossings {
	var shifts []int
	for i, v := range signal {
		if float64(v) > threshold {
			shifts = append(shifts, i+1)
		}
	}
	return Crossings{Shifts: shifts}
}

// State returns the crossing classification.
func (c Crossings) State() CrossingState {
	switch len(c.Shifts) {
	case 0:
		return NoCrossings
	case 1:
		return OneCrossing
	default:
		return MultipleCrossings
	}
}

// Gaps returns the distances between consecutive crossings. The stretch
// before the first crossing is not a gap. Returns nil unless the state is
// MultipleCrossings.
func (c Crossings) Gaps() []int {
	if c.State() != MultipleCrossings {
		return nil
	}
	gaps := make([]int, len(c.Shifts)-1)
	for i := 1; i < len(c.Shifts); i++ {
		gaps[i-1] = c.Shifts[i] - c.Shifts[i-1]
	}
	return gaps
}

// Mode returns the most frequent value in values, ties going to the value
// that occurs first. ok is false for an empty slice.
func Mode(values []int) (mode int, ok bool) {
	if len(values) == 0 {
		return 0, false
	}

	counts := make(map[int]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if counts[v] > best {
			best = counts[v]
			mode = v
		}
	}
	return mode, true
}
