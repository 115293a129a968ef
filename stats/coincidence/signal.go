// Package coincidence computes coincidence counts of a symbol stream and the
// statistics used to threshold them.
//
// The coincidence count for shift c is the number of positions i with
// s[i] == s[i+c]. Over shifts 1..maxShift-1 this forms the coincidence
// signal: a periodic text shows peaks at multiples of its period.
//
// The count is the sum, over every distinct symbol, of the autocorrelation of
// that symbol's indicator sequence at lag c. [SignalFFT] evaluates it that
// way; [SignalDirect] compares bytes pairwise. Both return identical results.
package coincidence

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by signal and summary functions.
var (
	ErrInvalidMaxShift = errors.New("coincidence: max shift out of range")
	ErrEmptySignal     = errors.New("coincidence: empty signal")
)

// Method selects how the coincidence signal is computed.
type Method int

const (
	// MethodAuto picks whichever evaluation is estimated to be cheaper.
	MethodAuto Method = iota

	// MethodDirect compares symbol pairs, O(L*S).
	MethodDirect

	// MethodFFT accumulates per-symbol power spectra, O(K*L*log L) for K
	// distinct symbols.
	MethodFFT
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name to a Method.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "", "auto":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, fmt.Errorf("coincidence: unknown method %q", name)
	}
}

// MaxShiftLimit is the largest accepted maxShift. Shifts at or beyond the
// input length always count 0, so the bound only caps the signal allocation.
const MaxShiftLimit = 1 << 20

// ValidateMaxShift returns a wrapped ErrInvalidMaxShift unless maxShift is in
// [2, MaxShiftLimit].
func ValidateMaxShift(maxShift int) error {
	if maxShift < 2 || maxShift > MaxShiftLimit {
		return fmt.Errorf("%w: %d not in [2, %d]", ErrInvalidMaxShift, maxShift, MaxShiftLimit)
	}
	return nil
}

// fftCostFactor is the cost of one FFT bin for one symbol relative to one
// direct comparison, measured with BenchmarkSignal.
const fftCostFactor = 32

// Signal computes the coincidence signal of s for shifts 1..maxShift-1 using
// the given method. Index c-1 of the result holds the count for shift c.
// Shifts with no overlapping pairs count 0.
func Signal(s string, maxShift int, method Method) ([]int, error) {
	if method == MethodAuto {
		method = selectMethod(s, maxShift)
	}
	if method == MethodFFT {
		return SignalFFT(s, maxShift)
	}
	return SignalDirect(s, maxShift)
}

// selectMethod compares about shifts*L direct comparisons against one
// transform pair per distinct symbol. Direct wins unless the shift range is
// a large fraction of a long input.
func selectMethod(s string, maxShift int) Method {
	n := len(s)
	shifts := min(maxShift-1, n-1)
	if shifts <= 0 {
		return MethodDirect
	}

	fftSize := nextPowerOf2(2*n - 1)
	if shifts*n > fftCostFactor*distinctSymbols(s)*fftSize {
		return MethodFFT
	}
	return MethodDirect
}

func distinctSymbols(s string) int {
	var present [256]bool
	k := 0
	for i := 0; i < len(s); i++ {
		if !present[s[i]] {
			present[s[i]] = true
			k++
		}
	}
	return k
}

// SignalDirect computes the coincidence signal by pairwise comparison.
func SignalDirect(s string, maxShift int) ([]int, error) {
	if err := ValidateMaxShift(maxShift); err != nil {
		return nil, err
	}

	out := make([]int, maxShift-1)
	n := len(s)
	for c := 1; c < maxShift && c < n; c++ {
		count := 0
		for i := 0; i+c < n; i++ {
			if s[i] == s[i+c] {
				count++
			}
		}
		out[c-1] = count
	}

	return out, nil
}

// SignalFFT computes the coincidence signal as the inverse FFT of the summed
// power spectra of every symbol's indicator sequence.
func SignalFFT(s string, maxShift int) ([]int, error) {
	if err := ValidateMaxShift(maxShift); err != nil {
		return nil, err
	}

	out := make([]int, maxShift-1)
	n := len(s)
	if n < 2 {
		return out, nil
	}

	// Linear (not circular) autocorrelation needs at least 2n-1 points.
	fftSize := nextPowerOf2(2*n - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("coincidence: failed to create FFT plan: %w", err)
	}

	var present [256]bool
	for i := 0; i < n; i++ {
		present[s[i]] = true
	}

	indicator := make([]complex128, fftSize)
	freq := make([]complex128, fftSize)
	power := make([]complex128, fftSize)

	for sym := 0; sym < len(present); sym++ {
		if !present[sym] {
			continue
		}
		for i := range indicator {
			indicator[i] = 0
		}
		for i := 0; i < n; i++ {
			if s[i] == byte(sym) {
				indicator[i] = 1
			}
		}

		if err := plan.Forward(freq, indicator); err != nil {
			return nil, fmt.Errorf("coincidence: forward FFT failed: %w", err)
		}

		// |X|^2 = X * conj(X)
		for i, x := range freq {
			power[i] += complex(real(x)*real(x)+imag(x)*imag(x), 0)
		}
	}

	acf := make([]complex128, fftSize)
	if err := plan.Inverse(acf, power); err != nil {
		return nil, fmt.Errorf("coincidence: inverse FFT failed: %w", err)
	}

	for c := 1; c < maxShift && c < n; c++ {
		out[c-1] = int(math.Round(real(acf[c])))
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
