// Package keylength estimates the period of a repeating-key cipher from the
// coincidence signal of its letters.
//
// The estimator computes coincidence counts for shifts 1..S-1, marks every
// shift whose count exceeds mean + k*sigma, and returns the most frequent
// distance between consecutive marked shifts:
//
//	res, err := keylength.Estimate(letters, keylength.WithMaxShift(100))
//	switch {
//	case errors.Is(err, keylength.ErrInsufficientData):
//	case errors.Is(err, keylength.ErrNoKeyLengthFound):
//	}
//	n := res.KeyLength
package keylength

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vigenere/stats/coincidence"
)

// Errors returned by Estimate.
var (
	ErrInsufficientData = errors.New("keylength: need at least two letters")
	ErrNoKeyLengthFound = errors.New("keylength: no repeated threshold crossing")
)

const (
	// DefaultMaxShift is the default upper bound (exclusive) on shifts.
	DefaultMaxShift = 100

	// DefaultThresholdFactor is the default number of standard deviations
	// above the mean a count must exceed.
	DefaultThresholdFactor = 1.2
)

// Config holds estimator settings.
type Config struct {
	MaxShift        int
	ThresholdFactor float64
	Method          coincidence.Method
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default estimator settings.
func DefaultConfig() Config {
	return Config{
		MaxShift:        DefaultMaxShift,
		ThresholdFactor: DefaultThresholdFactor,
		Method:          coincidence.MethodAuto,
	}
}

// WithMaxShift sets the exclusive upper bound on shifts. Values outside
// [2, coincidence.MaxShiftLimit] make Estimate fail with
// coincidence.ErrInvalidMaxShift.
func WithMaxShift(s int) Option {
	return func(cfg *Config) {
		cfg.MaxShift = s
	}
}

// WithThresholdFactor sets the multiple of sigma added to the mean.
func WithThresholdFactor(k float64) Option {
	return func(cfg *Config) {
		cfg.ThresholdFactor = k
	}
}

// WithMethod selects how the coincidence signal is computed.
func WithMethod(m coincidence.Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Result is the outcome of a key length estimate together with the
// intermediate values it was derived from.
type Result struct {
	KeyLength int
	Signal    []int
	Summary   coincidence.Summary
	Threshold float64
	Crossings Crossings
	Gaps      []int
}

// Estimate returns the most probable key length for letters.
//
// On ErrNoKeyLengthFound the returned Result still carries the signal,
// summary, threshold and crossings, so callers can report why.
func Estimate(letters string, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	if err := coincidence.ValidateMaxShift(cfg.MaxShift); err != nil {
		return Result{}, fmt.Errorf("keylength: %w", err)
	}
	if len(letters) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInsufficientData, len(letters))
	}

	signal, err := coincidence.Signal(letters, cfg.MaxShift, cfg.Method)
	if err != nil {
		return Result{}, fmt.Errorf("keylength: %w", err)
	}

	summary, err := coincidence.Summarize(signal)
	if err != nil {
		return Result{}, fmt.Errorf("keylength: %w", err)
	}

	res := Result{
		Signal:    signal,
		Summary:   summary,
		Threshold: summary.Threshold(cfg.ThresholdFactor),
	}
	res.Crossings = DetectCrossings(signal, res.Threshold)

	switch res.Crossings.State() {
	case NoCrossings:
		return res, fmt.Errorf("%w: no shift above %.3f", ErrNoKeyLengthFound, res.Threshold)
	case OneCrossing:
		return res, fmt.Errorf("%w: only shift %d above %.3f",
			ErrNoKeyLengthFound, res.Crossings.Shifts[0], res.Threshold)
	}

	res.Gaps = res.Crossings.Gaps()
	mode, ok := Mode(res.Gaps)
	if !ok {
		return res, fmt.Errorf("%w: no gap between crossings", ErrNoKeyLengthFound)
	}
	res.KeyLength = mode

	return res, nil
}
