// Package crack breaks a repeating-key shift cipher from ciphertext alone.
//
// [Crack] runs four pure stages in order:
//
//  1. alphabet.Extract: keep the raw text, derive the letter stream
//  2. keylength.Estimate: coincidence signal, threshold, most frequent gap
//  3. keyrecover.Recover: per-position frequency correlation against a
//     reference distribution
//  4. vigenere.Decrypt: apply the key to the raw text
//
// Any stage failure is returned wrapped; the error taxonomy below is
// re-exported so callers need only this package to tell failures apart:
//
//	res, err := crack.Crack(ciphertext)
//	switch {
//	case errors.Is(err, crack.ErrInputTooLarge):
//	case errors.Is(err, crack.ErrInsufficientData):
//	case errors.Is(err, crack.ErrNoKeyLengthFound):
//	case errors.Is(err, crack.ErrEmptyKeyPosition):
//	case err != nil:
//	}
//	fmt.Println(res.Key, res.Plaintext)
package crack

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-vigenere/analysis/keylength"
	"github.com/cwbudde/algo-vigenere/analysis/keyrecover"
	"github.com/cwbudde/algo-vigenere/cipher/alphabet"
	"github.com/cwbudde/algo-vigenere/cipher/vigenere"
	"github.com/cwbudde/algo-vigenere/internal/logger"
	"github.com/cwbudde/algo-vigenere/stats/coincidence"
)

// Failure conditions of a run. None is recoverable by retrying with the
// same input and configuration.
var (
	ErrInputTooLarge    = alphabet.ErrInputTooLarge
	ErrInsufficientData = keylength.ErrInsufficientData
	ErrNoKeyLengthFound = keylength.ErrNoKeyLengthFound
	ErrEmptyKeyPosition = keyrecover.ErrEmptyKeyPosition

	// ErrInvalidMaxShift reports a configuration error, not a data problem.
	ErrInvalidMaxShift = coincidence.ErrInvalidMaxShift
)

// Config holds the settings of every stage.
type Config struct {
	Capacity        int
	MaxShift        int
	ThresholdFactor float64
	Method          coincidence.Method
	Reference       alphabet.Distribution
	Logger          *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default pipeline settings.
func DefaultConfig() Config {
	return Config{
		Capacity:        alphabet.DefaultCapacity,
		MaxShift:        keylength.DefaultMaxShift,
		ThresholdFactor: keylength.DefaultThresholdFactor,
		Method:          coincidence.MethodAuto,
		Reference:       alphabet.English(),
	}
}

// WithCapacity bounds the raw input length in bytes. Values <= 0 disable the
// bound.
func WithCapacity(n int) Option {
	return func(cfg *Config) {
		cfg.Capacity = n
	}
}

// WithMaxShift sets the exclusive upper bound on coincidence shifts.
func WithMaxShift(s int) Option {
	return func(cfg *Config) {
		cfg.MaxShift = s
	}
}

// WithThresholdFactor sets the multiple of sigma above the mean a
// coincidence count must exceed.
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

// WithReference replaces the English reference distribution.
func WithReference(d alphabet.Distribution) Option {
	return func(cfg *Config) {
		cfg.Reference = d
	}
}

// WithLogger sets the logger for stage diagnostics, written at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
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
	if cfg.Logger == nil {
		cfg.Logger = logger.ForComponent("crack")
	}
	return cfg
}

// Result is the outcome of a successful run.
type Result struct {
	KeyLength int
	Key       string
	Plaintext string

	// Estimate and Positions carry the statistics behind KeyLength and Key.
	Estimate  keylength.Result
	Positions []keyrecover.Position
}

// Crack recovers the key of ciphertext and decrypts it.
//
// When key length estimation fails, the returned Result carries the partial
// Estimate (signal, summary, crossings) and nothing else.
func Crack(ciphertext string, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)
	log := cfg.Logger

	stream, err := alphabet.Extract(ciphertext, alphabet.WithCapacity(cfg.Capacity))
	if err != nil {
		return Result{}, fmt.Errorf("crack: extract letters: %w", err)
	}
	log.Debug("extracted letters", "raw", len(stream.Raw), "letters", len(stream.Letters))

	est, err := keylength.Estimate(stream.Letters,
		keylength.WithMaxShift(cfg.MaxShift),
		keylength.WithThresholdFactor(cfg.ThresholdFactor),
		keylength.WithMethod(cfg.Method),
	)
	if err != nil {
		return Result{Estimate: est}, fmt.Errorf("crack: estimate key length: %w", err)
	}
	log.Debug("estimated key length",
		"length", est.KeyLength,
		"mean", est.Summary.Mean,
		"sigma", est.Summary.StdDev,
		"threshold", est.Threshold,
		"crossings", len(est.Crossings.Shifts),
	)

	rec, err := keyrecover.Recover(stream.Letters, est.KeyLength, cfg.Reference)
	if err != nil {
		return Result{}, fmt.Errorf("crack: recover key: %w", err)
	}
	log.Debug("recovered key", "key", rec.Key)

	plain, err := vigenere.Decrypt(stream.Raw, rec.Key)
	if err != nil {
		return Result{}, fmt.Errorf("crack: decrypt: %w", err)
	}

	return Result{
		KeyLength: est.KeyLength,
		Key:       rec.Key,
		Plaintext: plain,
		Estimate:  est,
		Positions: rec.Positions,
	}, nil
}
