package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of letters in the alphabet.
const Size = 26

// DefaultCapacity is the default upper bound on raw input length in bytes.
const DefaultCapacity = 10000

// ErrInputTooLarge is returned by Extract when the raw input exceeds the
// configured capacity.
var ErrInputTooLarge = errors.New("alphabet: input exceeds capacity")

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}

// IsUpper reports whether b is an ASCII upper-case letter.
func IsUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

// Index returns the zero-based alphabet position of b, ignoring case.
// Returns -1 for non-letters.
func Index(b byte) int {
	switch {
	case 'A' <= b && b <= 'Z':
		return int(b - 'A')
	case 'a' <= b && b <= 'z':
		return int(b - 'a')
	default:
		return -1
	}
}

// Base returns 'A' for upper-case letters and 'a' otherwise.
func Base(b byte) byte {
	if IsUpper(b) {
		return 'A'
	}
	return 'a'
}

// Config holds extraction settings.
type Config struct {
	// Capacity bounds the raw input length in bytes. Zero or negative
	// disables the bound.
	Capacity int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default extraction settings.
func DefaultConfig() Config {
	return Config{Capacity: DefaultCapacity}
}

// WithCapacity sets the raw input bound. Values <= 0 disable it.
func WithCapacity(n int) Option {
	return func(cfg *Config) {
		cfg.Capacity = n
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

// Stream is raw ciphertext together with its alphabetic-only projection.
type Stream struct {
	// Raw is the input exactly as captured.
	Raw string
	// Letters holds the letters of Raw in their original order and case.
	Letters string
}

// Extract derives the alphabetic stream from raw. An empty input yields an
// empty stream. Inputs longer than the configured capacity fail with
// ErrInputTooLarge; nothing is truncated.
func Extract(raw string, opts ...Option) (Stream, error) {
	cfg := ApplyOptions(opts...)
	if cfg.Capacity > 0 && len(raw) > cfg.Capacity {
		return Stream{}, fmt.Errorf("%w: %d bytes, capacity %d", ErrInputTooLarge, len(raw), cfg.Capacity)
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if IsLetter(raw[i]) {
			b.WriteByte(raw[i])
		}
	}

	return Stream{Raw: raw, Letters: b.String()}, nil
}

// Columns splits letters into n interleaved subsequences: column i holds the
// letters at indices congruent to i modulo n. Returns nil for n < 1.
func Columns(letters string, n int) []string {
	if n < 1 {
		return nil
	}
	cols := make([][]byte, n)
	for i := range cols {
		cols[i] = make([]byte, 0, len(letters)/n+1)
	}
	for i := 0; i < len(letters); i++ {
		cols[i%n] = append(cols[i%n], letters[i])
	}

	out := make([]string, n)
	for i, c := range cols {
		out[i] = string(c)
	}
	return out
}
