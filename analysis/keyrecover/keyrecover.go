// Package keyrecover recovers a repeating shift key of known length by
// frequency analysis.
//
// Each key position sees a plain Caesar shift of the underlying text. The
// letters of one position form a frequency profile; the shift j whose
// rotation of that profile correlates best with a reference distribution is
// taken as the key letter 'A'+j.
package keyrecover

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vigenere/cipher/alphabet"
)

// Errors returned by Recover.
var (
	ErrInvalidKeyLength = errors.New("keyrecover: key length must be >= 1")
	ErrEmptyKeyPosition = errors.New("keyrecover: key position has no letters")
)

// Position describes the recovered shift of one key position.
type Position struct {
	Shift int     // 0..25
	Score float64 // circular correlation at Shift
	Count int     // letters observed at this position
}

// Result is a recovered key with per-position detail.
type Result struct {
	Key       string
	Positions []Position
}

// Recover estimates a key of length n from letters using the reference
// distribution ref. The result is a best-effort estimate; no confidence
// beyond the per-position score is implied.
func Recover(letters string, n int, ref alphabet.Distribution) (Result, error) {
	if n < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidKeyLength, n)
	}

	refSlice := ref.Slice()
	key := make([]byte, n)
	positions := make([]Position, n)

	for i, col := range alphabet.Columns(letters, n) {
		if len(col) == 0 {
			return Result{}, fmt.Errorf("%w: position %d of %d with %d letters",
				ErrEmptyKeyPosition, i, n, len(letters))
		}

		shift, score := BestShift(Scores(Profile(col), refSlice))
		key[i] = byte('A' + shift)
		positions[i] = Position{Shift: shift, Score: score, Count: len(col)}
	}

	return Result{Key: string(key), Positions: positions}, nil
}

// Profile returns the percentage of each letter (case-insensitive) in s.
// Non-letters are ignored. An input without letters yields all zeros.
func Profile(s string) []float64 {
	profile := make([]float64, alphabet.Size)
	count := 0
	for i := 0; i < len(s); i++ {
		if idx := alphabet.Index(s[i]); idx >= 0 {
			profile[idx]++
			count++
		}
	}
	if count == 0 {
		return profile
	}

	vecmath.ScaleBlockInPlace(profile, 100/float64(count))

	return profile
}

// Scores returns the circular correlation of profile against ref for every
// shift j: sum over k of profile[(k+j) mod 26] * ref[k].
func Scores(profile, ref []float64) []float64 {
	// Rotations are views into the doubled profile.
	doubled := make([]float64, 2*alphabet.Size)
	copy(doubled, profile)
	copy(doubled[alphabet.Size:], profile)

	scores := make([]float64, alphabet.Size)
	for j := range scores {
		scores[j] = vecmath.DotProduct(doubled[j:j+alphabet.Size], ref)
	}

	return scores
}

// BestShift returns the index of the highest score, ties going to the
// smallest index. Returns 0, 0 for an empty slice.
func BestShift(scores []float64) (shift int, score float64) {
	if len(scores) == 0 {
		return 0, 0
	}

	score = scores[0]
	for j, v := range scores {
		if v > score {
			shift = j
			score = v
		}
	}
	return shift, score
}
