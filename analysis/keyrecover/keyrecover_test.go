package keyrecover

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vigenere/cipher/alphabet"
	"github.com/cwbudde/algo-vigenere/cipher/vigenere"
	"github.com/cwbudde/algo-vigenere/internal/testutil"
)

func TestRecoverCorpus(t *testing.T) {
	for _, key := range []string{"LEMON", "CRYPTO", "VIGENERE", "LIGHTHOUSE", "Z", "AB"} {
		t.Run(key, func(t *testing.T) {
			c, err := vigenere.Encrypt(testutil.EnglishSample, key)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			letters := testutil.Letters(c)

			res, err := Recover(letters, len(key), alphabet.English())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Key != key {
				t.Errorf("Key = %q, want %q", res.Key, key)
			}
			if len(res.Positions) != len(key) {
				t.Fatalf("got %d positions, want %d", len(res.Positions), len(key))
			}
			total := 0
			for i, p := range res.Positions {
				if p.Shift != int(key[i]-'A') {
					t.Errorf("position %d shift = %d, want %d", i, p.Shift, key[i]-'A')
				}
				total += p.Count
			}
			if total != len(letters) {
				t.Errorf("position counts sum to %d, want %d", total, len(letters))
			}
		})
	}
}

func TestRecoverErrors(t *testing.T) {
	_, err := Recover("ABCDEF", 0, alphabet.English())
	if !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("expected ErrInvalidKeyLength, got %v", err)
	}

	_, err = Recover("ABC", 5, alphabet.English())
	if !errors.Is(err, ErrEmptyKeyPosition) {
		t.Errorf("expected ErrEmptyKeyPosition, got %v", err)
	}

	_, err = Recover("", 1, alphabet.English())
	if !errors.Is(err, ErrEmptyKeyPosition) {
		t.Errorf("expected ErrEmptyKeyPosition for empty input, got %v", err)
	}
}

func TestRecoverCustomDistribution(t *testing.T) {
	// All reference weight on Z: a column of C must be a shift of 3.
	weights := make([]float64, alphabet.Size)
	weights[25] = 1
	ref, err := alphabet.NewDistribution(weights)
	if err != nil {
		t.Fatalf("NewDistribution: %v", err)
	}

	res, err := Recover("CcCc", 1, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Key != "D" {
		t.Errorf("Key = %q, want %q", res.Key, "D")
	}
}

func TestProfile(t *testing.T) {
	p := Profile("AaB!")
	want := make([]float64, alphabet.Size)
	want[0] = 200.0 / 3
	want[1] = 100.0 / 3
	testutil.RequireSliceNearlyEqual(t, p, want, 1e-9)

	var sum float64
	for _, v := range Profile(testutil.EnglishSample) {
		sum += v
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("profile sums to %v, want 100", sum)
	}

	testutil.RequireSliceNearlyEqual(t, Profile("123"), make([]float64, alphabet.Size), 0)
}

func TestScoresRotation(t *testing.T) {
	ref := alphabet.English().Slice()

	// profile[k] = ref[(k-3) mod 26], i.e. English shifted by 3.
	profile := make([]float64, alphabet.Size)
	for k := range profile {
		profile[(k+3)%alphabet.Size] = ref[k]
	}

	scores := Scores(profile, ref)
	shift, score := BestShift(scores)
	if shift != 3 {
		t.Errorf("BestShift = %d, want 3", shift)
	}

	var want float64
	for _, v := range ref {
		want += v * v
	}
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", score, want)
	}
}

func TestScoresMatchCircularCorrelation(t *testing.T) {
	ref := alphabet.English().Slice()
	profile := Profile(testutil.EnglishSample)

	want := make([]float64, alphabet.Size)
	for j := range want {
		for k := range ref {
			want[j] += profile[(k+j)%alphabet.Size] * ref[k]
		}
	}

	testutil.RequireSliceNearlyEqual(t, Scores(profile, ref), want, 1e-9)
}

func TestBestShiftTies(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   int
	}{
		{name: "empty", scores: nil, want: 0},
		{name: "all zero", scores: make([]float64, alphabet.Size), want: 0},
		{name: "tie keeps smallest", scores: []float64{1, 5, 2, 5}, want: 1},
		{name: "last wins when largest", scores: []float64{1, 2, 3}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := BestShift(tt.scores); got != tt.want {
				t.Errorf("BestShift(%v) = %d, want %d", tt.scores, got, tt.want)
			}
		})
	}
}
