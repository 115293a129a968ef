// Package testutil holds shared fixtures and assertions for package tests.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireLayoutPreserved fails t unless out has the length of in, every
// non-letter byte is unchanged and every letter keeps its case.
func RequireLayoutPreserved(t *testing.T, in, out string) {
	t.Helper()
	if len(in) != len(out) {
		t.Fatalf("length mismatch: got %d, want %d", len(out), len(in))
	}
	for i := 0; i < len(in); i++ {
		a, b := in[i], out[i]
		switch {
		case isUpper(a):
			if !isUpper(b) {
				t.Fatalf("index %d: %q became %q", i, a, b)
			}
		case isLower(a):
			if !isLower(b) {
				t.Fatalf("index %d: %q became %q", i, a, b)
			}
		case a != b:
			t.Fatalf("index %d: non-letter %q became %q", i, a, b)
		}
	}
}

func isUpper(b byte) bool { return 'A' <= b && b <= 'Z' }
func isLower(b byte) bool { return 'a' <= b && b <= 'z' }
