package testutil

import (
	"strings"
	"testing"
)

func TestLetters(t *testing.T) {
	if got := Letters("It's 9 o'clock!"); got != "Itsoclock" {
		t.Errorf("Letters = %q, want %q", got, "Itsoclock")
	}
}

func TestEnglishSampleLength(t *testing.T) {
	if n := len(Letters(EnglishSample)); n < 2000 {
		t.Fatalf("EnglishSample has %d letters, want >= 2000", n)
	}
}

func TestDeterministicText(t *testing.T) {
	a := DeterministicText(42, "AB", 64)
	b := DeterministicText(42, "AB", 64)
	if a != b {
		t.Fatal("same seed produced different text")
	}
	if strings.Trim(a, "AB") != "" {
		t.Fatalf("text contains bytes outside the charset: %q", a)
	}
}

func TestRequireLayoutPreserved(t *testing.T) {
	RequireLayoutPreserved(t, "Ab, c!", "Zy, x!")
}
