package vigenere

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-vigenere/cipher/alphabet"
	"github.com/cwbudde/algo-vigenere/internal/testutil"
)

func TestEncryptDecryptKnown(t *testing.T) {
	tests := []struct {
		name   string
		plain  string
		key    string
		cipher string
	}{
		{name: "attack at dawn", plain: "ATTACKATDAWN", key: "LEMON", cipher: "LXFOPVEFRNHR"},
		{name: "punctuation skips key", plain: "Attack at dawn!", key: "LEMON", cipher: "Lxfopv ef rnhr!"},
		{name: "identity key", plain: "Hello, World", key: "A", cipher: "Hello, World"},
		{name: "wrap around", plain: "xyz XYZ", key: "D", cipher: "abc ABC"},
		{name: "empty text", plain: "", key: "KEY", cipher: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encrypt(tt.plain, tt.key)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			if got != tt.cipher {
				t.Errorf("Encrypt(%q, %q) = %q, want %q", tt.plain, tt.key, got, tt.cipher)
			}

			back, err := Decrypt(tt.cipher, tt.key)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if back != tt.plain {
				t.Errorf("Decrypt(%q, %q) = %q, want %q", tt.cipher, tt.key, back, tt.plain)
			}
		})
	}
}

func TestInvalidKey(t *testing.T) {
	for _, key := range []string{"", "lemon", "LE MON", "KEY1"} {
		if _, err := Decrypt("abc", key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Decrypt with key %q: expected ErrInvalidKey, got %v", key, err)
		}
		if _, err := Encrypt("abc", key); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Encrypt with key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		in    byte
		shift int
		want  byte
	}{
		{'A', 1, 'B'},
		{'Z', 1, 'A'},
		{'a', -1, 'z'},
		{'m', 26, 'm'},
		{'m', -27, 'l'},
		{'!', 5, '!'},
	}
	for _, tt := range tests {
		if got := Shift(tt.in, tt.shift); got != tt.want {
			t.Errorf("Shift(%q, %d) = %q, want %q", tt.in, tt.shift, got, tt.want)
		}
	}
}

func randomText(rng *rand.Rand, n int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz .,;:!?'\n\t0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rng.Intn(len(charset))]
	}
	return string(b)
}

func randomKey(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + rng.Intn(alphabet.Size))
	}
	return string(b)
}

func TestDecryptPreservesLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		raw := randomText(rng, 1+rng.Intn(400))
		key := randomKey(rng, 1+rng.Intn(20))

		plain, err := Decrypt(raw, key)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		testutil.RequireLayoutPreserved(t, raw, plain)

		back, err := Encrypt(plain, key)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		if back != raw {
			t.Fatalf("round trip failed for key %q", key)
		}
	}
}
