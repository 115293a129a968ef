// Package vigenere implements the repeating-key shift cipher over ASCII
// letters.
//
// The key advances only on letters; every other byte is copied unchanged and
// letter case is preserved. [Encrypt] and [Decrypt] are exact inverses for
// any valid key.
package vigenere

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vigenere/cipher/alphabet"
)

// ErrInvalidKey is returned for keys that are empty or contain anything other
// than upper-case A-Z.
var ErrInvalidKey = errors.New("vigenere: key must be non-empty upper-case A-Z")

// ValidateKey checks that key is usable by Encrypt and Decrypt.
func ValidateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	for i := 0; i < len(key); i++ {
		if !alphabet.IsUpper(key[i]) {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidKey, key[i], i)
		}
	}
	return nil
}

// Decrypt subtracts the key from every letter of text.
func Decrypt(text, key string) (string, error) {
	return transform(text, key, -1)
}

// Encrypt adds the key to every letter of text.
func Encrypt(text, key string) (string, error) {
	return transform(text, key, 1)
}

// Shift rotates letter b by shift positions within its case. Non-letters are
// returned unchanged.
func Shift(b byte, shift int) byte {
	if !alphabet.IsLetter(b) {
		return b
	}
	base := alphabet.Base(b)
	s := shift % alphabet.Size
	if s < 0 {
		s += alphabet.Size
	}
	return byte((int(b-base)+s)%alphabet.Size) + base
}

func transform(text, key string, sign int) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}

	out := []byte(text)
	cursor := 0
	for i, b := range out {
		if !alphabet.IsLetter(b) {
			continue
		}
		out[i] = Shift(b, sign*int(key[cursor]-'A'))
		cursor = (cursor + 1) % len(key)
	}

	return string(out), nil
}
