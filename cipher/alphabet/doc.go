// Package alphabet provides the 26-letter English alphabet primitives shared
// by the cipher and analysis packages.
//
// # Streams
//
// [Extract] splits raw ciphertext into a [Stream]: the raw text kept verbatim
// for decryption, and the alphabetic-only letters used for statistics:
//
//	s, err := alphabet.Extract(raw)
//	if errors.Is(err, alphabet.ErrInputTooLarge) {
//		// raise the bound with alphabet.WithCapacity or split the input
//	}
//	n := len(s.Letters)
//
// Characters are bytes. Only ASCII A-Z and a-z are letters; every other byte,
// including the bytes of multi-byte UTF-8 sequences, is passed through.
//
// # Reference distributions
//
// A [Distribution] holds the expected relative frequency of each letter.
// [English] returns the standard English table in percent. Distributions are
// plain arrays, so callers receive copies and can substitute their own via
// [NewDistribution] without affecting anyone else.
package alphabet
