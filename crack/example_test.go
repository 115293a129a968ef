package crack_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vigenere/cipher/vigenere"
	"github.com/cwbudde/algo-vigenere/crack"
	"github.com/cwbudde/algo-vigenere/internal/testutil"
)

func ExampleCrack() {
	ciphertext, _ := vigenere.Encrypt(testutil.EnglishSample, "LEMON")

	res, err := crack.Crack(ciphertext)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.KeyLength, res.Key)
	fmt.Println(res.Plaintext[:31])

	// Output:
	// 5 LEMON
	// The lighthouse keeper had lived
}

func ExampleCrack_noLetters() {
	_, err := crack.Crack("12:30, 14:45 -- 16:00!")
	fmt.Println(errors.Is(err, crack.ErrInsufficientData))

	// Output:
	// true
}
