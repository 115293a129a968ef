// Package textio reads ciphertext sources for the command-line tools.
//
// Input bytes are decoded to UTF-8 before analysis: a UTF-8 BOM is dropped,
// UTF-16 is decoded when a BOM announces it, valid UTF-8 is kept as is, and
// anything else is taken to be Windows-1252 (a superset of ISO-8859-1 for
// printable text). ASCII letters are identical in all of these, so decoding
// never changes the analysed letter stream; it only keeps the surrounding
// text readable in the decrypted output.
//
// Sources are always returned as UTF-8, so size limits applied downstream
// count decoded bytes: a Windows-1252 file grows by one byte per accented
// letter and a UTF-16 file shrinks to about half.
package textio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the argument that selects standard input.
const Stdin = "-"

// Source is decoded ciphertext together with where it came from.
type Source struct {
	Name     string
	Text     string
	Encoding string
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts data to a UTF-8 string and reports the detected encoding.
func Decode(data []byte) (text, enc string, err error) {
	var dec *encoding.Decoder
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), "utf-8", nil
	case bytes.HasPrefix(data, bomUTF16LE):
		enc = "utf-16le"
		dec = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case bytes.HasPrefix(data, bomUTF16BE):
		enc = "utf-16be"
		dec = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	case utf8.Valid(data):
		return string(data), "utf-8", nil
	default:
		enc = "windows-1252"
		dec = charmap.Windows1252.NewDecoder()
	}

	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", enc, fmt.Errorf("textio: decode %s: %w", enc, err)
	}
	return string(out), enc, nil
}

// Read reads and decodes everything from r.
func Read(name string, r io.Reader) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("textio: read %s: %w", name, err)
	}
	text, enc, err := Decode(data)
	if err != nil {
		return Source{}, err
	}
	return Source{Name: name, Text: text, Encoding: enc}, nil
}

// ReadFile reads and decodes the named file.
func ReadFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("textio: %w", err)
	}
	defer f.Close()

	return Read(path, f)
}

// Expand resolves command-line arguments to input names. Arguments with
// glob metacharacters are expanded with doublestar semantics ("**" crosses
// directories) and their matches sorted; other arguments, including Stdin,
// pass through unchanged. A pattern that matches nothing is an error. No
// arguments means Stdin.
func Expand(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{Stdin}, nil
	}

	var out []string
	for _, arg := range args {
		if arg == Stdin || !hasMeta(arg) {
			out = append(out, arg)
			continue
		}

		pattern := filepath.ToSlash(arg)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("textio: invalid pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("textio: glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("textio: no files match %q", arg)
		}
		sort.Strings(matches)
		out = append(out, matches...)
	}

	return out, nil
}

// Open returns the source for one expanded name, reading stdin for Stdin.
func Open(name string, stdin io.Reader) (Source, error) {
	if name == Stdin {
		return Read("<stdin>", stdin)
	}
	return ReadFile(name)
}

func hasMeta(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
