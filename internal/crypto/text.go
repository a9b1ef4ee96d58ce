package crypto

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TextToBytes returns the UTF-8 encoding of s. Ill-formed sequences are
// replaced with U+FFFD so that the encrypted bytes always decode again.
func TextToBytes(s string) []byte {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return []byte(s)
}

// BytesToText decodes b as UTF-8 and fails on any ill-formed sequence
// rather than substituting replacement characters.
func BytesToText(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	offset := 0
	for offset < len(b) {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return "", fmt.Errorf("%w: ill-formed sequence at byte %d", ErrInvalidUTF8, offset)
}
