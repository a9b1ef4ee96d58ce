package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// strictStd rejects non-zero trailing bits so that every accepted string
// maps to exactly one byte sequence.
var strictStd = base64.StdEncoding.Strict()

// ToBase64 encodes bytes to standard base64 with padding (RFC 4648 §4).
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard padded base64. Surrounding whitespace, as
// left behind by copy and paste, is ignored.
func FromBase64(s string) ([]byte, error) {
	data, err := strictStd.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return data, nil
}
