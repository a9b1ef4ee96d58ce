package textcrypt

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/devtoolbox/textcrypt/internal/crypto"
)

// DigestLength is the number of hex characters MD5Hex returns.
type DigestLength int

const (
	// DigestFull is the complete 32 character MD5 digest.
	DigestFull DigestLength = 32
	// DigestShort is the 16 character form: the middle of the full digest.
	DigestShort DigestLength = 16
)

// digestConfig holds configuration for MD5Hex.
type digestConfig struct {
	length    DigestLength
	uppercase bool
}

// DigestOption configures MD5Hex.
type DigestOption func(*digestConfig)

// WithDigestLength sets the digest length. Default: DigestFull.
func WithDigestLength(length DigestLength) DigestOption {
	return func(c *digestConfig) {
		c.length = length
	}
}

// WithUppercase returns the digest in upper case hex.
func WithUppercase() DigestOption {
	return func(c *digestConfig) {
		c.uppercase = true
	}
}

// MD5Hex returns the hex MD5 digest of the UTF-8 encoding of text.
// It is a checksum for display, not a password hash.
func MD5Hex(text string, opts ...DigestOption) string {
	cfg := &digestConfig{length: DigestFull}
	for _, opt := range opts {
		opt(cfg)
	}

	sum := md5.Sum(crypto.TextToBytes(text))
	digest := hex.EncodeToString(sum[:])

	if cfg.length == DigestShort {
		digest = digest[8:24]
	}
	if cfg.uppercase {
		digest = strings.ToUpper(digest)
	}
	return digest
}
