package textcrypt

import (
	"github.com/sirupsen/logrus"

	"github.com/devtoolbox/textcrypt/internal/crypto"
)

// Provider is the cryptographic backend used for key derivation and the
// block cipher. Custom implementations must derive PBKDF2 with HMAC-SHA-256
// and build AES block ciphers, or existing ciphertext will not decrypt.
type Provider = crypto.Provider

// Built-in provider names.
const (
	// ProviderXCrypto derives keys with golang.org/x/crypto/pbkdf2. It is the default.
	ProviderXCrypto = crypto.ProviderXCrypto
	// ProviderStdlib derives keys with the standard library's crypto/pbkdf2.
	ProviderStdlib = crypto.ProviderStdlib
)

// ProviderEnvVar selects the default provider. It is read once, on first use.
const ProviderEnvVar = crypto.ProviderEnvVar

// cipherConfig holds configuration for a Cipher.
type cipherConfig struct {
	provider     Provider
	providerName string
	logger       logrus.FieldLogger
}

// Option configures a Cipher.
type Option func(*cipherConfig)

// WithProvider sets the provider directly. It takes precedence over
// WithProviderName.
func WithProvider(p Provider) Option {
	return func(c *cipherConfig) {
		c.provider = p
	}
}

// WithProviderName selects a built-in provider by name instead of the
// process default.
func WithProviderName(name string) Option {
	return func(c *cipherConfig) {
		c.providerName = name
	}
}

// WithLogger sets the logger for debug output. Only operation names,
// stages, durations and byte counts are logged. Default: discard.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *cipherConfig) {
		c.logger = logger
	}
}
