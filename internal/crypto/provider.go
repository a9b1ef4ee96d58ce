package crypto

import (
	"crypto/cipher"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ProviderEnvVar names the environment variable read once to pick the
// default provider.
const ProviderEnvVar = "TEXTCRYPT_PROVIDER"

// Provider names.
const (
	ProviderXCrypto = "xcrypto"
	ProviderStdlib  = "stdlib"
)

// Provider is the cryptographic backend the key derivation and cipher
// units run on. Implementations must be safe for concurrent use.
type Provider interface {
	// Name returns the provider's registered name.
	Name() string
	// PBKDF2 derives keyLen bytes with HMAC-SHA-256 as the PRF.
	PBKDF2(password, salt []byte, iterations, keyLen int) ([]byte, error)
	// NewBlock returns an AES block cipher for key.
	NewBlock(key []byte) (cipher.Block, error)
}

var (
	defaultOnce     sync.Once
	defaultProvider Provider
	defaultErr      error
)

// DefaultProvider resolves the process-wide provider on first use and
// returns the same result on every later call.
func DefaultProvider() (Provider, error) {
	defaultOnce.Do(func() {
		name := strings.TrimSpace(os.Getenv(ProviderEnvVar))
		if name == "" {
			name = ProviderXCrypto
		}
		defaultProvider, defaultErr = ProviderByName(name)
	})
	return defaultProvider, defaultErr
}

// ProviderByName returns the provider registered under name.
func ProviderByName(name string) (Provider, error) {
	switch strings.ToLower(name) {
	case ProviderXCrypto:
		return xcryptoProvider{}, nil
	case ProviderStdlib:
		return stdlibProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrProviderUnavailable, name)
	}
}

// Providers returns every built-in provider.
func Providers() []Provider {
	return []Provider{xcryptoProvider{}, stdlibProvider{}}
}
