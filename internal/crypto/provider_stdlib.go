package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/pbkdf2"
	"crypto/sha256"
	"fmt"
)

// stdlibProvider derives keys with the standard library's crypto/pbkdf2,
// which also enforces FIPS 140-3 parameter rules when that mode is on.
type stdlibProvider struct{}

func (stdlibProvider) Name() string { return ProviderStdlib }

func (stdlibProvider) PBKDF2(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 || keyLen < 1 {
		return nil, fmt.Errorf("%w: iterations=%d keyLen=%d", ErrKeyDerivation, iterations, keyLen)
	}
	key, err := pbkdf2.Key(sha256.New, string(password), salt, iterations, keyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}
	return key, nil
}

func (stdlibProvider) NewBlock(key []byte) (cipher.Block, error) {
	return aes.NewCipher(key)
}
