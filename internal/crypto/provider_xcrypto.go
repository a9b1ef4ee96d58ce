package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// xcryptoProvider derives keys with golang.org/x/crypto/pbkdf2.
type xcryptoProvider struct{}

func (xcryptoProvider) Name() string { return ProviderXCrypto }

func (xcryptoProvider) PBKDF2(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 || keyLen < 1 {
		return nil, fmt.Errorf("%w: iterations=%d keyLen=%d", ErrKeyDerivation, iterations, keyLen)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New), nil
}

func (xcryptoProvider) NewBlock(key []byte) (cipher.Block, error) {
	return aes.NewCipher(key)
}
