package crypto

import (
	"crypto/cipher"
	"errors"
	"fmt"
)

// Key is a derived AES-256 key bound to CBC encryption and decryption.
// The raw key bytes are dropped once the block cipher is built, so a Key
// cannot be exported or reused with another algorithm.
type Key struct {
	block    cipher.Block
	provider string
}

// Provider returns the name of the provider that derived the key.
func (k *Key) Provider() string {
	return k.provider
}

// DeriveKey derives the AES-256 key for password using PBKDF2-SHA-256 with
// the fixed salt and iteration count. The same password always yields the
// same key, on every provider.
func DeriveKey(p Provider, password []byte) (*Key, error) {
	raw, err := deriveKeyBytes(p, password)
	if err != nil {
		return nil, err
	}
	defer clear(raw)

	return newKey(p, raw)
}

// deriveKeyBytes returns the raw PBKDF2 output. Callers must clear it.
func deriveKeyBytes(p Provider, password []byte) ([]byte, error) {
	if p == nil {
		return nil, ErrProviderUnavailable
	}

	raw, err := p.PBKDF2(password, []byte(FixedSalt), PBKDF2Iterations, KeySize)
	if err != nil {
		if errors.Is(err, ErrKeyDerivation) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}

	if len(raw) != KeySize {
		clear(raw)
		return nil, fmt.Errorf("%w: provider %s returned %d bytes, want %d",
			ErrKeyDerivation, p.Name(), len(raw), KeySize)
	}

	return raw, nil
}

// newKey builds a Key from raw key bytes. raw is not retained.
func newKey(p Provider, raw []byte) (*Key, error) {
	if p == nil {
		return nil, ErrProviderUnavailable
	}

	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(raw), KeySize)
	}

	block, err := p.NewBlock(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &Key{block: block, provider: p.Name()}, nil
}

// FixedIV returns a fresh copy of the CBC initialization vector: the first
// BlockSize bytes of FixedIVSeed, zero padded if the seed were shorter.
func FixedIV() []byte {
	iv := make([]byte, BlockSize)
	copy(iv, FixedIVSeed)
	return iv
}
