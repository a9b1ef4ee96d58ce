package crypto

import (
	"crypto/cipher"
	"fmt"
)

// EncryptCBC encrypts plaintext with AES-256-CBC and PKCS#7 padding.
// The result is always a non-empty multiple of BlockSize. Neither
// plaintext nor iv is modified.
func EncryptCBC(key *Key, iv, plaintext []byte) ([]byte, error) {
	if key == nil {
		return nil, ErrNilKey
	}

	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), BlockSize)
	}

	padded := pkcs7Pad(plaintext, BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(key.block, iv).CryptBlocks(ciphertext, padded)
	clear(padded)

	return ciphertext, nil
}

// DecryptCBC decrypts AES-256-CBC ciphertext and strips its PKCS#7 padding.
//
// There is no integrity tag. A wrong key is only noticed because the
// padding comes out invalid, which happens with high but not certain
// probability: roughly one wrong key in 256 yields valid-looking padding
// and returns garbage.
func DecryptCBC(key *Key, iv, ciphertext []byte) ([]byte, error) {
	if key == nil {
		return nil, ErrNilKey
	}

	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidIVSize, len(iv), BlockSize)
	}

	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes, want a non-zero multiple of %d",
			ErrInvalidCiphertextSize, len(ciphertext), BlockSize)
	}

	decrypted := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(key.block, iv).CryptBlocks(decrypted, ciphertext)

	plaintext, err := pkcs7Unpad(decrypted, BlockSize)
	if err != nil {
		clear(decrypted)
		return nil, err
	}

	return plaintext, nil
}
