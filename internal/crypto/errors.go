package crypto

import "errors"

var (
	// ErrProviderUnavailable is returned when no cryptographic provider
	// could be obtained.
	ErrProviderUnavailable = errors.New("crypto provider unavailable")

	// ErrKeyDerivation is returned when the provider rejects the PBKDF2 parameters.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the IV is not exactly one block long.
	ErrInvalidIVSize = errors.New("invalid IV size")

	// ErrInvalidCiphertextSize is returned when the ciphertext is empty or
	// not a multiple of the block size.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrInvalidBase64 is returned when transport text is not valid
	// standard padded base64.
	ErrInvalidBase64 = errors.New("invalid base64")

	// ErrInvalidPadding is returned when decrypted data does not end with
	// valid PKCS#7 padding. With a fixed IV this usually means a wrong
	// password or damaged ciphertext.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidUTF8 is returned when decrypted bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrNilKey is returned when a cipher operation receives no key.
	ErrNilKey = errors.New("nil key")
)
