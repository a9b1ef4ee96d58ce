package textcrypt

import (
	"errors"
	"fmt"

	"github.com/devtoolbox/textcrypt/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrEncryptionFailed matches every error returned by EncryptWithPassword.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed matches every error returned by DecryptWithPassword.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrProviderUnavailable is returned when the cryptographic provider
	// could not be obtained.
	ErrProviderUnavailable = errors.New("crypto provider unavailable")

	// ErrKeyDerivation is returned when the provider rejects the PBKDF2 parameters.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrMalformedCiphertext is returned when the ciphertext is not valid
	// base64 or its length is not a non-zero multiple of the block size.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrWrongPasswordLikely is returned when decrypted data has invalid
	// padding or is not valid UTF-8. Either the password is wrong or the
	// ciphertext is damaged; the two cannot be told apart.
	ErrWrongPasswordLikely = errors.New("wrong password or corrupted ciphertext")
)

// TextcryptError is implemented by all errors returned from this package.
type TextcryptError interface {
	error
	TextcryptError() // marker method
}

// Stage names the step of an operation that failed.
type Stage string

const (
	// StageProvider is the resolution of the cryptographic provider.
	StageProvider Stage = "provider"
	// StageKDF is PBKDF2 key derivation.
	StageKDF Stage = "kdf"
	// StageDecode is base64 decoding of the ciphertext.
	StageDecode Stage = "decode"
	// StageCipher is AES-CBC encryption or decryption, including padding.
	StageCipher Stage = "cipher"
	// StageText is UTF-8 decoding of the recovered plaintext.
	StageText Stage = "text"
)

// ProviderError represents a failure to obtain a cryptographic provider.
type ProviderError struct {
	Name string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("provider %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("provider: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderUnavailable
}

// TextcryptError implements the TextcryptError interface.
func (e *ProviderError) TextcryptError() {}

// KeyDerivationError represents PBKDF2 parameters rejected by the provider.
// It signals a broken environment, not bad user input.
type KeyDerivationError struct {
	Provider string
	Err      error
}

func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("key derivation with provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyDerivationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyDerivationError) Is(target error) bool {
	return target == ErrKeyDerivation
}

// TextcryptError implements the TextcryptError interface.
func (e *KeyDerivationError) TextcryptError() {}

// EncryptionError is returned for every failure of EncryptWithPassword.
type EncryptionError struct {
	Stage Stage
	Err   error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// TextcryptError implements the TextcryptError interface.
func (e *EncryptionError) TextcryptError() {}

// DecryptionError is returned for every failure of DecryptWithPassword.
//
// When the ciphertext cannot be decoded or decrypted cleanly the message
// names a wrong password and corrupted or non-matching ciphertext as the
// likely causes. The package cannot say which one applies.
type DecryptionError struct {
	Stage Stage
	Err   error
}

func (e *DecryptionError) Error() string {
	switch e.Stage {
	case StageDecode, StageCipher, StageText:
		return fmt.Sprintf("decryption failed at %s: the password may be wrong, or the ciphertext corrupted or not produced by this tool: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	switch target {
	case ErrDecryptionFailed:
		return true
	case ErrMalformedCiphertext:
		return errors.Is(e.Err, crypto.ErrInvalidBase64) ||
			errors.Is(e.Err, crypto.ErrInvalidCiphertextSize)
	case ErrWrongPasswordLikely:
		return errors.Is(e.Err, crypto.ErrInvalidPadding) ||
			errors.Is(e.Err, crypto.ErrInvalidUTF8)
	}
	return false
}

// TextcryptError implements the TextcryptError interface.
func (e *DecryptionError) TextcryptError() {}

// wrapError converts internal crypto errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error, provider string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrProviderUnavailable):
		return &ProviderError{Name: provider, Err: err}
	case errors.Is(err, crypto.ErrKeyDerivation):
		return &KeyDerivationError{Provider: provider, Err: err}
	}

	return err
}
