package textcrypt

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devtoolbox/textcrypt/internal/crypto"
)

// Cipher encrypts and decrypts text under a password. It holds no state
// beyond its configuration and is safe for concurrent use.
type Cipher struct {
	provider Provider
	log      logrus.FieldLogger
}

// New creates a Cipher. Without options it uses the process default
// provider, resolved once from the TEXTCRYPT_PROVIDER environment variable.
func New(opts ...Option) (*Cipher, error) {
	cfg := &cipherConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	p := cfg.provider
	if p == nil {
		var err error
		if cfg.providerName != "" {
			p, err = crypto.ProviderByName(cfg.providerName)
		} else {
			p, err = crypto.DefaultProvider()
		}
		if err != nil {
			return nil, wrapError(err, cfg.providerName)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = discardLogger()
	}

	return &Cipher{
		provider: p,
		log:      logger.WithField("provider", p.Name()),
	}, nil
}

// Provider returns the name of the provider in use.
func (c *Cipher) Provider() string {
	return c.provider.Name()
}

// EncryptWithPassword encrypts plaintext under password and returns the
// ciphertext as standard padded base64. The same inputs always produce the
// same output.
//
// Any failure is returned as *EncryptionError.
func (c *Cipher) EncryptWithPassword(ctx context.Context, plaintext, password string) (string, error) {
	start := time.Now()
	data := crypto.TextToBytes(plaintext)
	size := len(data)
	defer clear(data)

	key, err := c.deriveKey(ctx, password)
	if err != nil {
		return "", c.encryptFailed(StageKDF, err, start)
	}

	ciphertext, err := crypto.EncryptCBC(key, crypto.FixedIV(), data)
	if err != nil {
		return "", c.encryptFailed(StageCipher, err, start)
	}

	c.log.WithFields(logrus.Fields{
		"operation":        "encrypt",
		"plaintext_bytes":  size,
		"ciphertext_bytes": len(ciphertext),
		"duration":         time.Since(start),
	}).Debug("Text encrypted")

	return crypto.ToBase64(ciphertext), nil
}

// DecryptWithPassword decrypts base64 ciphertext produced by
// EncryptWithPassword under password.
//
// Any failure is returned as *DecryptionError. A wrong password is detected
// only with high probability: there is no integrity tag, so in rare cases a
// wrong password yields valid-looking padding. Such output is almost always
// rejected as ill-formed UTF-8.
func (c *Cipher) DecryptWithPassword(ctx context.Context, ciphertextBase64, password string) (string, error) {
	start := time.Now()

	ciphertext, err := crypto.FromBase64(ciphertextBase64)
	if err != nil {
		return "", c.decryptFailed(StageDecode, err, start)
	}

	key, err := c.deriveKey(ctx, password)
	if err != nil {
		return "", c.decryptFailed(StageKDF, err, start)
	}

	data, err := crypto.DecryptCBC(key, crypto.FixedIV(), ciphertext)
	if err != nil {
		return "", c.decryptFailed(StageCipher, err, start)
	}
	defer clear(data)

	plaintext, err := crypto.BytesToText(data)
	if err != nil {
		return "", c.decryptFailed(StageText, err, start)
	}

	c.log.WithFields(logrus.Fields{
		"operation":        "decrypt",
		"ciphertext_bytes": len(ciphertext),
		"plaintext_bytes":  len(data),
		"duration":         time.Since(start),
	}).Debug("Text decrypted")

	return plaintext, nil
}

// deriveKey runs key derivation so that a cancelled ctx returns promptly.
// A key derived after cancellation is dropped unused.
func (c *Cipher) deriveKey(ctx context.Context, password string) (*crypto.Key, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		key *crypto.Key
		err error
	}
	done := make(chan result, 1)

	go func() {
		key, err := crypto.DeriveKey(c.provider, []byte(password))
		done <- result{key: key, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, wrapError(r.err, c.provider.Name())
		}
		return r.key, nil
	}
}

func (c *Cipher) encryptFailed(stage Stage, err error, start time.Time) error {
	c.log.WithFields(logrus.Fields{
		"operation": "encrypt",
		"stage":     stage,
		"duration":  time.Since(start),
	}).WithError(err).Debug("Encryption failed")
	return &EncryptionError{Stage: stage, Err: err}
}

func (c *Cipher) decryptFailed(stage Stage, err error, start time.Time) error {
	c.log.WithFields(logrus.Fields{
		"operation": "decrypt",
		"stage":     stage,
		"duration":  time.Since(start),
	}).WithError(err).Debug("Decryption failed")
	return &DecryptionError{Stage: stage, Err: err}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// defaultCipher is resolved once, on the first package-level call.
var defaultCipher = sync.OnceValues(func() (*Cipher, error) {
	return New()
})

// EncryptWithPassword encrypts plaintext under password with the default
// Cipher. See Cipher.EncryptWithPassword.
func EncryptWithPassword(ctx context.Context, plaintext, password string) (string, error) {
	c, err := defaultCipher()
	if err != nil {
		return "", &EncryptionError{Stage: StageProvider, Err: err}
	}
	return c.EncryptWithPassword(ctx, plaintext, password)
}

// DecryptWithPassword decrypts base64 ciphertext under password with the
// default Cipher. See Cipher.DecryptWithPassword.
func DecryptWithPassword(ctx context.Context, ciphertextBase64, password string) (string, error) {
	c, err := defaultCipher()
	if err != nil {
		return "", &DecryptionError{Stage: StageProvider, Err: err}
	}
	return c.DecryptWithPassword(ctx, ciphertextBase64, password)
}
