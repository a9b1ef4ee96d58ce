// Package crypto provides the cryptographic primitives behind password-based
// text encryption: deterministic key derivation, a block cipher in chained
// mode, and the transport codecs around them.
//
// # Algorithm Suite
//
//   - PBKDF2 with HMAC-SHA-256, 100000 iterations, over the fixed salt
//     [FixedSalt], producing a 256-bit key.
//
//   - AES-256-CBC with PKCS#7 padding, using the fixed IV returned by
//     [FixedIV].
//
//   - Standard base64 with padding (RFC 4648 §4) for ciphertext, and strict
//     UTF-8 for text.
//
// # Security Model
//
// Salt and IV never change. Encrypting the same text with the same password
// always yields the same ciphertext, which makes ciphertext shareable and
// reproducible but lets an observer tell when two messages are equal.
//
// There is no integrity tag. Decryption under a wrong password is detected
// only through invalid padding or ill-formed UTF-8, so detection is
// probabilistic. Do not add an authenticated mode here: it would break
// every ciphertext produced so far.
//
// # Providers
//
// Key derivation and block cipher construction go through a [Provider].
// Two are built in, [ProviderXCrypto] (golang.org/x/crypto/pbkdf2) and
// [ProviderStdlib] (crypto/pbkdf2). [DefaultProvider] picks one once per
// process from the TEXTCRYPT_PROVIDER environment variable. Both produce
// identical keys.
//
// Derived keys should never be logged or stored. [Key] keeps only the
// expanded block cipher, never the raw bytes.
package crypto
