// Package textcrypt encrypts short texts under a password so that the
// result can be copied, pasted and shared as a single base64 string.
//
// Keys are derived with PBKDF2-HMAC-SHA-256 (100000 iterations) over a fixed
// salt and text is encrypted with AES-256-CBC under a fixed IV. Encryption
// is therefore deterministic: the same text and password always give the
// same ciphertext, on every platform. There is no integrity tag, so a wrong
// password is detected with high probability rather than with certainty.
//
// Basic usage:
//
//	ciphertext, err := textcrypt.EncryptWithPassword(ctx, "hello world", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ciphertext == "W+d7gkBKHg9XUy37uVuuLg=="
//
//	plaintext, err := textcrypt.DecryptWithPassword(ctx, ciphertext, "secret")
//	if errors.Is(err, textcrypt.ErrWrongPasswordLikely) {
//	    fmt.Println("wrong password or damaged ciphertext")
//	}
//
// The package also provides MD5Hex, the text checksum helper of the same
// tool suite.
package textcrypt
