package crypto

const (
	// FixedSalt is the PBKDF2 salt shared by every derivation.
	// Changing it breaks every ciphertext produced so far.
	FixedSalt = "FixedSaltValue12345"

	// FixedIVSeed is the string the CBC initialization vector is built from.
	FixedIVSeed = "FixedIV123456789"

	// PBKDF2Iterations is the PBKDF2 iteration count.
	PBKDF2Iterations = 100000

	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32

	// BlockSize is the AES block size in bytes. It is also the IV size.
	BlockSize = 16
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "PBKDF2-SHA-256:AES-256-CBC:PKCS7:BASE64"
