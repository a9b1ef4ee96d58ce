//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/devtoolbox/textcrypt"
)

var (
	vectorsFile string
	vectors     []vector
)

// vector is one known-answer case produced by another implementation
// of the scheme.
type vector struct {
	Plaintext  string `json:"plaintext"`
	Password   string `json:"password"`
	Ciphertext string `json:"ciphertext"`
}

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	vectorsFile = os.Getenv("TEXTCRYPT_VECTORS_FILE")
	if vectorsFile == "" {
		os.Stderr.WriteString("Skipping integration tests: TEXTCRYPT_VECTORS_FILE not set\n")
		os.Exit(0)
	}

	data, err := os.ReadFile(vectorsFile)
	if err != nil {
		os.Stderr.WriteString("Failed to read vectors: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := json.Unmarshal(data, &vectors); err != nil {
		os.Stderr.WriteString("Failed to parse vectors: " + err.Error() + "\n")
		os.Exit(1)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("Vectors: " + vectorsFile + "\n")

	os.Exit(m.Run())
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)
	return ctx
}

func newCipher(t *testing.T, provider string) *textcrypt.Cipher {
	t.Helper()

	cipher, err := textcrypt.New(textcrypt.WithProviderName(provider))
	if err != nil {
		t.Fatalf("New(%s) error = %v", provider, err)
	}
	return cipher
}

func TestIntegration_VectorsLoaded(t *testing.T) {
	if len(vectors) == 0 {
		t.Fatalf("%s contains no vectors", vectorsFile)
	}
	t.Logf("Loaded %d vectors", len(vectors))
}
