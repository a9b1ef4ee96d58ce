// Command testhelper drives textcrypt from JSON on stdin so that other
// implementations of the scheme can be checked against this one.
//
//	echo '{"text":"hello world","password":"secret"}' | testhelper encrypt
//	{"result":"W+d7gkBKHg9XUy37uVuuLg=="}
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/devtoolbox/textcrypt"
)

const usage = "usage: testhelper <encrypt|decrypt|md5|vectors>"

// Config holds the I/O streams used by the helper.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// CipherInterface is the part of *textcrypt.Cipher the helper uses.
type CipherInterface interface {
	EncryptWithPassword(ctx context.Context, plaintext, password string) (string, error)
	DecryptWithPassword(ctx context.Context, ciphertextBase64, password string) (string, error)
}

// Request is read from stdin by encrypt, decrypt and md5.
type Request struct {
	Text     string `json:"text"`
	Password string `json:"password"`
	Short    bool   `json:"short,omitempty"`
	Upper    bool   `json:"upper,omitempty"`
}

// Response is written to stdout by encrypt, decrypt and md5.
type Response struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// Vector is one known-answer case for the vectors command.
type Vector struct {
	Plaintext  string `json:"plaintext"`
	Password   string `json:"password"`
	Ciphertext string `json:"ciphertext"`
}

// VectorResult reports one vector.
type VectorResult struct {
	Index     int    `json:"index"`
	EncryptOK bool   `json:"encryptOk"`
	DecryptOK bool   `json:"decryptOk"`
	Error     string `json:"error,omitempty"`
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New(usage)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if args[1] == "md5" {
		return runMD5(cfg)
	}

	cipher, err := textcrypt.New()
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}

	switch args[1] {
	case "encrypt":
		return runEncrypt(ctx, cipher, cfg)
	case "decrypt":
		return runDecrypt(ctx, cipher, cfg)
	case "vectors":
		return runVectors(ctx, cipher, cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func readRequest(cfg *Config) (*Request, error) {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	return &req, nil
}

func writeJSON(cfg *Config, v any) error {
	if err := json.NewEncoder(cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func runEncrypt(ctx context.Context, cipher CipherInterface, cfg *Config) error {
	req, err := readRequest(cfg)
	if err != nil {
		return err
	}

	result, err := cipher.EncryptWithPassword(ctx, req.Text, req.Password)
	if err != nil {
		return writeJSON(cfg, errorResponse(err))
	}
	return writeJSON(cfg, Response{Result: result})
}

func runDecrypt(ctx context.Context, cipher CipherInterface, cfg *Config) error {
	req, err := readRequest(cfg)
	if err != nil {
		return err
	}

	result, err := cipher.DecryptWithPassword(ctx, req.Text, req.Password)
	if err != nil {
		return writeJSON(cfg, errorResponse(err))
	}
	return writeJSON(cfg, Response{Result: result})
}

func runMD5(cfg *Config) error {
	req, err := readRequest(cfg)
	if err != nil {
		return err
	}

	var opts []textcrypt.DigestOption
	if req.Short {
		opts = append(opts, textcrypt.WithDigestLength(textcrypt.DigestShort))
	}
	if req.Upper {
		opts = append(opts, textcrypt.WithUppercase())
	}
	return writeJSON(cfg, Response{Result: textcrypt.MD5Hex(req.Text, opts...)})
}

func runVectors(ctx context.Context, cipher CipherInterface, cfg *Config) error {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var vectors []Vector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return fmt.Errorf("parse vectors: %w", err)
	}

	results := checkVectors(ctx, cipher, vectors)
	if err := writeJSON(cfg, results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.EncryptOK || !r.DecryptOK {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d vectors failed", failed, len(results))
	}
	return nil
}

// checkVectors encrypts and decrypts every vector and compares both
// directions with the expected values.
func checkVectors(ctx context.Context, cipher CipherInterface, vectors []Vector) []VectorResult {
	results := make([]VectorResult, 0, len(vectors))

	for i, v := range vectors {
		r := VectorResult{Index: i}

		got, err := cipher.EncryptWithPassword(ctx, v.Plaintext, v.Password)
		switch {
		case err != nil:
			r.Error = err.Error()
		case got != v.Ciphertext:
			r.Error = fmt.Sprintf("encrypt: got %s, want %s", got, v.Ciphertext)
		default:
			r.EncryptOK = true
		}

		plain, err := cipher.DecryptWithPassword(ctx, v.Ciphertext, v.Password)
		switch {
		case err != nil:
			if r.Error == "" {
				r.Error = err.Error()
			}
		case plain != v.Plaintext:
			if r.Error == "" {
				r.Error = "decrypt: plaintext mismatch"
			}
		default:
			r.DecryptOK = true
		}

		results = append(results, r)
	}

	return results
}

func errorResponse(err error) Response {
	resp := Response{Error: err.Error(), Kind: "error"}
	switch {
	case errors.Is(err, textcrypt.ErrMalformedCiphertext):
		resp.Kind = "malformed_ciphertext"
	case errors.Is(err, textcrypt.ErrWrongPasswordLikely):
		resp.Kind = "wrong_password_likely"
	case errors.Is(err, textcrypt.ErrProviderUnavailable):
		resp.Kind = "provider_unavailable"
	case errors.Is(err, textcrypt.ErrKeyDerivation):
		resp.Kind = "key_derivation"
	}
	return resp
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
