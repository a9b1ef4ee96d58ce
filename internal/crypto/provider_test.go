package crypto

import (
	"errors"
	"testing"
)

func TestProviderByName(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
	}{
		{"xcrypto", ProviderXCrypto},
		{"stdlib", ProviderStdlib},
		{"XCRYPTO", ProviderXCrypto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ProviderByName(tt.name)
			if err != nil {
				t.Fatalf("ProviderByName() error = %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %s, want %s", p.Name(), tt.wantName)
			}
		})
	}
}

func TestProviderByName_Unknown(t *testing.T) {
	_, err := ProviderByName("webcrypto")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestProviders_RejectBadParameters(t *testing.T) {
	for _, p := range Providers() {
		if _, err := p.PBKDF2([]byte("pw"), []byte("salt"), 0, KeySize); !errors.Is(err, ErrKeyDerivation) {
			t.Errorf("%s: zero iterations: expected ErrKeyDerivation, got %v", p.Name(), err)
		}
		if _, err := p.PBKDF2([]byte("pw"), []byte("salt"), 1, 0); !errors.Is(err, ErrKeyDerivation) {
			t.Errorf("%s: zero length: expected ErrKeyDerivation, got %v", p.Name(), err)
		}
	}
}

func TestDefaultProvider_ResolvedOnce(t *testing.T) {
	first, err := DefaultProvider()
	if err != nil {
		t.Fatalf("DefaultProvider() error = %v", err)
	}

	t.Setenv(ProviderEnvVar, "no-such-provider")

	second, err := DefaultProvider()
	if err != nil {
		t.Fatalf("DefaultProvider() error after env change = %v", err)
	}
	if first.Name() != second.Name() {
		t.Errorf("provider changed from %s to %s", first.Name(), second.Name())
	}
}

func TestSetDefaultProviderForTesting(t *testing.T) {
	restore := SetDefaultProviderForTesting(nil, ErrProviderUnavailable)

	if _, err := DefaultProvider(); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}

	restore()

	if _, err := DefaultProvider(); err != nil {
		t.Errorf("DefaultProvider() after restore error = %v", err)
	}
}

func TestProviders_AgreeOnKeys(t *testing.T) {
	providers := Providers()
	if len(providers) != 2 {
		t.Fatalf("len(Providers()) = %d, want 2", len(providers))
	}

	for _, password := range []string{"", "secret", "pässwörd"} {
		a, err := deriveKeyBytes(providers[0], []byte(password))
		if err != nil {
			t.Fatal(err)
		}
		b, err := deriveKeyBytes(providers[1], []byte(password))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("providers disagree for %q", password)
		}
	}
}
