package crypto

import (
	"errors"
	"testing"
)

func TestTextToBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"empty", "", []byte{}},
		{"ascii", "hello", []byte("hello")},
		{"multibyte", "你好", []byte{0xe4, 0xbd, 0xa0, 0xe5, 0xa5, 0xbd}},
		{"ill-formed replaced", "a\xffb", []byte("a�b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextToBytes(tt.in)
			if string(got) != string(tt.want) {
				t.Errorf("TextToBytes(%q) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}
}

func TestBytesToText(t *testing.T) {
	got, err := BytesToText([]byte("héllo 🔐"))
	if err != nil {
		t.Fatalf("BytesToText() error = %v", err)
	}
	if got != "héllo 🔐" {
		t.Errorf("BytesToText() = %q", got)
	}
}

func TestBytesToText_Strict(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"lone continuation byte", []byte{0x80}},
		{"truncated sequence", []byte{'o', 'k', 0xe4, 0xbd}},
		{"invalid byte", []byte{'a', 0xff}},
		{"overlong encoding", []byte{0xc0, 0xaf}},
		{"surrogate half", []byte{0xed, 0xa0, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BytesToText(tt.in)
			if !errors.Is(err, ErrInvalidUTF8) {
				t.Errorf("expected ErrInvalidUTF8, got %v", err)
			}
		})
	}
}
