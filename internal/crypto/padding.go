package crypto

import "fmt"

// pkcs7Pad returns a new slice holding data followed by 1..blockSize bytes
// of PKCS#7 padding. data is not modified.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad validates and strips PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: padded length %d", ErrInvalidPadding, len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: padding length %d", ErrInvalidPadding, padLen)
	}

	// Check every padding byte without an early exit.
	var bad byte
	for _, b := range data[len(data)-padLen:] {
		bad |= b ^ byte(padLen)
	}
	if bad != 0 {
		return nil, ErrInvalidPadding
	}

	return data[:len(data)-padLen], nil
}
