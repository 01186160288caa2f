// Package hexutil implements strict hexadecimal encoding and decoding of
// byte sequences, two digits per byte, most-significant nibble first.
package hexutil

import (
	"errors"
	"fmt"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

var (
	// ErrOddLength reports a hex string whose length is not a multiple of two.
	ErrOddLength = errors.New("hexutil: odd length hex string")
	// ErrInvalidByte reports a character outside [0-9a-fA-F].
	ErrInvalidByte = errors.New("hexutil: invalid hex byte")
)

// Encode returns the hexadecimal form of src, producing exactly 2*len(src)
// characters with the high nibble of each byte first. The lowercase flag
// selects the digit alphabet. An empty src encodes to "".
func Encode(src []byte, lowercase bool) string {
	out := make([]byte, len(src)*2)
	for i, v := range src {
		out[i*2] = encodeDigit(v>>4, lowercase)
		out[i*2+1] = encodeDigit(v, lowercase)
	}
	return string(out)
}

// Decode parses a hex string into the bytes it encodes. Upper and lower case
// digits are accepted interchangeably, and an empty string decodes to an
// empty slice. The length must be even (ErrOddLength) and every character
// must be a hex digit (ErrInvalidByte, wrapped together with the offending
// character and its index).
//
// Decode is general purpose: it places no constraint on the decoded length.
// Fixed-width callers enforce their own length checks before decoding.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d characters", ErrOddLength, len(s))
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := decodeDigit(s[i])
		if !ok {
			return nil, fmt.Errorf("%w %q at index %d", ErrInvalidByte, s[i], i)
		}
		lo, ok := decodeDigit(s[i+1])
		if !ok {
			return nil, fmt.Errorf("%w %q at index %d", ErrInvalidByte, s[i+1], i+1)
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

// decodeDigit converts one hex character to its 4-bit value.
func decodeDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// encodeDigit renders the low 4 bits of v as one hex character.
func encodeDigit(v byte, lowercase bool) byte {
	if lowercase {
		return lowerDigits[v&0x0f]
	}
	return upperDigits[v&0x0f]
}
