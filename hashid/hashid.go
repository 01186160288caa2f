package hashid

import (
	"crypto/md5"
	"fmt"

	"xdao.co/hashid/hexutil"
)

const (
	// Size is the number of raw bytes in an ID, the width of an MD5 digest.
	Size = md5.Size
	// EncodedSize is the number of characters in the hex form of an ID.
	EncodedSize = Size * 2
)

// ID is a 128-bit identifier holding an MD5 digest.
//
// Two IDs are equal exactly when their raw bytes are equal, regardless of
// which factory produced them. The zero value is Zero.
type ID [Size]byte

// Zero is the all-zero ID, returned alongside every construction error.
var Zero ID

// FromBytes constructs an ID from exactly Size raw digest bytes.
//
// The input is copied; mutating p afterwards does not affect the result.
func FromBytes(p []byte) (ID, error) {
	if len(p) != Size {
		return Zero, newError(KindInvalidLength,
			fmt.Sprintf("hashid: need %d raw bytes, got %d", Size, len(p)))
	}
	var id ID
	copy(id[:], p)
	return id, nil
}

// FromHexString constructs an ID from its EncodedSize-character hex form.
// Upper and lower case digits are accepted interchangeably.
func FromHexString(s string) (ID, error) {
	if len(s) != EncodedSize {
		return Zero, newError(KindInvalidLength,
			fmt.Sprintf("hashid: need %d hex characters, got %d", EncodedSize, len(s)))
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return Zero, wrapError(KindInvalidFormat, "hashid: malformed hex", err)
	}
	var id ID
	copy(id[:], raw)
	return id, nil
}

// Sum returns the ID of the MD5 digest of data. Digesting cannot fail, so
// unlike the validating factories it returns no error.
func Sum(data []byte) ID {
	return ID(md5.Sum(data))
}

// FromString returns the ID of the MD5 digest of the bytes of s.
func FromString(s string) ID {
	return Sum([]byte(s))
}

// FromValue returns the ID of the MD5 digest of v's textual form as
// produced by fmt.Sprint. Values implementing fmt.Stringer are hashed over
// their String() output, nil hashes as the text "<nil>".
func FromValue(v any) ID {
	return FromString(fmt.Sprint(v))
}

// Bytes returns a fresh copy of the raw digest bytes. Mutating the returned
// slice does not affect the ID.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// Hex returns the lowercase hex form, always EncodedSize characters.
func (id ID) Hex() string {
	return hexutil.Encode(id[:], true)
}

// HexUpper returns the uppercase hex form.
func (id ID) HexUpper() string {
	return hexutil.Encode(id[:], false)
}

// String implements fmt.Stringer with the lowercase hex form.
func (id ID) String() string {
	return id.Hex()
}

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool {
	return id == Zero
}
