// Package cidutil wraps raw MD5 digests in multiformats envelopes for
// content-addressing interop.
package cidutil

import (
	"crypto/md5"
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

var (
	// ErrDigestSize reports a digest that is not md5-sized.
	ErrDigestSize = errors.New("cidutil: digest is not md5-sized")
	// ErrNotMD5 reports a multihash envelope carrying a foreign hash code.
	ErrNotMD5 = errors.New("cidutil: multihash code is not md5")
)

// IsDigestSize reports whether err indicates a mis-sized digest.
func IsDigestSize(err error) bool {
	return errors.Is(err, ErrDigestSize)
}

// IsNotMD5 reports whether err indicates a foreign multihash code.
func IsNotMD5(err error) bool {
	return errors.Is(err, ErrNotMD5)
}

// MultihashMD5 wraps an already-computed MD5 digest in a multihash envelope
// (code 0xd5, "md5"). The digest is framed, never recomputed.
func MultihashMD5(digest []byte) (multihash.Multihash, error) {
	if len(digest) != md5.Size {
		return nil, fmt.Errorf("%w: %d bytes", ErrDigestSize, len(digest))
	}
	buf, err := multihash.Encode(digest, multihash.MD5)
	if err != nil {
		// multihash.Encode only errors for unknown codes; with the md5
		// constant this should be unreachable.
		return nil, err
	}
	return multihash.Multihash(buf), nil
}

// CIDv1RawMD5 returns a CIDv1 using the "raw" multicodec and an md5
// multihash framing digest.
func CIDv1RawMD5(digest []byte) (cid.Cid, error) {
	mh, err := MultihashMD5(digest)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// CIDv1RawMD5String returns the canonical string form of CIDv1RawMD5, or ""
// when digest is mis-sized.
func CIDv1RawMD5String(digest []byte) string {
	c, err := CIDv1RawMD5(digest)
	if err != nil {
		return ""
	}
	return c.String()
}

// DigestFromMultihash unwraps the raw MD5 digest from m. Envelopes carrying
// any other hash code fail with ErrNotMD5; md5 envelopes with a truncated
// or padded digest fail with ErrDigestSize.
func DigestFromMultihash(m multihash.Multihash) ([]byte, error) {
	dec, err := multihash.Decode(m)
	if err != nil {
		return nil, fmt.Errorf("cidutil: decode multihash: %w", err)
	}
	if dec.Code != multihash.MD5 {
		return nil, fmt.Errorf("%w: 0x%x", ErrNotMD5, dec.Code)
	}
	if len(dec.Digest) != md5.Size {
		return nil, fmt.Errorf("%w: %d bytes", ErrDigestSize, len(dec.Digest))
	}
	return dec.Digest, nil
}

// DigestFromCID unwraps the raw MD5 digest from a raw-codec CIDv1 produced
// by CIDv1RawMD5.
func DigestFromCID(c cid.Cid) ([]byte, error) {
	return DigestFromMultihash(c.Hash())
}
