package hashid

import (
	"github.com/google/uuid"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"xdao.co/hashid/cidutil"
)

// UUID returns the raw digest bytes viewed as a uuid.UUID.
//
// This is a byte-level view for interop with UUID-shaped columns and wire
// fields. No version or variant bits are rewritten, so FromUUID(id.UUID())
// always round-trips; it is NOT an RFC 4122 version-3 generator.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// FromUUID constructs an ID from the raw bytes of u.
func FromUUID(u uuid.UUID) ID {
	return ID(u)
}

// Multihash returns the digest framed in a multihash envelope (code 0xd5,
// "md5").
func (id ID) Multihash() (multihash.Multihash, error) {
	return cidutil.MultihashMD5(id[:])
}

// CID returns a CIDv1 ("raw" multicodec, md5 multihash) framing the digest,
// for handing IDs to content-addressed stores.
func (id ID) CID() (cid.Cid, error) {
	return cidutil.CIDv1RawMD5(id[:])
}

// FromMultihash unwraps an md5 multihash envelope into an ID. Envelopes
// carrying any other hash code fail with KindInvalidFormat; md5 envelopes
// with a mis-sized digest fail with KindInvalidLength.
func FromMultihash(m multihash.Multihash) (ID, error) {
	digest, err := cidutil.DigestFromMultihash(m)
	if err != nil {
		switch {
		case cidutil.IsDigestSize(err):
			return Zero, wrapError(KindInvalidLength, "hashid: multihash digest width", err)
		default:
			return Zero, wrapError(KindInvalidFormat, "hashid: not an md5 multihash", err)
		}
	}
	return FromBytes(digest)
}

// FromCID unwraps an ID from a CIDv1 produced by CID.
func FromCID(c cid.Cid) (ID, error) {
	return FromMultihash(c.Hash())
}
