// Package hashid defines a validated 128-bit identifier derived from an MD5
// digest.
//
// An ID replaces the raw hash strings and byte slices otherwise passed
// between components: every construction path either validates its input or
// computes the digest itself, so holders of an ID never re-check it. IDs are
// immutable value types. Constructors copy their inputs, accessors return
// copies, and the type is comparable, so IDs work directly as map keys and
// with ==, and may be shared across goroutines without locking.
//
// MD5 is used here as a compact, deterministic fingerprint with low
// collision probability. It is not a security primitive; nothing in this
// package provides cryptographic integrity protection.
package hashid
