// Package store provides a content-addressed blob store keyed by hashid
// identifiers, for deduplicating caches of immutable payloads.
package store

import (
	"errors"

	"xdao.co/hashid/hashid"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrZeroID    = errors.New("store: zero id")
	ErrMismatch  = errors.New("store: digest mismatch")
	ErrImmutable = errors.New("store: immutable blob mismatch")
)

// IsNotFound reports whether err indicates an absent blob.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// Store is a minimal content-addressed blob store.
//
// Contract:
// - Put MUST be idempotent.
// - Stored blobs MUST be immutable.
// - IDs MUST be derived from the bytes written.
// - Get MUST return ErrNotFound when the ID is absent.
type Store interface {
	Put(blob []byte) (hashid.ID, error)
	Get(id hashid.ID) ([]byte, error)
	Has(id hashid.ID) bool
}
