// Package testkit provides a reusable conformance suite for Store
// implementations.
package testkit

import (
	"bytes"
	"testing"

	"xdao.co/hashid/hashid"
	"xdao.co/hashid/store"
)

// NewStore constructs a fresh, empty Store instance for a test.
// The returned Store MUST be isolated from other tests.
type NewStore func(t *testing.T) store.Store

func RunStoreConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		st := newStore(t)
		want := []byte("hello, hashid store")

		id, err := st.Put(want)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if id != hashid.Sum(want) {
			t.Fatalf("Put ID mismatch: got %s want %s", id, hashid.Sum(want))
		}

		got, err := st.Get(id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Get bytes mismatch")
		}
		if hashid.Sum(got) != id {
			t.Fatalf("Get returned bytes not matching requested ID")
		}
	})

	t.Run("PutIdempotent", func(t *testing.T) {
		st := newStore(t)
		b := []byte("same bytes")

		id1, err := st.Put(b)
		if err != nil {
			t.Fatalf("Put(1) failed: %v", err)
		}
		id2, err := st.Put(b)
		if err != nil {
			t.Fatalf("Put(2) failed: %v", err)
		}
		if id1 != id2 {
			t.Fatalf("Put not idempotent: %s vs %s", id1, id2)
		}
	})

	t.Run("HasAndNotFound", func(t *testing.T) {
		st := newStore(t)
		b := []byte("missing")
		id := hashid.Sum(b)

		if st.Has(id) {
			t.Fatalf("Has returned true for missing ID")
		}
		if _, err := st.Get(id); !store.IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}

		if _, err := st.Put(b); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if !st.Has(id) {
			t.Fatalf("Has returned false after Put")
		}
	})

	t.Run("RejectZeroID", func(t *testing.T) {
		st := newStore(t)
		if st.Has(hashid.Zero) {
			t.Fatalf("Has should be false for the zero ID")
		}
		if _, err := st.Get(hashid.Zero); err == nil {
			t.Fatalf("Get should fail for the zero ID")
		}
	})
}
