package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"xdao.co/hashid/hashid"
)

// FS is a local filesystem-backed Store.
//
// Blobs are stored immutably, keyed strictly by their digest, with the first
// two hex characters fanning out into subdirectories. The store is offline
// and deterministic: it never uses the network and never depends on
// wall-clock time.
type FS struct {
	root string
}

// NewFS constructs a filesystem store rooted at root. The directory will be
// created if needed.
func NewFS(root string) (*FS, error) {
	if root == "" {
		return nil, errors.New("store: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{root: root}, nil
}

func (s *FS) Put(blob []byte) (hashid.ID, error) {
	id := hashid.Sum(blob)
	path := s.pathFor(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return hashid.Zero, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o444)
	if err != nil {
		if os.IsExist(err) {
			existing, rerr := s.Get(id)
			if rerr != nil {
				// Present but unreadable or corrupted: refuse to repair.
				return hashid.Zero, ErrImmutable
			}
			if !bytes.Equal(existing, blob) {
				return hashid.Zero, ErrImmutable
			}
			return id, nil
		}
		return hashid.Zero, err
	}

	if _, err := f.Write(blob); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return hashid.Zero, err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return hashid.Zero, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return hashid.Zero, err
	}
	return id, nil
}

func (s *FS) Get(id hashid.ID) ([]byte, error) {
	if id.IsZero() {
		return nil, ErrZeroID
	}
	b, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if hashid.Sum(b) != id {
		return nil, ErrMismatch
	}
	return b, nil
}

func (s *FS) Has(id hashid.ID) bool {
	if id.IsZero() {
		return false
	}
	_, err := os.Stat(s.pathFor(id))
	return err == nil
}

func (s *FS) pathFor(id hashid.ID) string {
	hex := id.Hex()
	return filepath.Join(s.root, hex[:2], hex)
}
