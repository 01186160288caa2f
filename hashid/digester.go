package hashid

import (
	"crypto/md5"
	"hash"
)

// Digester accumulates input incrementally and yields the ID of everything
// written so far. It implements io.Writer, so it composes with io.TeeReader
// and io.MultiWriter to fingerprint data as it flows through a pipeline.
//
// A Digester is not safe for concurrent writers.
type Digester struct {
	h hash.Hash
}

// NewDigester returns a Digester with no input consumed; its Sum is the ID
// of the empty input.
func NewDigester() *Digester {
	return &Digester{h: md5.New()}
}

// Write implements io.Writer. It never returns an error.
func (d *Digester) Write(p []byte) (int, error) {
	return d.h.Write(p)
}

// Sum returns the ID of all bytes written so far. The running state is left
// intact, so callers may keep writing and take further sums.
func (d *Digester) Sum() ID {
	var id ID
	copy(id[:], d.h.Sum(nil))
	return id
}

// Reset discards all accumulated input.
func (d *Digester) Reset() {
	d.h.Reset()
}
