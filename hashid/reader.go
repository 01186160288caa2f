package hashid

import (
	"crypto/md5"
	"io"
)

// DefaultChunkSize is the read buffer width used when ReadOptions.ChunkSize
// is unset.
const DefaultChunkSize = 8192

// ReadOptions controls how FromReaderWithOptions consumes its source.
//
// The zero value reads in DefaultChunkSize chunks and leaves the source
// open.
type ReadOptions struct {
	// ChunkSize is the fixed read buffer width in bytes. Zero or negative
	// selects DefaultChunkSize.
	ChunkSize int

	// CloseInput closes the source once digesting finishes, if the source
	// implements io.Closer. The close runs on success and on read failure
	// alike, exactly once.
	CloseInput bool
}

func (o ReadOptions) withDefaults() ReadOptions {
	if o.ChunkSize <= 0 {
		o.ChunkSize = DefaultChunkSize
	}
	return o
}

// FromReader digests r to exhaustion and returns the ID of the result,
// reading in DefaultChunkSize chunks and leaving r open.
func FromReader(r io.Reader) (ID, error) {
	return FromReaderWithOptions(r, ReadOptions{})
}

// FromReaderWithOptions digests r to exhaustion in fixed-size chunks.
//
// Read failures surface as KindIO with the source's error as the cause; no
// retry is attempted, so a cancellation-aware source that aborts mid-read
// propagates its own error. With opts.CloseInput set and r implementing
// io.Closer, r is closed on every exit path; a close failure after an
// otherwise clean digest is itself reported as KindIO and the ID discarded.
func FromReaderWithOptions(r io.Reader, opts ReadOptions) (id ID, err error) {
	opts = opts.withDefaults()
	if opts.CloseInput {
		if c, ok := r.(io.Closer); ok {
			defer func() {
				if cerr := c.Close(); cerr != nil && err == nil {
					id = Zero
					err = wrapError(KindIO, "hashid: close source", cerr)
				}
			}()
		}
	}

	// io.Copy is avoided on purpose: it bypasses the caller's buffer when
	// the source implements io.WriterTo, which would break the fixed
	// chunk-size contract.
	h := md5.New()
	buf := make([]byte, opts.ChunkSize)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n]) // hash.Hash.Write never fails
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return Zero, wrapError(KindIO, "hashid: read source", rerr)
		}
	}
	copy(id[:], h.Sum(nil))
	return id, nil
}
