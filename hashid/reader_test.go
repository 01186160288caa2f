package hashid

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// faultyReader yields its payload, then fails with err instead of io.EOF.
type faultyReader struct {
	data []byte
	err  error
}

func (f *faultyReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

// recordingReader notes the buffer width offered on each Read call.
type recordingReader struct {
	r      io.Reader
	widths []int
}

func (rr *recordingReader) Read(p []byte) (int, error) {
	rr.widths = append(rr.widths, len(p))
	return rr.r.Read(p)
}

type closeCounter struct {
	io.Reader
	closes   int
	closeErr error
}

func (c *closeCounter) Close() error {
	c.closes++
	return c.closeErr
}

func payload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func TestFromReaderMatchesSum(t *testing.T) {
	data := payload(3 * DefaultChunkSize)
	id, err := FromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if id != Sum(data) {
		t.Fatalf("streamed digest differs from one-shot digest")
	}
}

func TestFromReaderKnownVector(t *testing.T) {
	const want = "7478d5b72648205d8585020deeb4b06e" // md5("Bugger all")
	id, err := FromReader(strings.NewReader("Bugger all"))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if got := id.Hex(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFromReaderEmptySource(t *testing.T) {
	const want = "d41d8cd98f00b204e9800998ecf8427e" // md5("")
	id, err := FromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if got := id.Hex(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFromReaderWithOptions_HonorsChunkSize(t *testing.T) {
	data := payload(20)
	rr := &recordingReader{r: bytes.NewReader(data)}
	id, err := FromReaderWithOptions(rr, ReadOptions{ChunkSize: 7})
	if err != nil {
		t.Fatalf("FromReaderWithOptions: %v", err)
	}
	if id != Sum(data) {
		t.Fatalf("chunked digest differs from one-shot digest")
	}
	if len(rr.widths) == 0 {
		t.Fatalf("source was never read")
	}
	for i, w := range rr.widths {
		if w != 7 {
			t.Fatalf("read %d offered a %d-byte buffer, want 7", i, w)
		}
	}
}

func TestFromReaderWithOptions_DefaultsChunkSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		rr := &recordingReader{r: strings.NewReader("x")}
		if _, err := FromReaderWithOptions(rr, ReadOptions{ChunkSize: size}); err != nil {
			t.Fatalf("FromReaderWithOptions(ChunkSize=%d): %v", size, err)
		}
		if rr.widths[0] != DefaultChunkSize {
			t.Fatalf("ChunkSize=%d offered a %d-byte buffer, want %d",
				size, rr.widths[0], DefaultChunkSize)
		}
	}
}

func TestFromReaderWithOptions_ChunkBoundariesDoNotChangeDigest(t *testing.T) {
	data := payload(1000)
	want := Sum(data)
	for _, size := range []int{1, 3, 16, 999, 1000, 4096} {
		id, err := FromReaderWithOptions(bytes.NewReader(data), ReadOptions{ChunkSize: size})
		if err != nil {
			t.Fatalf("ChunkSize=%d: %v", size, err)
		}
		if id != want {
			t.Fatalf("ChunkSize=%d produced a different digest", size)
		}
	}
}

func TestFromReaderWithOptions_LeavesSourceOpenByDefault(t *testing.T) {
	cc := &closeCounter{Reader: strings.NewReader("data")}
	if _, err := FromReaderWithOptions(cc, ReadOptions{}); err != nil {
		t.Fatalf("FromReaderWithOptions: %v", err)
	}
	if cc.closes != 0 {
		t.Fatalf("source closed %d times without CloseInput", cc.closes)
	}
}

func TestFromReaderWithOptions_ClosesOnSuccess(t *testing.T) {
	cc := &closeCounter{Reader: strings.NewReader(bananaText)}
	id, err := FromReaderWithOptions(cc, ReadOptions{CloseInput: true})
	if err != nil {
		t.Fatalf("FromReaderWithOptions: %v", err)
	}
	if id.Hex() != bananaHex {
		t.Fatalf("got %s, want %s", id.Hex(), bananaHex)
	}
	if cc.closes != 1 {
		t.Fatalf("source closed %d times, want exactly 1", cc.closes)
	}
}

func TestFromReaderWithOptions_ClosesOnReadFailure(t *testing.T) {
	boom := errors.New("mid-stream failure")
	cc := &closeCounter{Reader: &faultyReader{data: []byte("partial"), err: boom}}
	id, err := FromReaderWithOptions(cc, ReadOptions{CloseInput: true})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected the source error, got %v", err)
	}
	if !id.IsZero() {
		t.Fatalf("failed digest must return the zero ID")
	}
	if cc.closes != 1 {
		t.Fatalf("source closed %d times, want exactly 1", cc.closes)
	}
}

func TestFromReaderWithOptions_CloseFailureSurfaces(t *testing.T) {
	closeErr := errors.New("close failed")
	cc := &closeCounter{Reader: strings.NewReader("data"), closeErr: closeErr}
	id, err := FromReaderWithOptions(cc, ReadOptions{CloseInput: true})
	if err == nil {
		t.Fatalf("expected close failure to surface")
	}
	if !IsKind(err, KindIO) {
		t.Fatalf("expected KindIO, got %v", err)
	}
	if !errors.Is(err, closeErr) {
		t.Fatalf("cause should unwrap to the close error, got %v", err)
	}
	if !id.IsZero() {
		t.Fatalf("an ID must not be handed out when close failed")
	}
}

func TestFromReaderWithOptions_ReadErrorOutranksCloseError(t *testing.T) {
	readErr := errors.New("read failed")
	cc := &closeCounter{
		Reader:   &faultyReader{err: readErr},
		closeErr: errors.New("close also failed"),
	}
	_, err := FromReaderWithOptions(cc, ReadOptions{CloseInput: true})
	if !errors.Is(err, readErr) {
		t.Fatalf("read error should be the one reported, got %v", err)
	}
	if cc.closes != 1 {
		t.Fatalf("source closed %d times, want exactly 1", cc.closes)
	}
}

func TestFromReaderWithOptions_NonCloserSourceWithCloseInput(t *testing.T) {
	// CloseInput on a plain reader is a no-op, not an error.
	id, err := FromReaderWithOptions(strings.NewReader(bananaText), ReadOptions{CloseInput: true})
	if err != nil {
		t.Fatalf("FromReaderWithOptions: %v", err)
	}
	if id.Hex() != bananaHex {
		t.Fatalf("got %s, want %s", id.Hex(), bananaHex)
	}
}
