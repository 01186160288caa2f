package hashid

import (
	"io"
	"strings"
	"testing"
)

func TestDigesterMatchesOneShotSum(t *testing.T) {
	d := NewDigester()
	for _, part := range []string{"I'm ", "a ", "banana"} {
		if _, err := d.Write([]byte(part)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if got := d.Sum().Hex(); got != bananaHex {
		t.Fatalf("incremental digest = %s, want %s", got, bananaHex)
	}
}

func TestDigesterSumLeavesStateIntact(t *testing.T) {
	d := NewDigester()
	d.Write([]byte("Bugger"))
	mid := d.Sum()
	if mid != FromString("Bugger") {
		t.Fatalf("mid-stream sum mismatch")
	}
	d.Write([]byte(" all"))
	if d.Sum() != FromString("Bugger all") {
		t.Fatalf("writes after Sum must extend the original stream")
	}
}

func TestDigesterEmptyAndReset(t *testing.T) {
	d := NewDigester()
	empty := d.Sum()
	if empty != Sum(nil) {
		t.Fatalf("fresh digester must sum to the empty digest")
	}
	d.Write([]byte("junk"))
	d.Reset()
	if d.Sum() != empty {
		t.Fatalf("Reset must discard accumulated input")
	}
}

func TestDigesterComposesWithTeeReader(t *testing.T) {
	d := NewDigester()
	src := io.TeeReader(strings.NewReader(bananaText), d)
	drained, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(drained) != bananaText {
		t.Fatalf("tee altered the stream: %q", drained)
	}
	if d.Sum().Hex() != bananaHex {
		t.Fatalf("tee digest = %s, want %s", d.Sum().Hex(), bananaHex)
	}
}
