package lzma

import (
	"bytes"
	"testing"

	xzlzma "github.com/ulikunitz/xz/lzma"
)

// TestDecompressRoundTrip compresses a payload with the classic .lzma
// writer from the same library, reframes it as a Source-engine lump
// frame, and checks the decompressed bytes are bit-identical to the
// input, covering spec.md §8 property 7.
func TestDecompressRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("quake-bsp-lump-payload-bytes "), 37)

	var classic bytes.Buffer
	w, err := xzlzma.NewWriter(&classic)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	raw := classic.Bytes()
	if len(raw) < 13 {
		t.Fatalf("classic stream too short: %d bytes", len(raw))
	}

	var hdr Header
	hdr.ActualSize = uint32(len(payload))
	copy(hdr.Properties[:], raw[:5])
	compressed := raw[13:]
	hdr.LzmaSize = uint32(len(compressed))

	got, err := Decompress(hdr, compressed)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(payload))
	}
}

func TestHasFrame(t *testing.T) {
	if !HasFrame([]byte("LZMA....")) {
		t.Fatal("expected ident to be detected")
	}
	if HasFrame([]byte("XBSP....")) {
		t.Fatal("unexpected ident match")
	}
	if HasFrame([]byte("LZ")) {
		t.Fatal("short buffer must not match")
	}
}

func TestParseHeader(t *testing.T) {
	buf := make([]byte, HeaderSize)
	copy(buf[:4], ident[:])
	buf[4] = 42 // actual_size low byte
	buf[8] = 7  // lzma_size low byte
	copy(buf[12:17], []byte{1, 2, 3, 4, 5})

	hdr, err := ParseHeader(buf)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if hdr.ActualSize != 42 || hdr.LzmaSize != 7 {
		t.Fatalf("unexpected sizes: %+v", hdr)
	}
	if hdr.Properties != ([5]byte{1, 2, 3, 4, 5}) {
		t.Fatalf("unexpected properties: %v", hdr.Properties)
	}
}
