// Package lzma decodes the per-lump LZMA frames the Source engine's BSP
// format wraps around individual lumps. The frame itself is not a
// standard .lzma file: it starts with a 4-byte "LZMA" ident and a pair
// of 32-bit sizes before the familiar 5-byte properties block, so the
// classic stream header has to be reassembled before handing the
// compressed payload to the library decoder.
package lzma

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// HeaderSize is the fixed size of the Source-engine LZMA frame header:
// ident(4) + actual_size(4) + lzma_size(4) + properties(5).
const HeaderSize = 17

// Header is the decoded 17-byte frame preamble.
type Header struct {
	ActualSize uint32
	LzmaSize   uint32
	Properties [5]byte
}

var ident = [4]byte{'L', 'Z', 'M', 'A'}

// HasFrame reports whether buf begins with the LZMA frame ident.
func HasFrame(buf []byte) bool {
	return len(buf) >= 4 && bytes.Equal(buf[:4], ident[:])
}

// ParseHeader decodes the 17-byte frame preamble at the start of buf.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize || !HasFrame(buf) {
		return Header{}, fmt.Errorf("lzma: short or missing frame ident")
	}
	var h Header
	h.ActualSize = binary.LittleEndian.Uint32(buf[4:8])
	h.LzmaSize = binary.LittleEndian.Uint32(buf[8:12])
	copy(h.Properties[:], buf[12:17])
	return h, nil
}

// Decompress decodes the compressed payload that follows a parsed frame
// header, returning exactly hdr.ActualSize bytes.
//
// ulikunitz/xz/lzma only reads the classic .lzma stream shape (5-byte
// properties, 8-byte uncompressed size, then the raw LZMA stream), so the
// Source-engine preamble is reassembled into that shape in memory before
// decoding.
func Decompress(hdr Header, payload []byte) ([]byte, error) {
	if uint32(len(payload)) < hdr.LzmaSize {
		return nil, fmt.Errorf("lzma: payload shorter than lzma_size (%d < %d)", len(payload), hdr.LzmaSize)
	}

	var classic bytes.Buffer
	classic.Write(hdr.Properties[:])
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(hdr.ActualSize))
	classic.Write(size[:])
	classic.Write(payload[:hdr.LzmaSize])

	r, err := lzma.NewReader(&classic)
	if err != nil {
		return nil, fmt.Errorf("lzma: opening stream: %w", err)
	}

	out := make([]byte, hdr.ActualSize)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("lzma: decoding stream: %w", err)
	}
	return out, nil
}
