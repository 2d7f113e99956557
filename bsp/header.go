package bsp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// identMagic is the little-endian "VBSP" ident every valid header starts with.
var identMagic = [4]byte{'V', 'B', 'S', 'P'}

// MinVersion is the lowest VBSP version this loader accepts.
const MinVersion = 19

// Header is the fixed on-disk header: a 4-byte ident, a version, a
// directory of exactly 64 lump descriptors, and a map revision.
type Header struct {
	Ident    [4]byte
	Version  int32
	Lumps    [NumLumps]LumpEntry
	Revision int32
}

// readHeader decodes and validates the header at the start of r.
func readHeader(r io.ReaderAt) (*Header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(io.NewSectionReader(r, 0, headerSize), buf); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrIo, err)
	}

	var hdr Header
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: decoding header: %v", ErrIo, err)
	}

	if hdr.Ident != identMagic {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrBadIdent, hdr.Ident[:], identMagic[:])
	}
	if hdr.Version < MinVersion {
		return nil, fmt.Errorf("%w: version %d below minimum %d", ErrBadIdent, hdr.Version, MinVersion)
	}

	return &hdr, nil
}

// headerSize is sizeof(Header) on disk: 4 + 4 + 64*16 + 4.
const headerSize = 4 + 4 + NumLumps*16 + 4
