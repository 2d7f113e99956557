package bsp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/samuelyuan/vbsp/internal/lzma"
)

// reader pulls typed records out of a single lump, transparently
// decompressing an LZMA-framed payload first.
type reader struct {
	file io.ReaderAt
	hdr  *Header
}

// raw returns the lump's bytes, decompressed if LZMA-framed. size==0
// yields an empty, non-nil slice.
func (r *reader) raw(index LumpIndex) ([]byte, error) {
	if !index.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrLumpOutOfRange, index)
	}

	entry := r.hdr.Lumps[index]
	if entry.FileOffset < 0 || entry.FileSize < 0 {
		return nil, fmt.Errorf("%w: lump %d has negative offset %d or size %d", ErrIo, index, entry.FileOffset, entry.FileSize)
	}
	if entry.FileSize == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, entry.FileSize)
	section := io.NewSectionReader(r.file, int64(entry.FileOffset), int64(entry.FileSize))
	if _, err := io.ReadFull(section, buf); err != nil {
		return nil, fmt.Errorf("%w: reading lump %d: %v", ErrIo, index, err)
	}

	if !lzma.HasFrame(buf) {
		return buf, nil
	}

	if nonDecompressible[index] {
		return nil, fmt.Errorf("%w: lump %d embeds its own sub-framing and must not be transparently decompressed", ErrLzmaHeader, index)
	}

	frameHdr, err := lzma.ParseHeader(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: lump %d: %v", ErrLzmaHeader, index, err)
	}
	payload := buf[lzma.HeaderSize:]
	out, err := lzma.Decompress(frameHdr, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: lump %d: %v", ErrDecompress, index, err)
	}
	return out, nil
}

// readLump decodes a lump as a dense sequence of fixed-size records of
// type T, reinterpreting the (possibly decompressed) buffer with
// explicit little-endian layout record by record.
func readLump[T any](r *reader, index LumpIndex) ([]T, error) {
	buf, err := r.raw(index)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return []T{}, nil
	}

	var zero T
	recSize := int(binary.Size(zero))
	if recSize <= 0 {
		return nil, fmt.Errorf("%w: lump %d: record type has no fixed binary size", ErrAlignment, index)
	}
	if len(buf)%recSize != 0 {
		return nil, fmt.Errorf("%w: lump %d: payload size %d not a multiple of record size %d", ErrAlignment, index, len(buf), recSize)
	}

	count := len(buf) / recSize
	out := make([]T, count)
	br := bytes.NewReader(buf)
	for i := 0; i < count; i++ {
		if err := binary.Read(br, binary.LittleEndian, &out[i]); err != nil {
			return nil, fmt.Errorf("%w: lump %d record %d: %v", ErrIo, index, i, err)
		}
	}
	return out, nil
}
