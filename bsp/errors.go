package bsp

import "errors"

// Error kinds surfaced at the Load boundary (spec.md §7). Parse errors
// wrap one of these with fmt.Errorf("%w: ...", ErrX, ...) so callers can
// test with errors.Is.
var (
	ErrNotFound        = errors.New("bsp: map file not found")
	ErrBadIdent        = errors.New("bsp: header ident/version mismatch")
	ErrIo              = errors.New("bsp: read/seek error")
	ErrLumpOutOfRange  = errors.New("bsp: lump index out of range")
	ErrLzmaHeader      = errors.New("bsp: malformed lzma frame header")
	ErrDecompress      = errors.New("bsp: lzma decompression failed")
	ErrAlignment       = errors.New("bsp: lump payload size misaligned")
	ErrIndexOutOfRange = errors.New("bsp: derived index out of range")
)
