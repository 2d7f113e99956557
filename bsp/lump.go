package bsp

// LumpIndex identifies one of the 64 fixed lump slots in a BSP header's
// directory. The enumeration is closed over 0..63; indices 0..21 plus
// the game and pak lumps are named, the remaining slots are valid but
// unnamed.
type LumpIndex int32

// NumLumps is the fixed arity of a BSP lump directory.
const NumLumps = 64

const (
	LumpEntities    LumpIndex = 0
	LumpPlanes      LumpIndex = 1
	LumpTexData     LumpIndex = 2
	LumpVertices    LumpIndex = 3
	LumpVisibility  LumpIndex = 4
	LumpNodes       LumpIndex = 5
	LumpTexinfo     LumpIndex = 6
	LumpFaces       LumpIndex = 7
	LumpLighting    LumpIndex = 8
	LumpOcclusion   LumpIndex = 9
	LumpLeaves      LumpIndex = 10
	LumpFaceIDs     LumpIndex = 11
	LumpEdges       LumpIndex = 12
	LumpSurfedges   LumpIndex = 13
	LumpModels      LumpIndex = 14
	LumpWorldlights LumpIndex = 15
	LumpLeaffaces   LumpIndex = 16
	LumpLeafbrushes LumpIndex = 17
	LumpBrushes     LumpIndex = 18
	LumpBrushsides  LumpIndex = 19
	LumpAreas       LumpIndex = 20
	LumpAreaportals LumpIndex = 21

	LumpGameLump LumpIndex = 35
	LumpPakFile  LumpIndex = 40
)

// Valid reports whether idx is a legal lump directory slot.
func (idx LumpIndex) Valid() bool {
	return idx >= 0 && int(idx) < NumLumps
}

// nonDecompressible holds lump indices that embed their own sub-framing
// and must never be handed to the transparent LZMA path, per spec.
var nonDecompressible = map[LumpIndex]bool{
	LumpGameLump: true,
	LumpPakFile:  true,
}

// LumpEntry is the fixed 16-byte on-disk lump directory record:
// (file_offset, file_size, version, four_cc).
type LumpEntry struct {
	FileOffset int32
	FileSize   int32
	Version    int32
	FourCC     [4]byte
}
