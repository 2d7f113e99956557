package bsp

// Vertex is a single 3-float world-space position, as stored in the
// vertices lump.
type Vertex struct {
	X, Y, Z float32
}

// Plane is `Normal . p = Distance`, the primitive the BSP tree splits
// space along. SignBits is a precomputed bitmask (bit i set when
// Normal[i] < 0) the original engine uses to speed up AABB classification;
// this core keeps the field for on-disk fidelity even though only the
// node traversal's plane arithmetic is exercised.
type Plane struct {
	NormalX, NormalY, NormalZ float32
	Distance                  float32
	Type                      int32
	SignBits                  int32
}

// Edge is a pair of indices into the vertices table.
type Edge struct {
	V0, V1 uint16
}

// SurfEdge is a signed index into the edges table; the sign selects
// which of the edge's two vertices comes first when walking a face's
// perimeter.
type SurfEdge int32

// Node is one interior node of the BSP tree. A negative entry in
// Children encodes a leaf at index -1-child.
type Node struct {
	PlaneIndex int32
	Children   [2]int32
	Mins       [3]int16
	Maxs       [3]int16
	FirstFace  uint16
	NumFaces   uint16
	Area       int16
}

// Leaf is returned in a Node's negative children.
type Leaf struct {
	Contents       int32
	Cluster        int16
	AreaFlags      int16
	Mins           [3]int16
	Maxs           [3]int16
	FirstLeafFace  uint16
	NumLeafFaces   uint16
	FirstLeafBrush uint16
	NumLeafBrushes uint16
	WaterDataID    int16
}

// Face (aka surface) is a polygon bound to a plane, described by a run
// of surf-edges. DispInfo >= 0 marks a displacement surface, which this
// core does not build polygons for or intersect.
type Face struct {
	PlaneIndex uint16
	Side       uint8
	OnNode     uint8
	FirstEdge  int32
	NumEdges   int16
	TexInfo    int16
	DispInfo   int16
}

// TexInfo carries the surface flag bits this core consults
// (SURF_NODRAW / SURF_SKY / SURF_HINT / SURF_SKIP); texture axes and
// lightmap geometry are retained for on-disk fidelity but unused by
// ray tests.
type TexInfo struct {
	TextureVecs  [2][4]float32
	LightmapVecs [2][4]float32
	Flags        int32
	TexData      int32
}

// Surface flags consulted by surface tests (C6).
const (
	SurfLight    = 0x0001
	SurfSky2D    = 0x0002
	SurfSky      = 0x0004
	SurfWarp     = 0x0008
	SurfTrans    = 0x0010
	SurfNoPortal = 0x0020
	SurfTrigger  = 0x0040
	SurfNoDraw   = 0x0080
	SurfHint     = 0x0100
	SurfSkip     = 0x0200
)

// Brush is a convex solid defined as the intersection of its brush-side
// half-spaces.
type Brush struct {
	FirstSide int32
	NumSides  int32
	Contents  int32
}

// BrushSide is one bounding half-space plane of a brush.
type BrushSide struct {
	PlaneIndex uint16
	TexInfo    int16
	DispInfo   int16
	Bevel      uint8
	_          uint8 // on-disk padding byte
}

// LeafFace and LeafBrush indirect a leaf's face/brush ranges into the
// surfaces/brushes tables.
type LeafFace uint16
type LeafBrush uint16

// Contents flags this core filters traces against.
const (
	ContentsEmpty      = 0x0
	ContentsSolid      = 0x1
	ContentsWindow     = 0x2
	ContentsAux        = 0x4
	ContentsGrate      = 0x8
	ContentsSlime      = 0x10
	ContentsWater      = 0x20
	ContentsMist       = 0x40
	ContentsOpaque     = 0x80
	ContentsPlayerClip = 0x10000
)

// Polygon is the derived, materialized vertex ring for one non-
// displacement face, paired with its support plane for fast rejection
// during ray tests.
type Polygon struct {
	Vertices []Vertex
	Plane    Plane
}
