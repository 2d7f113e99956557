package bsp

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Map holds every table materialized from a single BSP file: the raw
// lump-indexed tables plus the derived polygon table built once at load
// time. A Map is immutable once returned from Load; callers needing to
// swap maps construct a new one and discard the old pointer.
type Map struct {
	Name string

	Vertices    []Vertex
	Planes      []Plane
	Edges       []Edge
	SurfEdges   []SurfEdge
	Leaves      []Leaf
	Nodes       []Node
	Faces       []Face
	TexInfos    []TexInfo
	Brushes     []Brush
	BrushSides  []BrushSide
	LeafFaces   []LeafFace
	LeafBrushes []LeafBrush

	Polygons []Polygon
}

// resolveMapPath joins directory and mapName, appending the .bsp suffix
// when the caller didn't already supply one. Kept as a standalone,
// filesystem-free function so path resolution is unit-testable on its
// own, per the original C++ parser's separate set_current_map step.
func resolveMapPath(directory, mapName string) string {
	if !strings.HasSuffix(mapName, ".bsp") {
		mapName += ".bsp"
	}
	return filepath.Join(directory, mapName)
}

// Load opens, validates, and fully parses a BSP map file, building every
// table this core consumes plus the derived polygon index. Load is a
// pure constructor: on any error it returns nil and the error, with no
// partially-populated Map escaping — callers holding a previous Map are
// unaffected, satisfying spec.md's transactional-swap requirement at the
// facade layer.
func Load(directory, mapName string) (*Map, error) {
	path := resolveMapPath(directory, mapName)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: opening %s: %v", ErrIo, path, err)
	}
	defer f.Close()

	hdr, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	r := &reader{file: f, hdr: hdr}

	// Entity lump is read far enough to validate its directory entry
	// bounds and advance past it; its key/value contents are never
	// decoded in this core (entity parsing is an external collaborator).
	if _, err := r.raw(LumpEntities); err != nil {
		return nil, err
	}

	planes, err := readLump[Plane](r, LumpPlanes)
	if err != nil {
		return nil, err
	}
	vertices, err := readLump[Vertex](r, LumpVertices)
	if err != nil {
		return nil, err
	}
	edges, err := readLump[Edge](r, LumpEdges)
	if err != nil {
		return nil, err
	}
	surfEdgesRaw, err := readLump[int32](r, LumpSurfedges)
	if err != nil {
		return nil, err
	}
	surfEdges := make([]SurfEdge, len(surfEdgesRaw))
	for i, v := range surfEdgesRaw {
		surfEdges[i] = SurfEdge(v)
	}
	leaves, err := readLump[Leaf](r, LumpLeaves)
	if err != nil {
		return nil, err
	}
	nodes, err := readLump[Node](r, LumpNodes)
	if err != nil {
		return nil, err
	}
	faces, err := readLump[Face](r, LumpFaces)
	if err != nil {
		return nil, err
	}
	texInfos, err := readLump[TexInfo](r, LumpTexinfo)
	if err != nil {
		return nil, err
	}
	brushes, err := readLump[Brush](r, LumpBrushes)
	if err != nil {
		return nil, err
	}
	brushSides, err := readLump[BrushSide](r, LumpBrushsides)
	if err != nil {
		return nil, err
	}
	leafFaces, err := readLump[LeafFace](r, LumpLeaffaces)
	if err != nil {
		return nil, err
	}
	leafBrushes, err := readLump[LeafBrush](r, LumpLeafbrushes)
	if err != nil {
		return nil, err
	}

	if err := validateTree(nodes, leaves, planes); err != nil {
		return nil, err
	}

	polys, err := buildPolygons(faces, surfEdges, edges, vertices, planes)
	if err != nil {
		return nil, err
	}

	log.Printf("bsp: loaded %s: %d planes, %d nodes, %d leaves, %d faces (%d polygons), %d brushes",
		path, len(planes), len(nodes), len(leaves), len(faces), len(polys), len(brushes))

	return &Map{
		Name:        mapName,
		Vertices:    vertices,
		Planes:      planes,
		Edges:       edges,
		SurfEdges:   surfEdges,
		Leaves:      leaves,
		Nodes:       nodes,
		Faces:       faces,
		TexInfos:    texInfos,
		Brushes:     brushes,
		BrushSides:  brushSides,
		LeafFaces:   leafFaces,
		LeafBrushes: leafBrushes,
		Polygons:    polys,
	}, nil
}

// validateTree checks invariants 2 and 3 of spec.md §3: every child
// index resolves to a valid node or leaf, and every plane index a node
// references is in range.
func validateTree(nodes []Node, leaves []Leaf, planes []Plane) error {
	for i, n := range nodes {
		if int(n.PlaneIndex) >= len(planes) || n.PlaneIndex < 0 {
			return fmt.Errorf("%w: node %d plane index %d", ErrIndexOutOfRange, i, n.PlaneIndex)
		}
		for side, child := range n.Children {
			if child >= 0 {
				if int(child) >= len(nodes) {
					return fmt.Errorf("%w: node %d child[%d]=%d is not a valid node", ErrIndexOutOfRange, i, side, child)
				}
			} else {
				leafIdx := -1 - child
				if int(leafIdx) >= len(leaves) || leafIdx < 0 {
					return fmt.Errorf("%w: node %d child[%d]=%d decodes to invalid leaf %d", ErrIndexOutOfRange, i, side, child, leafIdx)
				}
			}
		}
	}
	return nil
}
