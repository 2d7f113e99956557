package trace

import "github.com/samuelyuan/vbsp/bsp"

// epsilon is the historical Source-engine split offset, tied to the
// map-compilation grid. Changing it changes co-planar-surface behavior;
// see spec.md §9.
const epsilon = 1.0 / 32.0

// DefaultMask is the contents mask a Trace uses when the caller doesn't
// supply one.
const DefaultMask = bsp.ContentsSolid

// surfaceSkipFlags are the tex_info flag bits spec.md §3 calls out:
// faces carrying any of these are never real solid geometry and must
// never register a surface hit.
const surfaceSkipFlags = bsp.SurfNoDraw | bsp.SurfSky | bsp.SurfHint | bsp.SurfSkip

// Trace is the out-parameter populated by Tracer.Trace: the first-hit
// fraction, position, plane, contents, and solid-start/all-solid flags.
type Trace struct {
	Fraction   float32
	EndPos     Vec3
	Plane      Plane
	Contents   int32
	AllSolid   bool
	StartSolid bool
}

// polygon is the tracer's working copy of a bsp.Polygon, pre-converted
// to Vec3 so the hot path never touches bsp.Vertex again.
type polygon struct {
	verts []Vec3
	plane Plane
}

// Tracer is a read-only traversal snapshot of a loaded map. leafPolys
// maps a leaf index to the polygons reachable through its leaf-face
// range (and leafBrushes likewise to its brushes), pre-resolved once at
// construction so the traversal's hot path never has to re-walk
// LeafFaces.
type Tracer struct {
	nodes  []bsp.Node
	leaves []bsp.Leaf
	planes []Plane

	leafPolys   [][]polygon
	leafBrushes [][]brush
}

type brushSide struct {
	plane Plane
	bevel bool
}

type brush struct {
	contents int32
	sides    []brushSide
}

// NewTracer builds a read-only traversal snapshot over m. The returned
// Tracer holds no reference back to m beyond construction time, so it
// stays internally consistent even if the facade later swaps in a
// different *bsp.Map.
func NewTracer(m *bsp.Map) *Tracer {
	planes := make([]Plane, len(m.Planes))
	for i, p := range m.Planes {
		planes[i] = planeFrom(p)
	}

	faceToPoly := make(map[int]polygon, len(m.Polygons))
	polyIdx := 0
	for fi, f := range m.Faces {
		if f.DispInfo >= 0 {
			continue
		}
		p := m.Polygons[polyIdx]
		polyIdx++
		if len(p.Vertices) == 0 {
			continue
		}
		if ti := int(f.TexInfo); ti >= 0 && ti < len(m.TexInfos) && m.TexInfos[ti].Flags&surfaceSkipFlags != 0 {
			// NODRAW/SKY/HINT/SKIP surfaces carry no collidable geometry.
			continue
		}
		verts := make([]Vec3, len(p.Vertices))
		for i, v := range p.Vertices {
			verts[i] = vecFromVertex(v)
		}
		faceToPoly[fi] = polygon{verts: verts, plane: planeFrom(p.Plane)}
	}

	leafPolys := make([][]polygon, len(m.Leaves))
	for li, leaf := range m.Leaves {
		first := int(leaf.FirstLeafFace)
		n := int(leaf.NumLeafFaces)
		polys := make([]polygon, 0, n)
		for i := 0; i < n && first+i < len(m.LeafFaces); i++ {
			faceIdx := int(m.LeafFaces[first+i])
			if p, ok := faceToPoly[faceIdx]; ok {
				polys = append(polys, p)
			}
		}
		leafPolys[li] = polys
	}

	brushes := make([]brush, len(m.Brushes))
	for bi, b := range m.Brushes {
		sides := make([]brushSide, 0, b.NumSides)
		for i := 0; i < int(b.NumSides); i++ {
			sideIdx := int(b.FirstSide) + i
			if sideIdx < 0 || sideIdx >= len(m.BrushSides) {
				continue
			}
			side := m.BrushSides[sideIdx]
			if int(side.PlaneIndex) >= len(planes) {
				continue
			}
			sides = append(sides, brushSide{plane: planes[side.PlaneIndex], bevel: side.Bevel != 0})
		}
		brushes[bi] = brush{contents: b.Contents, sides: sides}
	}

	leafBrushes := make([][]brush, len(m.Leaves))
	for li, leaf := range m.Leaves {
		first := int(leaf.FirstLeafBrush)
		n := int(leaf.NumLeafBrushes)
		bs := make([]brush, 0, n)
		for i := 0; i < n && first+i < len(m.LeafBrushes); i++ {
			brushIdx := int(m.LeafBrushes[first+i])
			if brushIdx >= 0 && brushIdx < len(brushes) {
				bs = append(bs, brushes[brushIdx])
			}
		}
		leafBrushes[li] = bs
	}

	return &Tracer{
		nodes:       m.Nodes,
		leaves:      m.Leaves,
		planes:      planes,
		leafPolys:   leafPolys,
		leafBrushes: leafBrushes,
	}
}
