package bsp

import "fmt"

// buildPolygons materializes the ordered vertex ring for every
// non-displacement face by walking its run of surf-edges, per spec.md
// §4.3. Displacement faces (DispInfo >= 0) are skipped entirely and do
// not get a polygon entry; the result stays in 1:1 order with the faces
// that remain once displacement faces are filtered out.
func buildPolygons(faces []Face, surfEdges []SurfEdge, edges []Edge, vertices []Vertex, planes []Plane) ([]Polygon, error) {
	polys := make([]Polygon, 0, len(faces))

	for fi, face := range faces {
		if face.DispInfo >= 0 {
			continue
		}

		if int(face.PlaneIndex) >= len(planes) {
			return nil, fmt.Errorf("%w: face %d plane index %d", ErrIndexOutOfRange, fi, face.PlaneIndex)
		}

		first := int(face.FirstEdge)
		n := int(face.NumEdges)
		if n < 0 || first < 0 || first+n > len(surfEdges) {
			return nil, fmt.Errorf("%w: face %d surf-edge range [%d,%d) exceeds %d entries", ErrIndexOutOfRange, fi, first, first+n, len(surfEdges))
		}

		verts := make([]Vertex, 0, n)
		for i := 0; i < n; i++ {
			se := int32(surfEdges[first+i])
			edgeIdx := se
			if edgeIdx < 0 {
				edgeIdx = -edgeIdx
			}
			if int(edgeIdx) >= len(edges) {
				return nil, fmt.Errorf("%w: face %d surf-edge %d references edge %d", ErrIndexOutOfRange, fi, i, edgeIdx)
			}
			edge := edges[edgeIdx]

			var vi uint16
			if se >= 0 {
				vi = edge.V0
			} else {
				vi = edge.V1
			}
			if int(vi) >= len(vertices) {
				return nil, fmt.Errorf("%w: face %d edge %d references vertex %d", ErrIndexOutOfRange, fi, edgeIdx, vi)
			}
			verts = append(verts, vertices[vi])
		}

		polys = append(polys, Polygon{
			Vertices: dedupeConsecutive(verts),
			Plane:    planes[face.PlaneIndex],
		})
	}

	return polys, nil
}

// dedupeConsecutive keeps degenerate (<3 distinct vertex) polygons as an
// empty vertex list so surface tests can cheaply skip them, per
// spec.md §4.3, while leaving well-formed rings untouched.
func dedupeConsecutive(verts []Vertex) []Vertex {
	unique := make(map[Vertex]bool, len(verts))
	for _, v := range verts {
		unique[v] = true
	}
	if len(unique) < 3 {
		return nil
	}
	return verts
}
