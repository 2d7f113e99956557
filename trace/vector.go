// Package trace implements the ray/node traversal (C5) and per-leaf
// surface/brush intersection tests (C6) that answer spatial visibility
// queries over a loaded BSP map.
package trace

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/samuelyuan/vbsp/bsp"
)

// Vec3 is the vector type used throughout the tracer, the same type the
// teacher's renderer uses for world-space positions and normals.
type Vec3 = mgl32.Vec3

// Plane is the normalized support plane of a node, face, or brush-side:
// Normal . p = Dist.
type Plane struct {
	Normal Vec3
	Dist   float32
}

// Classify returns the signed distance of p from the plane: positive in
// front, negative behind.
func (p Plane) Classify(v Vec3) float32 {
	return p.Normal.Dot(v) - p.Dist
}

func vecFromVertex(v bsp.Vertex) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func planeFrom(p bsp.Plane) Plane {
	return Plane{Normal: Vec3{p.NormalX, p.NormalY, p.NormalZ}, Dist: p.Distance}
}
