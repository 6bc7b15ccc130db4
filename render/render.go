// Package render tessellates strut assemblies into triangle meshes,
// writes binary STL for viewport and fabrication consumers, and
// produces strut id label curves.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams triangles of a tessellated model.
type Renderer interface {
	// ReadTriangles writes triangles into t and returns the number
	// written. It returns io.EOF once the model is exhausted.
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle plane following the
// right-hand rule over the vertex order.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}
