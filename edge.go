package strut

import (
	"math"

	"github.com/wirefab/strut/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Edge is a directed wireframe segment between two distinct points.
// The direction is fixed at construction and drives the sweep and cut
// plane derivation. Comparison and hashing treat the edge as
// undirected.
type Edge struct {
	Start, End r3.Vec
}

// NewEdge returns the edge from start to end. Edges shorter than the
// package tolerance have no defined tangent and are rejected.
func NewEdge(start, end r3.Vec) (Edge, error) {
	if d3.EqualWithin(start, end, tolerance) {
		return Edge{}, ErrDegenerateEdge
	}
	return Edge{Start: start, End: end}, nil
}

// Length returns the euclidean length of the edge.
func (e Edge) Length() float64 {
	return r3.Norm(r3.Sub(e.End, e.Start))
}

// PointAt returns the point at normalized parameter t.
// t=0 is Start, t=1 is End.
func (e Edge) PointAt(t float64) r3.Vec {
	return r3.Add(e.Start, r3.Scale(t, r3.Sub(e.End, e.Start)))
}

// Tangent returns the unit direction from Start to End.
func (e Edge) Tangent() r3.Vec {
	return r3.Unit(r3.Sub(e.End, e.Start))
}

// Reverse returns the edge with swapped endpoints.
func (e Edge) Reverse() Edge {
	return Edge{Start: e.End, End: e.Start}
}

// EqualWithin reports whether both edges join the same pair of points
// within tol, in either orientation.
func (e Edge) EqualWithin(f Edge, tol float64) bool {
	return (d3.EqualWithin(e.Start, f.Start, tol) && d3.EqualWithin(e.End, f.End, tol)) ||
		(d3.EqualWithin(e.End, f.Start, tol) && d3.EqualWithin(e.Start, f.End, tol))
}

// FrameAt returns the orthonormal frame of the edge's natural
// parametrization at t: origin on the edge, X along the tangent,
// Y and Z completing a right-handed set. The perpendicular pair is
// built against the world Z axis, or world X when the edge runs near
// vertical, so frames are deterministic for a given edge direction.
func (e Edge) FrameAt(t float64) Frame {
	x := e.Tangent()
	ref := r3.Vec{Z: 1}
	if math.Abs(x.Z) > 1-1e-6 {
		ref = r3.Vec{X: 1}
	}
	y := r3.Unit(r3.Cross(ref, x))
	z := r3.Cross(x, y)
	return Frame{Origin: e.PointAt(t), X: x, Y: y, Z: z}
}
