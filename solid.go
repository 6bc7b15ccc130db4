package strut

import (
	"math"

	"github.com/wirefab/strut/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is the interface to an implicit solid described by a signed
// distance function.
type Solid interface {
	// Evaluate takes a point in 3D space and returns the minimum
	// distance of the solid surface to the point. The distance is
	// negative if the point is contained within the solid.
	Evaluate(p r3.Vec) float64
	// Bounds returns a bounding box that completely contains the solid.
	Bounds() r3.Box
}

// swept is the cylinder of a strut's diameter swept along its edge
// (exact distance field).
type swept struct {
	a      r3.Vec  // edge start
	axis   r3.Vec  // unit direction start to end
	l      float64 // edge length
	radius float64
	bb     r3.Box
}

// SweptCylinder returns the solid of a circle of the given radius
// swept along the edge. SweptCylinder panics for degenerate input;
// Strut construction validates before calling it.
func SweptCylinder(e Edge, radius float64) Solid {
	if radius <= 0 {
		panic("radius <= 0")
	}
	l := e.Length()
	if l < tolerance {
		panic("zero length edge")
	}
	s := swept{
		a:      e.Start,
		axis:   e.Tangent(),
		l:      l,
		radius: radius,
	}
	// Bounding box of the segment grown by the radius. Loose at the
	// caps but always containing.
	r := d3.Elem(radius)
	s.bb = r3.Box{
		Min: r3.Sub(d3.MinElem(e.Start, e.End), r),
		Max: r3.Add(d3.MaxElem(e.Start, e.End), r),
	}
	return &s
}

// Evaluate returns the minimum distance to the swept cylinder.
func (s *swept) Evaluate(p r3.Vec) float64 {
	v := r3.Sub(p, s.a)
	t := r3.Dot(v, s.axis)
	radial := r3.Norm(r3.Sub(v, r3.Scale(t, s.axis)))
	// 2D capped cylinder profile: x is radial excess, y is axial excess.
	dx := radial - s.radius
	dy := math.Abs(t-s.l/2) - s.l/2
	if dx > 0 && dy > 0 {
		return math.Hypot(dx, dy)
	}
	return math.Max(dx, dy)
}

// Bounds returns the bounding box of the swept cylinder.
func (s *swept) Bounds() r3.Box {
	return s.bb
}

// cut3 makes a planar cut through a solid.
type cut3 struct {
	sol Solid
	a   r3.Vec // point on plane
	n   r3.Vec // reversed plane normal
	bb  r3.Box
}

// Cut3D cuts a solid along a plane passing through a with normal n.
// The material on the same side as the normal remains.
func Cut3D(sol Solid, a, n r3.Vec) Solid {
	if sol == nil {
		panic("nil Solid argument")
	}
	s := cut3{}
	s.sol = sol
	s.a = a
	s.n = r3.Scale(-1, r3.Unit(n))
	// TODO - shrink the bounding box by the half space
	s.bb = sol.Bounds()
	return &s
}

// Evaluate returns the minimum distance to the cut solid.
func (s *cut3) Evaluate(p r3.Vec) float64 {
	return math.Max(r3.Dot(r3.Sub(p, s.a), s.n), s.sol.Evaluate(p))
}

// Bounds returns the bounding box of the cut solid.
func (s *cut3) Bounds() r3.Box {
	return s.bb
}
