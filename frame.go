package strut

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Frame is a right-handed orthonormal coordinate system embedded in
// world space. The axes are unit length and mutually perpendicular so
// the inverse of the rotation part is its transpose, which keeps the
// local/world round trip exact to floating precision.
type Frame struct {
	Origin  r3.Vec
	X, Y, Z r3.Vec
}

// WorldFrame returns the identity frame at the world origin.
func WorldFrame() Frame {
	return Frame{
		X: r3.Vec{X: 1},
		Y: r3.Vec{Y: 1},
		Z: r3.Vec{Z: 1},
	}
}

// NewFrame builds a frame at origin from two non-parallel directions:
// X along x, Z perpendicular to both, Y completing the set. The axes
// are re-orthogonalized so xy need not be exactly perpendicular to x.
func NewFrame(origin, x, xy r3.Vec) (Frame, error) {
	if r3.Norm(x) < tolerance || r3.Norm(xy) < tolerance {
		return Frame{}, ErrMsg("zero axis vector")
	}
	xu := r3.Unit(x)
	z := r3.Cross(xu, xy)
	if r3.Norm(z) < tolerance {
		return Frame{}, ErrMsg("frame axes are parallel")
	}
	z = r3.Unit(z)
	return Frame{Origin: origin, X: xu, Y: r3.Cross(z, xu), Z: z}, nil
}

// ToLocal expresses the world point p in frame coordinates.
func (f Frame) ToLocal(p r3.Vec) r3.Vec {
	d := r3.Sub(p, f.Origin)
	return r3.Vec{X: r3.Dot(d, f.X), Y: r3.Dot(d, f.Y), Z: r3.Dot(d, f.Z)}
}

// ToWorld maps the frame-local point p back into world coordinates.
// It is the exact inverse of ToLocal.
func (f Frame) ToWorld(p r3.Vec) r3.Vec {
	v := r3.Add(r3.Scale(p.X, f.X), r3.Add(r3.Scale(p.Y, f.Y), r3.Scale(p.Z, f.Z)))
	return r3.Add(f.Origin, v)
}

// ToLocalDir expresses the world direction d in frame coordinates.
// Directions ignore the frame origin.
func (f Frame) ToLocalDir(d r3.Vec) r3.Vec {
	return r3.Vec{X: r3.Dot(d, f.X), Y: r3.Dot(d, f.Y), Z: r3.Dot(d, f.Z)}
}

// ToWorldDir maps the frame-local direction d back into world space.
func (f Frame) ToWorldDir(d r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(d.X, f.X), r3.Add(r3.Scale(d.Y, f.Y), r3.Scale(d.Z, f.Z)))
}

// IsOrthonormal reports whether the frame axes are unit length and
// mutually perpendicular within tol.
func (f Frame) IsOrthonormal(tol float64) bool {
	return math.Abs(r3.Norm(f.X)-1) <= tol &&
		math.Abs(r3.Norm(f.Y)-1) <= tol &&
		math.Abs(r3.Norm(f.Z)-1) <= tol &&
		math.Abs(r3.Dot(f.X, f.Y)) <= tol &&
		math.Abs(r3.Dot(f.Y, f.Z)) <= tol &&
		math.Abs(r3.Dot(f.Z, f.X)) <= tol
}
