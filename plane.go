package strut

import (
	"github.com/wirefab/strut/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is an oriented plane with an in-plane reference axis.
// Normal and XAxis are unit length and perpendicular. The reference
// axis is what alignment rotates toward the guide direction; the
// normal never changes under in-plane rotation.
type Plane struct {
	Origin r3.Vec
	Normal r3.Vec
	XAxis  r3.Vec
}

// NewPlane builds a plane through origin with the given normal and
// in-plane reference axis. xAxis is projected onto the plane so it
// need not be exactly perpendicular to normal, but it must not be
// parallel to it.
func NewPlane(origin, normal, xAxis r3.Vec) (Plane, error) {
	if r3.Norm(normal) < tolerance {
		return Plane{}, ErrMsg("zero plane normal")
	}
	n := r3.Unit(normal)
	x := r3.Sub(xAxis, r3.Scale(r3.Dot(xAxis, n), n))
	if r3.Norm(x) < tolerance {
		return Plane{}, ErrMsg("plane reference axis parallel to normal")
	}
	return Plane{Origin: origin, Normal: n, XAxis: r3.Unit(x)}, nil
}

// YAxis returns the in-plane axis completing the right-handed set
// with XAxis and Normal.
func (p Plane) YAxis() r3.Vec {
	return r3.Cross(p.Normal, p.XAxis)
}

// RotateAboutNormal returns the plane rotated about its own origin and
// normal by alpha radians. Only the in-plane axes move.
func (p Plane) RotateAboutNormal(alpha float64) Plane {
	rot := r3.NewRotation(alpha, p.Normal)
	p.XAxis = rot.Rotate(p.XAxis)
	return p
}

// InFrame expresses the plane in the coordinates of frame f by
// applying the inverse of f's world transform.
func (p Plane) InFrame(f Frame) Plane {
	return Plane{
		Origin: f.ToLocal(p.Origin),
		Normal: f.ToLocalDir(p.Normal),
		XAxis:  f.ToLocalDir(p.XAxis),
	}
}

// FromFrame maps a plane expressed in frame f coordinates back into
// world space. It inverts InFrame.
func (p Plane) FromFrame(f Frame) Plane {
	return Plane{
		Origin: f.ToWorld(p.Origin),
		Normal: f.ToWorldDir(p.Normal),
		XAxis:  f.ToWorldDir(p.XAxis),
	}
}

// DistanceTo returns the signed distance from q to the plane, positive
// on the normal side.
func (p Plane) DistanceTo(q r3.Vec) float64 {
	return r3.Dot(r3.Sub(q, p.Origin), p.Normal)
}

// Frame returns the coordinate system rooted at the plane origin with
// X along the in-plane reference axis and Z along the normal.
func (p Plane) Frame() Frame {
	return Frame{Origin: p.Origin, X: p.XAxis, Y: p.YAxis(), Z: p.Normal}
}

// EqualWithin reports whether two planes have coincident origins and
// axes within tol.
func (p Plane) EqualWithin(q Plane, tol float64) bool {
	return d3.EqualWithin(p.Origin, q.Origin, tol) &&
		d3.EqualWithin(p.Normal, q.Normal, tol) &&
		d3.EqualWithin(p.XAxis, q.XAxis, tol)
}
