package strut

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cut plane derivation and guide alignment.
//
// Every strut end must be cut on a plane whose orientation is
// consistent with the owning node's local frame. The raw plane comes
// straight from the edge parametrization; the transformed plane
// normalizes all struts at a node into the node's local space; the
// aligned plane additionally rotates the in-plane reference axis
// toward a guide direction so the robot approaches every cut the same
// way.

const (
	// marchMinDeg and marchMaxDeg bound the random rotation step of
	// the marching alignment search, in degrees.
	marchMinDeg = 1e-4
	marchMaxDeg = 5.0
	// alignTol is the largest allowed component of the aligned
	// in-plane axis along the node frame's secondary axis.
	alignTol = 0.01
	// guideParallelTol rejects guides this close to collinear with the
	// plane normal, for which alignment is undefined.
	guideParallelTol = 1e-6
)

// DefaultMarchIter is the marching search iteration bound used when
// MarchConfig.MaxIter is zero.
const DefaultMarchIter = 10000

// MarchConfig parametrizes the randomized marching alignment search.
// The zero value selects a fixed seed and DefaultMarchIter, so results
// are reproducible unless the caller opts into another seed.
type MarchConfig struct {
	// Seed seeds the random source. Zero selects seed 1.
	Seed uint64
	// MaxIter bounds the search. Zero selects DefaultMarchIter.
	MaxIter int
}

// RawCutPlane returns the cut plane at the strut's node end: the plane
// through the edge start whose normal is the reversed secondary axis
// of the edge frame at parameter 0 and whose in-plane reference axis
// is the frame's tertiary axis. Reversing the secondary axis points
// the normal toward the node, the convention downstream robot path
// generation expects.
func (s *Strut) RawCutPlane() Plane {
	f := s.edge.FrameAt(0)
	return Plane{Origin: f.Origin, Normal: r3.Scale(-1, f.Y), XAxis: f.Z}
}

// TransformedCutPlane expresses the raw cut plane in the owner node's
// local frame by applying the inverse of the node's world transform.
// All struts at a node land in a common local space regardless of the
// node's world placement, which node-local robot path generation
// requires.
func (s *Strut) TransformedCutPlane() Plane {
	return s.RawCutPlane().InFrame(s.node.Frame())
}

// AlignCutPlane rotates the transformed cut plane about its own normal
// by the closed form angle -acos(axis·guide), attempting to line the
// in-plane axis up with guide in a single shot. The acos branch is
// ambiguous near collinearity and nothing forces the rotated axis's
// out-of-plane component to vanish, so the result does not always
// satisfy the marching convergence conditions; use MarchCutPlane when
// those must hold. A zero guide selects the world X direction.
func (s *Strut) AlignCutPlane(guide r3.Vec) (Plane, error) {
	pl := s.TransformedCutPlane()
	guide, err := checkGuide(guide, pl.Normal)
	if err != nil {
		return Plane{}, err
	}
	ang := -math.Acos(clamp(r3.Dot(pl.XAxis, guide), -1, 1))
	return pl.RotateAboutNormal(ang), nil
}

// MarchCutPlane aligns the transformed cut plane to guide by
// randomized local search. The plane is repeatedly rotated about its
// own origin and normal by an angle sampled uniformly from
// [marchMinDeg, marchMaxDeg] degrees until the in-plane axis has a
// near-zero component along the node frame's secondary axis
// (|axis·secondary| <= 0.01) and a non-negative dot product with
// guide. Guide is interpreted in the node's local space; a zero guide
// selects the X direction. If the iteration bound is hit the last
// tried plane is returned together with ErrNoConvergence.
func (s *Strut) MarchCutPlane(guide r3.Vec, cfg MarchConfig) (Plane, error) {
	pl := s.TransformedCutPlane()
	guide, err := checkGuide(guide, pl.Normal)
	if err != nil {
		return Plane{}, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	maxIter := cfg.MaxIter
	if maxIter == 0 {
		maxIter = DefaultMarchIter
	}
	rng := rand.New(rand.NewSource(seed))
	// The plane is already in node coordinates, so the node's
	// secondary axis is the local Y unit vector.
	secondary := r3.Vec{Y: 1}
	for i := 0; i < maxIter; i++ {
		ax := pl.XAxis
		if math.Abs(r3.Dot(ax, secondary)) <= alignTol && r3.Dot(ax, guide) >= 0 {
			return pl, nil
		}
		step := marchMinDeg + (marchMaxDeg-marchMinDeg)*rng.Float64()
		pl = pl.RotateAboutNormal(DtoR(step))
	}
	return pl, ErrNoConvergence
}

// AlignedFrame wraps the marching-aligned cut plane as a coordinate
// system rooted at the plane origin, X along the aligned in-plane axis
// and Z along the plane normal, for viewport display and robot
// targeting.
func (s *Strut) AlignedFrame(guide r3.Vec, cfg MarchConfig) (Frame, error) {
	pl, err := s.MarchCutPlane(guide, cfg)
	if err != nil {
		return Frame{}, err
	}
	return pl.Frame(), nil
}

// checkGuide validates and normalizes the guide vector against the
// plane normal. A zero guide selects the default world X direction.
func checkGuide(guide, normal r3.Vec) (r3.Vec, error) {
	if guide == (r3.Vec{}) {
		guide = r3.Vec{X: 1}
	}
	if r3.Norm(guide) < tolerance {
		return r3.Vec{}, ErrBadGuide
	}
	guide = r3.Unit(guide)
	if math.Abs(r3.Dot(guide, r3.Unit(normal))) > 1-guideParallelTol {
		return r3.Vec{}, ErrBadGuide
	}
	return guide, nil
}
