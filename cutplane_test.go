package strut

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// worldNode returns a node with the identity frame at the origin and a
// holder face lying in the XY plane.
func worldNode(t testing.TB) *Node {
	t.Helper()
	holder, err := NewPlane(r3.Vec{}, r3.Vec{Z: 1}, r3.Vec{X: 1})
	if err != nil {
		t.Fatal(err)
	}
	return NewNode(WorldFrame(), HolderFace{Plane: holder, HalfWidth: 20, HalfHeight: 20})
}

func mustStrut(t testing.TB, start, end r3.Vec, node *Node) *Strut {
	t.Helper()
	e, err := NewEdge(start, end)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStrut(e, 10, node, true)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRawCutPlane(t *testing.T) {
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100}, worldNode(t))
	pl := s.RawCutPlane()
	vecNear(t, "origin", pl.Origin, r3.Vec{}, 0)
	vecNear(t, "normal", pl.Normal, r3.Vec{Y: -1}, 1e-12)
	vecNear(t, "xaxis", pl.XAxis, r3.Vec{Z: 1}, 1e-12)
	// The plane contains the strut axis: normal perpendicular to tangent.
	if math.Abs(r3.Dot(pl.Normal, s.Edge().Tangent())) > 1e-12 {
		t.Error("cut plane normal not perpendicular to the strut axis")
	}
}

func TestTransformedCutPlaneRoundTrip(t *testing.T) {
	org := r3.Vec{X: 5, Y: -3, Z: 2}
	frame, err := NewFrame(org, r3.Vec{X: 1, Y: 1}, r3.Vec{Z: 1})
	if err != nil {
		t.Fatal(err)
	}
	holder, err := NewPlane(org, frame.Z, frame.X)
	if err != nil {
		t.Fatal(err)
	}
	node := NewNode(frame, HolderFace{Plane: holder, HalfWidth: 20, HalfHeight: 20})
	s := mustStrut(t, org, r3.Add(org, r3.Vec{X: 70, Y: -20, Z: 30}), node)

	raw := s.RawCutPlane()
	tr := s.TransformedCutPlane()
	// Mapping the transformed plane back through the node frame must
	// recover the raw plane exactly.
	if back := tr.FromFrame(node.Frame()); !back.EqualWithin(raw, 1e-9) {
		t.Errorf("round trip plane %+v, want %+v", back, raw)
	}
	// A strut starting at the node origin has its transformed plane at
	// the local origin.
	vecNear(t, "transformed origin", tr.Origin, r3.Vec{}, 1e-9)
}

func TestTransformedCutPlaneIdentityNode(t *testing.T) {
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100, Y: 100, Z: 100}, worldNode(t))
	if !s.TransformedCutPlane().EqualWithin(s.RawCutPlane(), 1e-12) {
		t.Error("identity node changed the cut plane")
	}
}

func TestAlignCutPlane(t *testing.T) {
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100}, worldNode(t))
	// Raw in-plane axis is +Z. Aligning to +Z is a no-op.
	pl, err := s.AlignCutPlane(r3.Vec{Z: 1})
	if err != nil {
		t.Fatal(err)
	}
	vecNear(t, "aligned axis (no-op)", pl.XAxis, r3.Vec{Z: 1}, 1e-12)

	// Aligning to +X needs a quarter turn about the normal.
	pl, err = s.AlignCutPlane(r3.Vec{X: 1})
	if err != nil {
		t.Fatal(err)
	}
	vecNear(t, "aligned axis", pl.XAxis, r3.Vec{X: 1}, 1e-12)
	vecNear(t, "normal preserved", pl.Normal, r3.Vec{Y: -1}, 1e-12)
}

func TestMarchCutPlanePostcondition(t *testing.T) {
	node := worldNode(t)
	// Direction with all components non-zero so the starting in-plane
	// axis violates the convergence conditions.
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100, Y: 100, Z: 100}, node)
	secondary := r3.Vec{Y: 1}
	guide := r3.Vec{X: 1}
	for _, seed := range []uint64{1, 2, 42, 1234} {
		pl, err := s.MarchCutPlane(guide, MarchConfig{Seed: seed})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got := math.Abs(r3.Dot(pl.XAxis, secondary)); got > 0.01 {
			t.Errorf("seed %d: |axis·secondary| = %v, want <= 0.01", seed, got)
		}
		if got := r3.Dot(pl.XAxis, guide); got < 0 {
			t.Errorf("seed %d: axis·guide = %v, want >= 0", seed, got)
		}
		// The normal never moves under in-plane rotation.
		vecNear(t, "marched normal", pl.Normal, s.TransformedCutPlane().Normal, 1e-12)
	}
}

func TestMarchCutPlaneDeterministic(t *testing.T) {
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100, Y: 100, Z: 100}, worldNode(t))
	cfg := MarchConfig{Seed: 7}
	a, err := s.MarchCutPlane(r3.Vec{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.MarchCutPlane(r3.Vec{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same seed produced different planes")
	}
}

func TestMarchCutPlaneNoConvergence(t *testing.T) {
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100, Y: 100, Z: 100}, worldNode(t))
	// Starting |axis·secondary| is about 0.41 and the per-step rotation
	// is at most 5 degrees, so two iterations cannot converge.
	pl, err := s.MarchCutPlane(r3.Vec{}, MarchConfig{Seed: 1, MaxIter: 2})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("got %v, want ErrNoConvergence", err)
	}
	// The last tried plane is still returned for inspection.
	if pl.Normal == (r3.Vec{}) {
		t.Error("no plane returned alongside ErrNoConvergence")
	}
}

func TestMarchCutPlaneBadGuide(t *testing.T) {
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100}, worldNode(t))
	// Plane normal is -Y; a guide along Y is collinear with it.
	if _, err := s.MarchCutPlane(r3.Vec{Y: 1}, MarchConfig{}); !errors.Is(err, ErrBadGuide) {
		t.Errorf("got %v, want ErrBadGuide for guide parallel to normal", err)
	}
	if _, err := s.AlignCutPlane(r3.Vec{Y: -3}); !errors.Is(err, ErrBadGuide) {
		t.Errorf("got %v, want ErrBadGuide from AlignCutPlane", err)
	}
}

func TestMarchCutPlaneZeroGuideDefaults(t *testing.T) {
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100, Y: 100, Z: 100}, worldNode(t))
	a, err := s.MarchCutPlane(r3.Vec{}, MarchConfig{Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.MarchCutPlane(r3.Vec{X: 1}, MarchConfig{Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("zero guide did not default to the X direction")
	}
}

func TestAlignedFrame(t *testing.T) {
	s := mustStrut(t, r3.Vec{}, r3.Vec{X: 100, Y: 100, Z: 100}, worldNode(t))
	f, err := s.AlignedFrame(r3.Vec{}, MarchConfig{Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsOrthonormal(1e-9) {
		t.Error("aligned frame not orthonormal")
	}
	pl, err := s.MarchCutPlane(r3.Vec{}, MarchConfig{Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	vecNear(t, "aligned frame X", f.X, pl.XAxis, 0)
	vecNear(t, "aligned frame Z", f.Z, pl.Normal, 0)
	vecNear(t, "aligned frame origin", f.Origin, pl.Origin, 0)
}
