// Package strut converts 3D wireframes into fabricable node-strut
// assemblies: every wireframe edge becomes a cylindrical strut with a
// computed end cut plane, and every junction a node whose local frame
// determines how its incident struts must be cut for a robot
// end-effector to reach and finish them.
package strut

import (
	"github.com/wirefab/strut/internal/d3"
)

// holderExclusionDeg is the maximum deviation of a cut plane normal
// from the holder face normal before the cut is unreachable through
// the fixture. A deviation of exactly this angle is still reachable.
const holderExclusionDeg = 30.0

// Strut is a cylindrical fabrication member derived from one wireframe
// edge. The swept solid is computed once at construction and cached
// for the strut's lifetime; cut planes are derived fresh on every call
// since the owner node's geometry may change between calls.
type Strut struct {
	edge     Edge
	node     *Node // owner junction; referenced, never owned
	diameter float64
	ownsEdge bool
	id       int
	idSet    bool
	solid    Solid
}

// NewStrut builds a strut over edge with the given diameter in
// millimetres, owned by node. ownsEdge records whether the strut is
// responsible for the edge's lifetime or whether the caller shares it;
// the caller decides at construction.
func NewStrut(edge Edge, diameter float64, node *Node, ownsEdge bool) (*Strut, error) {
	if d3.EqualWithin(edge.Start, edge.End, tolerance) {
		return nil, ErrDegenerateEdge
	}
	if diameter <= 0 {
		return nil, ErrBadDiameter
	}
	if node == nil {
		return nil, ErrMsg("nil owner node")
	}
	s := &Strut{
		edge:     edge,
		node:     node,
		diameter: diameter,
		ownsEdge: ownsEdge,
	}
	s.solid = SweptCylinder(edge, diameter/2)
	return s, nil
}

// Edge returns the strut's underlying wireframe edge.
func (s *Strut) Edge() Edge { return s.edge }

// OwnsEdge reports whether the strut owns its edge's lifetime.
func (s *Strut) OwnsEdge() bool { return s.ownsEdge }

// Node returns the strut's owner node.
func (s *Strut) Node() *Node { return s.node }

// Diameter returns the strut diameter in millimetres.
func (s *Strut) Diameter() float64 { return s.diameter }

// Solid returns the swept cylinder geometry cached at construction.
func (s *Strut) Solid() Solid { return s.solid }

// CutSolid returns the swept solid cut by the raw cut plane. The
// material on the normal side, toward the node, remains.
func (s *Strut) CutSolid() Solid {
	pl := s.RawCutPlane()
	return Cut3D(s.solid, pl.Origin, pl.Normal)
}

// ID returns the externally assigned identifier and whether the
// indexing pass has assigned it yet.
func (s *Strut) ID() (int, bool) { return s.id, s.idSet }

// SetID assigns the authoritative identifier computed by the topology
// indexer. The id may be assigned exactly once; further calls return
// ErrIDSet.
func (s *Strut) SetID(id int) error {
	if s.idSet {
		return ErrIDSet
	}
	s.id = id
	s.idSet = true
	return nil
}

// Hash returns the order independent spatial hash of the strut's edge
// endpoints. See EdgeHash.
func (s *Strut) Hash() uint64 { return EdgeHash(s.edge) }

// HolderExcluded reports whether the strut's cut orientation falls in
// the disallowed zone of the node's holder fixture: true when the raw
// cut plane normal deviates more than 30 degrees from the holder face
// normal sampled at mid parameter. A deviation of exactly 30 degrees
// is not excluded.
func (s *Strut) HolderExcluded() bool {
	n := s.node.Holder().NormalAt(0.5, 0.5)
	ang := angleBetween(n, s.RawCutPlane().Normal)
	// Deviations within the geometric tolerance of the boundary count
	// as reachable.
	return ang-DtoR(holderExclusionDeg) > tolerance
}
