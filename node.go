package strut

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Node is a wireframe junction. It owns a local oriented frame and a
// holder face, the fixture surface a robot grips the node by during
// strut finishing. Nodes are constructed and owned by the assembly
// indexer; every strut terminating at the junction holds a non-owning
// reference to the same Node.
type Node struct {
	frame  Frame
	holder HolderFace
}

// NewNode returns a node with the given local frame and holder face.
func NewNode(frame Frame, holder HolderFace) *Node {
	return &Node{frame: frame, holder: holder}
}

// Frame returns the node's local oriented frame.
func (n *Node) Frame() Frame { return n.frame }

// Holder returns the node's holder face.
func (n *Node) Holder() HolderFace { return n.holder }

// Position returns the node's location in world space.
func (n *Node) Position() r3.Vec { return n.frame.Origin }

// SetHolder replaces the holder face. Exclusion checks are recomputed
// per call so callers see the new fixture immediately.
func (n *Node) SetHolder(holder HolderFace) { n.holder = holder }

// HolderFace is a bounded planar patch with a well defined normal
// field, modeling the node's holder fixture surface.
type HolderFace struct {
	Plane Plane
	// Half extents of the patch along the plane X and Y axes, millimetres.
	HalfWidth, HalfHeight float64
}

// NormalAt samples the face normal at normalized surface parameters
// u, v in [0,1]. The face is planar so the field is constant; the
// mid-parameter sample (0.5, 0.5) is the face's representative normal.
func (h HolderFace) NormalAt(u, v float64) r3.Vec {
	return h.Plane.Normal
}

// PointAt returns the face point at normalized parameters u, v, with
// (0.5, 0.5) at the patch center.
func (h HolderFace) PointAt(u, v float64) r3.Vec {
	du := (2*clamp(u, 0, 1) - 1) * h.HalfWidth
	dv := (2*clamp(v, 0, 1) - 1) * h.HalfHeight
	p := r3.Add(h.Plane.Origin, r3.Scale(du, h.Plane.XAxis))
	return r3.Add(p, r3.Scale(dv, h.Plane.YAxis()))
}
