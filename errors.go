package strut

import "errors"

// Errors returned by strut construction and cut plane derivation.
// All failures surface to the immediate caller; there is no retry
// or recovery inside the package.
var (
	// ErrDegenerateEdge is returned for zero length edges, which have
	// no defined tangent and therefore no cut plane.
	ErrDegenerateEdge = errors.New("strut: degenerate zero-length edge")
	// ErrBadDiameter is returned for non-positive strut diameters.
	ErrBadDiameter = errors.New("strut: diameter must be positive")
	// ErrBadGuide is returned when the alignment guide vector is zero
	// or parallel to the cut plane normal.
	ErrBadGuide = errors.New("strut: guide vector is zero or parallel to plane normal")
	// ErrNoConvergence is returned when the marching alignment search
	// hits its iteration bound before satisfying both alignment
	// conditions. The plane returned alongside it is the last attempt.
	ErrNoConvergence = errors.New("strut: cut plane alignment did not converge")
	// ErrIDSet is returned by SetID when the strut id was already
	// assigned by the indexing pass.
	ErrIDSet = errors.New("strut: id already assigned")
)
