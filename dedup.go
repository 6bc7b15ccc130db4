package strut

// Dedupe removes duplicate segments from a wireframe, keeping the
// first occurrence of every segment in input order. Two edges are
// duplicates when their endpoint pairs coincide within the package
// tolerance in either orientation, so an edge and its reverse count
// as one segment. The scan is quadratic in the number of kept edges,
// which is fine at expected wireframe sizes of tens to a few hundred
// segments.
func Dedupe(edges []Edge) []Edge {
	kept := make([]Edge, 0, len(edges))
	for _, e := range edges {
		dup := false
		for _, k := range kept {
			if e.EqualWithin(k, tolerance) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, e)
		}
	}
	return kept
}
