package render

import (
	"io"
	"math"

	"github.com/wirefab/strut/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wirefab/strut"
)

// DefaultSides is the tessellation side count used when a caller
// passes sides < 3.
const DefaultSides = 24

// MeshStrut returns the prismatic tessellation of the strut's swept
// cylinder: sides quads along the barrel split in two triangles each,
// and a triangle fan closing each end cap. All triangles wind so their
// normals point out of the solid.
func MeshStrut(s *strut.Strut, sides int) []Triangle3 {
	if sides < 3 {
		sides = DefaultSides
	}
	var (
		e      = s.Edge()
		f      = e.FrameAt(0)
		radius = s.Diameter() / 2
		axial  = r3.Scale(e.Length(), f.X)
		tris   = make([]Triangle3, 0, 4*sides)
	)
	// Rings of vertices around both strut ends.
	bot := make([]r3.Vec, sides)
	top := make([]r3.Vec, sides)
	for k := 0; k < sides; k++ {
		theta := 2 * math.Pi * float64(k) / float64(sides)
		radial := r3.Add(
			r3.Scale(radius*math.Cos(theta), f.Y),
			r3.Scale(radius*math.Sin(theta), f.Z),
		)
		bot[k] = r3.Add(f.Origin, radial)
		top[k] = r3.Add(bot[k], axial)
	}
	botCenter := f.Origin
	topCenter := r3.Add(f.Origin, axial)
	for k := 0; k < sides; k++ {
		k1 := (k + 1) % sides
		// barrel
		tris = append(tris,
			Triangle3{V: [3]r3.Vec{bot[k], bot[k1], top[k1]}},
			Triangle3{V: [3]r3.Vec{bot[k], top[k1], top[k]}},
		)
		// caps: bottom winds against the ring so the normal points
		// down the edge tangent, top winds with it.
		tris = append(tris,
			Triangle3{V: [3]r3.Vec{botCenter, bot[k1], bot[k]}},
			Triangle3{V: [3]r3.Vec{topCenter, top[k], top[k1]}},
		)
	}
	return tris
}

// MeshAssembly tessellates every strut of an assembly into one
// triangle soup.
func MeshAssembly(struts []*strut.Strut, sides int) []Triangle3 {
	var tris []Triangle3
	for _, s := range struts {
		tris = append(tris, MeshStrut(s, sides)...)
	}
	return tris
}

// assembly streams the tessellation of a strut list one strut at a
// time, so callers do not hold the whole soup in memory.
type assembly struct {
	struts  []*strut.Strut
	sides   int
	pending []Triangle3
	next    int
}

// NewAssemblyRenderer returns a Renderer producing the tessellation of
// every strut in order.
func NewAssemblyRenderer(struts []*strut.Strut, sides int) Renderer {
	if sides < 3 {
		sides = DefaultSides
	}
	return &assembly{struts: struts, sides: sides}
}

// ReadTriangles writes tessellated triangles into dst. It returns
// io.EOF once every strut has been consumed.
func (a *assembly) ReadTriangles(dst []Triangle3) (int, error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	n := 0
	for n < len(dst) {
		if len(a.pending) == 0 {
			if a.next == len(a.struts) {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			a.pending = MeshStrut(a.struts[a.next], a.sides)
			a.next++
		}
		c := copy(dst[n:], a.pending)
		a.pending = a.pending[c:]
		n += c
	}
	return n, nil
}

// MeshBounds returns the bounding box of a triangle soup.
func MeshBounds(tris []Triangle3) r3.Box {
	if len(tris) == 0 {
		return r3.Box{}
	}
	bb := d3.Box{Min: tris[0].V[0], Max: tris[0].V[0]}
	for _, t := range tris {
		for _, v := range t.V {
			bb = bb.Include(v)
		}
	}
	return r3.Box(bb)
}
