package render

import (
	"errors"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wirefab/strut"
)

// Strut id labels as polyline curves for a viewport to tessellate.
// Digits use a seven segment layout drawn on the plane spanned by the
// edge tangent and the tertiary frame axis, offset radially clear of
// the strut barrel.

// Curve is a polyline in 3D space.
type Curve []r3.Vec

// LabelCurves traces the strut's assigned id as segment curves next to
// the strut's midpoint. height is the digit height in model units.
// The strut must have been through the indexing pass; an unassigned id
// is an error.
func LabelCurves(s *strut.Strut, height float64) ([]Curve, error) {
	id, ok := s.ID()
	if !ok {
		return nil, errors.New("render: strut id not assigned")
	}
	if height <= 0 {
		return nil, errors.New("render: label height must be positive")
	}
	var (
		e = s.Edge()
		f = e.FrameAt(0.5)
		// Clear the barrel plus a small gap.
		offset = s.Diameter()/2 + 0.2*height
		width  = 0.5 * height
		pitch  = 0.75 * height // digit advance
	)
	digits := strconv.Itoa(id)
	var curves []Curve
	for i, d := range digits {
		segs, ok := segmentFont[d]
		if !ok {
			continue // minus sign of a negative id has no glyph
		}
		org := r3.Add(f.Origin, r3.Scale(offset, f.Y))
		org = r3.Add(org, r3.Scale(float64(i)*pitch-float64(len(digits))*pitch/2, f.X))
		for _, seg := range segs {
			// Glyph Y spans [0,2], so scaling by the digit width
			// (height/2) makes glyphs exactly height tall.
			a := labelPoint(org, f, r2.Scale(width, seg[0]))
			b := labelPoint(org, f, r2.Scale(width, seg[1]))
			curves = append(curves, Curve{a, b})
		}
	}
	return curves, nil
}

// labelPoint lifts a 2D glyph point onto the label plane: glyph X runs
// along the edge tangent, glyph Y along the tertiary frame axis.
func labelPoint(org r3.Vec, f strut.Frame, p r2.Vec) r3.Vec {
	v := r3.Add(r3.Scale(p.X, f.X), r3.Scale(p.Y, f.Z))
	return r3.Add(org, v)
}

// Seven segment glyph geometry in glyph units: x in [0,1] (scaled by
// digit width), y in [0,2] bottom to top (scaled to height).
var (
	segTop      = [2]r2.Vec{{X: 0, Y: 2}, {X: 1, Y: 2}}
	segTopR     = [2]r2.Vec{{X: 1, Y: 2}, {X: 1, Y: 1}}
	segBotR     = [2]r2.Vec{{X: 1, Y: 1}, {X: 1, Y: 0}}
	segBot      = [2]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}
	segBotL     = [2]r2.Vec{{X: 0, Y: 1}, {X: 0, Y: 0}}
	segTopL     = [2]r2.Vec{{X: 0, Y: 2}, {X: 0, Y: 1}}
	segMid      = [2]r2.Vec{{X: 0, Y: 1}, {X: 1, Y: 1}}
	segmentFont = map[rune][][2]r2.Vec{
		'0': {segTop, segTopR, segBotR, segBot, segBotL, segTopL},
		'1': {segTopR, segBotR},
		'2': {segTop, segTopR, segMid, segBotL, segBot},
		'3': {segTop, segTopR, segMid, segBotR, segBot},
		'4': {segTopL, segMid, segTopR, segBotR},
		'5': {segTop, segTopL, segMid, segBotR, segBot},
		'6': {segTop, segTopL, segMid, segBotL, segBotR, segBot},
		'7': {segTop, segTopR, segBotR},
		'8': {segTop, segTopR, segBotR, segBot, segBotL, segTopL, segMid},
		'9': {segTop, segTopR, segBotR, segBot, segTopL, segMid},
	}
)
