package sigil

import (
	"math"

	"github.com/sigilscan/sigilscan/opstream"
)

// Rotated returns a copy of the sigil rotated by angleDegrees (positive
// angles turn counterclockwise, as Vector.Rotate does: -90 degrees turns
// upright text into text set reading top-to-bottom). Scale is unchanged,
// since rotation is isometric; Origin is rotated along with the strokes,
// and Width is recomputed from the rotated path's bounding box. See
// spec.md §4.7: "apply 2D rotation to each stroke vector and to the
// origin vector".
func (s *Sigil) Rotated(angleDegrees float64) *Sigil {
	theta := angleDegrees * math.Pi / 180.0

	ops := make([]opstream.Op, len(s.Ops))
	for i, op := range s.Ops {
		v := Vector{X: op.Dx, Y: op.Dy}.Rotate(theta)
		ops[i] = opstream.Op{Dx: v.X, Dy: v.Y, Op: op.Op}
	}

	minX, maxX, _, _ := boundingBox(ops)

	return &Sigil{
		Ops:    ops,
		Char:   s.Char,
		Origin: s.Origin.Rotate(theta),
		Scale:  s.Scale,
		Width:  maxX - minX,
		Angle:  s.Angle + angleDegrees,
	}
}
