// Package sigil defines the learned glyph template ("sigil") and its
// dictionary: the recognition engine's model of what a character looks like
// as a sequence of straight pen strokes.
package sigil

import (
	"math"

	"github.com/sigilscan/sigilscan/opstream"
)

// Vector is a 2D vector in a sigil's own coordinate frame, used for its
// origin and for rotating strokes. It is intentionally minimal: sigils only
// ever need addition-free rotation and componentwise scaling, not the full
// vector algebra a rendering path would want.
type Vector struct {
	X, Y float64
}

// Rotate returns v rotated counterclockwise by theta radians.
func (v Vector) Rotate(theta float64) Vector {
	sin, cos := math.Sin(theta), math.Cos(theta)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Sigil is a learned template of straight strokes representing one
// character in one orientation. See spec.md §3.2.
type Sigil struct {
	// Ops is the differential stroke list: straight strokes only.
	Ops []opstream.Op
	// Char is the character this sigil represents.
	Char rune
	// Origin is the vector from the first stroke's start to the glyph's
	// baseline-left reference point, in the sigil's own frame: the
	// (min-x, min-y) corner of the cumulative path.
	Origin Vector
	// Scale is sum(|dx|+|dy|) over all strokes: an orientation-tolerant
	// size measure.
	Scale float64
	// Width is max-x minus min-x of the cumulative path.
	Width float64
	// Angle is 0 or -90 degrees: 0 for the as-trained orientation, -90 for
	// the rotated (vertically set) twin generated at load time.
	Angle float64
}

// New builds a Sigil from a differential op list and a character,
// computing Origin, Scale and Width from ops. It panics if ops is empty:
// a sigil with no strokes cannot represent anything (spec.md §3.2
// invariant len(ops) >= 1).
func New(ops []opstream.Op, char rune) *Sigil {
	if len(ops) == 0 {
		panic("sigil: New called with no ops")
	}

	minX, maxX, minY, _ := boundingBox(ops)

	return &Sigil{
		Ops:    ops,
		Char:   char,
		Origin: Vector{X: minX, Y: minY},
		Scale:  opstream.Scale(ops),
		Width:  maxX - minX,
		Angle:  0,
	}
}

// boundingBox returns (minX, maxX, minY, maxY) of the cumulative path
// traced by ops, starting from (0, 0).
func boundingBox(ops []opstream.Op) (minX, maxX, minY, maxY float64) {
	x, y := 0.0, 0.0
	minX, maxX, minY, maxY = 0, 0, 0, 0

	for _, op := range ops {
		x += op.Dx
		y += op.Dy
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	return minX, maxX, minY, maxY
}
