// Package opstream models the flat stream of pen-up/pen-down drawing
// operations sigils are matched against, and the two conversions a raw
// reader's absolute coordinates go through before matching: zero-length
// pruning and absolute-to-differential conversion.
package opstream

import "math"

// Opcode is a single drawing step's pen state.
type Opcode byte

const (
	// Move repositions the pen without drawing ("pen up").
	Move Opcode = 'm'
	// Line draws a straight stroke to the new position ("pen down").
	Line Opcode = 'l'
)

// Letter returns the single-character skeleton representation of the
// opcode: 'm' for Move, 'l' for Line.
func (c Opcode) Letter() byte { return byte(c) }

// AbsOp is a single absolute drawing step, in page-local coordinates with
// rotation and CTM already applied by the reader.
type AbsOp struct {
	X, Y float64
	Op   Opcode
}

// Op is a differential drawing step: the delta from the previous pen
// position, together with the opcode of the step that produced it.
type Op struct {
	Dx, Dy float64
	Op     Opcode
}

// Magnitude returns the Euclidean length of the op's displacement.
func (o Op) Magnitude() float64 {
	return math.Hypot(o.Dx, o.Dy)
}

// Scale computes sum(|dx|+|dy|) over ops: an orientation-tolerant size
// measure, since it is invariant under the 90-degree rotations sigils use.
func Scale(ops []Op) float64 {
	var total float64
	for _, op := range ops {
		total += math.Abs(op.Dx) + math.Abs(op.Dy)
	}
	return total
}
