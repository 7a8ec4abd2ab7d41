package opstream

import (
	"fmt"

	"github.com/sigilscan/sigilscan/tolerance"
)

// Normalize walks abs, starting from the first op, and drops any op whose
// displacement from the previously retained position has magnitude below
// tolerance.ZeroLength. The first op is always retained.
func Normalize(abs []AbsOp) []AbsOp {
	if len(abs) == 0 {
		return nil
	}

	out := make([]AbsOp, 0, len(abs))
	out = append(out, abs[0])
	px, py := abs[0].X, abs[0].Y

	for _, op := range abs[1:] {
		dx, dy := op.X-px, op.Y-py
		if dx*dx+dy*dy >= tolerance.ZeroLength*tolerance.ZeroLength {
			out = append(out, op)
			px, py = op.X, op.Y
		}
	}

	return out
}

// Diff converts a normalized absolute op stream into the differential form
// the matcher operates on: each entry is the delta from the previous
// position, and the list has one fewer entry than abs since the initial
// move is consumed as the origin anchor.
//
// Diff panics if abs is empty or its first op is not a Move: that would
// mean the reader supplying the stream violated its contract (the first
// drawing op on a page must be a repositioning, never a stroke from
// nowhere), and the engine does not recover from a broken contract.
func Diff(abs []AbsOp) []Op {
	if len(abs) == 0 {
		panic("opstream: Diff called on empty stream")
	}
	if abs[0].Op != Move {
		panic(fmt.Sprintf("opstream: first op must be Move, got %q", abs[0].Op))
	}

	ops := make([]Op, 0, len(abs)-1)
	px, py := abs[0].X, abs[0].Y

	for _, op := range abs[1:] {
		ops = append(ops, Op{Dx: op.X - px, Dy: op.Y - py, Op: op.Op})
		px, py = op.X, op.Y
	}

	return ops
}
