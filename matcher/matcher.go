// Package matcher finds every position in a differential op stream where a
// dictionary sigil's opcode skeleton occurs at a true subpath boundary and
// whose stroke directions agree with the sigil's own, within tolerance.
// See spec.md §4.2.
package matcher

import (
	"math"

	"github.com/sigilscan/sigilscan/match"
	"github.com/sigilscan/sigilscan/opstream"
	"github.com/sigilscan/sigilscan/sigil"
	"github.com/sigilscan/sigilscan/tolerance"
)

// Match scans ops against every variant in dict and returns one
// match.Match per (sigil, start) pair whose opcode skeleton and stroke
// directions both agree.
//
// The opcode skeleton check is equivalent to searching for every
// overlapping occurrence of "m"+sigilOpcodes+"m" inside
// "m"+streamOpcodes+"m" (spec.md §4.2): rather than building those strings
// and running a substring search, the boundary conditions are checked
// directly against the neighboring ops, which is the same contract with
// no string-building overhead and no dependency on a prefix-automaton
// library (see DESIGN.md).
func Match(dict sigil.Dictionary, ops []opstream.Op) []*match.Match {
	var out []*match.Match

	for _, sig := range dict.All() {
		n := len(sig.Ops)
		if n == 0 || n > len(ops) {
			continue
		}

		for start := 0; start+n <= len(ops); start++ {
			if !isSubpathBoundary(ops, start, n) {
				continue
			}
			if !opcodesAgree(ops[start:start+n], sig.Ops) {
				continue
			}
			if !directionsAgree(ops[start:start+n], sig.Ops) {
				continue
			}
			out = append(out, match.New(sig, start))
		}
	}

	return out
}

// isSubpathBoundary reports whether a candidate starting at start and
// spanning n ops begins and ends at a subpath boundary: the op
// immediately before it (if any) must be a Move, and so must the op
// immediately after it (if any). This is what the sentinel "m" wrapping
// in spec.md §4.2 enforces, and is what stops a sigil that starts with a
// move from being recognized mid-stroke.
func isSubpathBoundary(ops []opstream.Op, start, n int) bool {
	if start > 0 && ops[start-1].Op != opstream.Move {
		return false
	}
	if end := start + n; end < len(ops) && ops[end].Op != opstream.Move {
		return false
	}
	return true
}

func opcodesAgree(docOps, sigOps []opstream.Op) bool {
	for i := range sigOps {
		if docOps[i].Op != sigOps[i].Op {
			return false
		}
	}
	return true
}

// directionsAgree compares each corresponding stroke's direction. A pair
// of degenerate (near-zero-length) strokes agrees trivially; a pair where
// only one side is degenerate never agrees; otherwise the strokes must
// point the same way within tolerance.DirectionCosine.
func directionsAgree(docOps, sigOps []opstream.Op) bool {
	for i := range sigOps {
		d, s := docOps[i], sigOps[i]
		dn, sn := d.Magnitude(), s.Magnitude()

		dZero := dn < tolerance.ZeroLength
		sZero := sn < tolerance.ZeroLength

		switch {
		case dZero && sZero:
			continue
		case dZero != sZero:
			return false
		}

		cos := (d.Dx*s.Dx + d.Dy*s.Dy) / (dn * sn)
		if cos <= tolerance.DirectionCosine {
			return false
		}
	}
	return true
}

// cosineBetween is exposed for tests that want to sanity-check the
// direction tolerance boundary directly.
func cosineBetween(a, b opstream.Op) float64 {
	an, bn := a.Magnitude(), b.Magnitude()
	if an == 0 || bn == 0 {
		return math.NaN()
	}
	return (a.Dx*b.Dx + a.Dy*b.Dy) / (an * bn)
}
