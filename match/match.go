// Package match defines the candidate glyph placement each pipeline stage
// refines, from the raw shape-matcher candidate through scale verification
// and alignment.
package match

import "github.com/sigilscan/sigilscan/sigil"

// Origin is the absolute 2D position of a matched glyph's reference point,
// recovered by the scale verifier.
type Origin struct {
	X, Y float64
}

// Match is a candidate glyph placement. See spec.md §3.4.
//
// PrevMatches and NextMatches hold the alignment graph's adjacency as
// indices into the Match slice they both belong to, rather than pointers
// to other Match values: per spec.md §9 Design Notes, this sidesteps
// cyclic ownership in a statically typed implementation (the graph itself
// is acyclic by construction, since edges only ever point toward
// increasing coordinates, but the slice is still easier to reason about
// as an arena than as a web of pointers).
type Match struct {
	// Sig is the dictionary sigil this candidate matched against.
	Sig *sigil.Sigil
	// Start and End are half-open indices into the differential op
	// stream. Invariant: End == Start + len(Sig.Ops).
	Start, End int

	// Origin and SF are set by the scale verifier.
	Origin Origin
	SF     float64

	// PrevMatches and NextMatches are populated by the alignment filter:
	// indices, into the slice this Match lives in, of matches directly
	// reachable as a preceding/following character in a word-aligned
	// series.
	PrevMatches []int
	NextMatches []int

	// PassesAlignmentCheck is set by the alignment filter.
	PassesAlignmentCheck bool
}

// New constructs a candidate match for sig starting at the given index into
// the differential op stream.
func New(sig *sigil.Sigil, start int) *Match {
	return &Match{Sig: sig, Start: start, End: start + len(sig.Ops)}
}
