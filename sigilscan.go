// Package sigilscan recognizes vector-stroke glyphs ("sigils") in a PDF
// content stream's drawing operations and reports where each one was
// found, so that a caller can overlay invisible, searchable text on top
// of schematic artwork that was never real text to begin with.
//
// The pipeline is purely functional over in-memory data: normalize the
// input op stream, match candidate shapes against a dictionary, prune
// submatches, verify scale consistency, and optionally filter by
// word-alignment. See spec.md §4.8.
package sigilscan

import (
	"github.com/sigilscan/sigilscan/align"
	"github.com/sigilscan/sigilscan/ambiguity"
	"github.com/sigilscan/sigilscan/matcher"
	"github.com/sigilscan/sigilscan/opstream"
	"github.com/sigilscan/sigilscan/prune"
	"github.com/sigilscan/sigilscan/scale"
	"github.com/sigilscan/sigilscan/sigil"

	"github.com/sigilscan/sigilscan/match"
)

// Result is the outcome of a single document's recognition pass.
type Result struct {
	Matches   []*match.Match
	Ambiguous ambiguity.Tally
}

// MatchSigils runs the full recognition pipeline over absOps using dict,
// and returns the surviving matches together with a diagnostic ambiguity
// tally. Set skipAlignmentCheck to capture unfiltered candidates for
// training/diagnostic tooling; recognition proper always leaves it false.
func MatchSigils(dict sigil.Dictionary, absOps []opstream.AbsOp, skipAlignmentCheck bool) Result {
	if len(absOps) < 2 {
		return Result{}
	}

	normalized := opstream.Normalize(absOps)
	diffOps := opstream.Diff(normalized)

	expanded := dict.ExpandRotations()

	matches := matcher.Match(expanded, diffOps)
	if len(matches) == 0 {
		return Result{}
	}

	matches = prune.Prune(matches)
	matches = scale.Verify(matches, normalized, diffOps)

	if !skipAlignmentCheck {
		matches = align.Filter(expanded, matches)
	}

	return Result{
		Matches:   matches,
		Ambiguous: ambiguity.Count(matches),
	}
}
