package sigilscan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigilscan/sigilscan/opstream"
	"github.com/sigilscan/sigilscan/sigil"
)

func absPath(points ...opstream.AbsOp) []opstream.AbsOp { return points }

func TestMatchSigilsReturnsEmptyForShortStream(t *testing.T) {
	dict := sigil.Dictionary{}
	result := MatchSigils(dict, []opstream.AbsOp{{X: 0, Y: 0, Op: opstream.Move}}, false)
	assert.Empty(t, result.Matches)
}

// E1: a spurious hyphen matching an "A"'s crossbar subpath is removed by
// submatch pruning, leaving only the A.
func TestMatchSigilsPrunesHyphenInsideA(t *testing.T) {
	aOps := []opstream.Op{
		{Dx: 1, Dy: 2, Op: opstream.Line},
		{Dx: -1, Dy: -1, Op: opstream.Move},
		{Dx: 2, Dy: 0, Op: opstream.Line},
		{Dx: -1, Dy: 1, Op: opstream.Move},
		{Dx: 1, Dy: -2, Op: opstream.Line},
	}
	hyphenOps := []opstream.Op{{Dx: 1, Dy: 0, Op: opstream.Line}}

	dict := sigil.Dictionary{
		'A': {sigil.New(aOps, 'A')},
		'-': {sigil.New(hyphenOps, '-')},
	}

	abs := absPath(
		opstream.AbsOp{X: 0, Y: 0, Op: opstream.Move},
		opstream.AbsOp{X: 1, Y: 2, Op: opstream.Line},
		opstream.AbsOp{X: 0, Y: 1, Op: opstream.Move},
		opstream.AbsOp{X: 2, Y: 1, Op: opstream.Line},
		opstream.AbsOp{X: 1, Y: 2, Op: opstream.Move},
		opstream.AbsOp{X: 2, Y: 0, Op: opstream.Line},
	)

	result := MatchSigils(dict, abs, false)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, 'A', result.Matches[0].Sig.Char)
}

// E5: a stroke whose length ratio disagrees with the rest of the sigil is
// rejected by scale verification.
func TestMatchSigilsRejectsInconsistentStrokeLength(t *testing.T) {
	sigOps := []opstream.Op{
		{Dx: 1, Dy: 0, Op: opstream.Line},
		{Dx: 0, Dy: 1, Op: opstream.Line},
	}
	dict := sigil.Dictionary{'L': {sigil.New(sigOps, 'L')}}

	abs := absPath(
		opstream.AbsOp{X: 0, Y: 0, Op: opstream.Move},
		opstream.AbsOp{X: 1, Y: 0, Op: opstream.Line},
		opstream.AbsOp{X: 1, Y: 2, Op: opstream.Line},
	)

	result := MatchSigils(dict, abs, false)

	assert.Empty(t, result.Matches)
}

// E6: two sigils with identical op sequences both match fully at the same
// start; neither contains the other, and the ambiguity tally reports them.
func TestMatchSigilsReportsAmbiguousFullOverlap(t *testing.T) {
	sigOps := []opstream.Op{
		{Dx: 1, Dy: 0, Op: opstream.Line},
		{Dx: 0, Dy: 1, Op: opstream.Line},
	}
	dict := sigil.Dictionary{
		'P': {sigil.New(sigOps, 'P')},
		'Q': {sigil.New(sigOps, 'Q')},
	}

	abs := absPath(
		opstream.AbsOp{X: 0, Y: 0, Op: opstream.Move},
		opstream.AbsOp{X: 1, Y: 0, Op: opstream.Line},
		opstream.AbsOp{X: 1, Y: 1, Op: opstream.Line},
	)

	result := MatchSigils(dict, abs, false)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, 1, result.Ambiguous["P,Q"])
}

func TestMatchSigilsSkipAlignmentCheckFlagBypassesFilter(t *testing.T) {
	hyphenOps := []opstream.Op{{Dx: 1, Dy: 0, Op: opstream.Line}}
	dict := sigil.Dictionary{
		'V': {sigil.New([]opstream.Op{{Dx: 1, Dy: 0, Op: opstream.Line}, {Dx: 0, Dy: 1, Op: opstream.Line}}, 'V')},
		'-': {sigil.New(hyphenOps, '-')},
	}

	abs := absPath(
		opstream.AbsOp{X: 0, Y: 0, Op: opstream.Move},
		opstream.AbsOp{X: 1, Y: 0, Op: opstream.Line},
	)

	// With the alignment filter running, a lone hyphen with nothing
	// preceding it belongs to no valid series and is dropped.
	filtered := MatchSigils(dict, abs, false)
	assert.Empty(t, filtered.Matches)

	// The same candidate survives when diagnostic capture tooling opts out
	// of the alignment filter.
	unfiltered := MatchSigils(dict, abs, true)
	require.Len(t, unfiltered.Matches, 1)
	assert.Equal(t, '-', unfiltered.Matches[0].Sig.Char)
}

// E4: a "V" drawn rotated -90 degrees is recognized via its rotated twin,
// with an Origin consistent with rotating the horizontal case's Origin by
// -90 degrees (spec.md §8 property 5, rotated-twin symmetry). "V" is a
// two-stroke sigil, so it never anchors its own series (§4.5); the
// alignment check is skipped here since this test is only exercising
// rotation math, the documented purpose of that flag.
func TestMatchSigilsRotatedTwinSymmetry(t *testing.T) {
	vOps := []opstream.Op{
		{Dx: 1, Dy: -2, Op: opstream.Line},
		{Dx: 1, Dy: 2, Op: opstream.Line},
	}
	dict := sigil.Dictionary{'V': {sigil.New(vOps, 'V')}}

	horizontal := MatchSigils(dict, absPath(
		opstream.AbsOp{X: 0, Y: 0, Op: opstream.Move},
		opstream.AbsOp{X: 1, Y: -2, Op: opstream.Line},
		opstream.AbsOp{X: 2, Y: 0, Op: opstream.Line},
	), true)
	require.Len(t, horizontal.Matches, 1)
	require.Equal(t, float64(0), horizontal.Matches[0].Sig.Angle)

	// The same glyph, rotated -90 degrees: each document vector (dx, dy)
	// becomes (dy, -dx), drawn from the same origin.
	vertical := MatchSigils(dict, absPath(
		opstream.AbsOp{X: 0, Y: 0, Op: opstream.Move},
		opstream.AbsOp{X: -2, Y: -1, Op: opstream.Line},
		opstream.AbsOp{X: 0, Y: -2, Op: opstream.Line},
	), true)
	require.Len(t, vertical.Matches, 1)

	vMatch := vertical.Matches[0]
	assert.Equal(t, 'V', vMatch.Sig.Char)
	assert.Equal(t, float64(-90), vMatch.Sig.Angle)
	assert.InDelta(t, horizontal.Matches[0].SF, vMatch.SF, 1e-9)

	hOrigin := horizontal.Matches[0].Origin
	rotated := sigil.Vector{X: hOrigin.X, Y: hOrigin.Y}.Rotate(-90 * math.Pi / 180.0)
	assert.InDelta(t, rotated.X, vMatch.Origin.X, 1e-9)
	assert.InDelta(t, rotated.Y, vMatch.Origin.Y, 1e-9)
}
