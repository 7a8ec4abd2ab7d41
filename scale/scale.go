// Package scale computes and verifies each candidate match's scale factor:
// the ratio between the document's drawing of a glyph and the sigil
// template's own size. See spec.md §4.4.
package scale

import (
	"math"

	"github.com/sigilscan/sigilscan/match"
	"github.com/sigilscan/sigilscan/opstream"
	"github.com/sigilscan/sigilscan/tolerance"
)

// Verify computes a scale factor for each candidate and keeps only those
// whose every stroke length is consistent with that factor. absOps is the
// normalized absolute op stream (the one Diff was called on); diffOps is
// its differential form, the stream the matcher scanned.
//
// For a kept match, Origin and SF are populated.
func Verify(matches []*match.Match, absOps []opstream.AbsOp, diffOps []opstream.Op) []*match.Match {
	out := make([]*match.Match, 0, len(matches))

	for _, m := range matches {
		docOps := diffOps[m.Start:m.End]
		sf := opstream.Scale(docOps) / m.Sig.Scale

		if !stablePerStroke(docOps, m.Sig.Ops, sf) {
			continue
		}

		p0 := absOps[m.Start]
		m.Origin = match.Origin{
			X: p0.X + m.Sig.Origin.X*sf,
			Y: p0.Y + m.Sig.Origin.Y*sf,
		}
		m.SF = sf

		out = append(out, m)
	}

	return out
}

// stablePerStroke reports whether every stroke's observed length is
// within tolerance.StrokeLength of its scale-predicted length. A pair of
// degenerate strokes (both near zero length, already guaranteed by the
// matcher's direction check) is skipped rather than measured.
func stablePerStroke(docOps, sigOps []opstream.Op, sf float64) bool {
	for i, sigOp := range sigOps {
		docOp := docOps[i]

		sigLen := sigOp.Magnitude()
		docLen := docOp.Magnitude()

		if sigLen < tolerance.ZeroLength && docLen < tolerance.ZeroLength {
			continue
		}

		if math.Abs(docLen-sigLen*sf) > tolerance.StrokeLength {
			return false
		}
	}
	return true
}
