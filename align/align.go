// Package align builds the neighbor graph among scale-verified candidates
// and discards every candidate that is not part of a word-aligned series
// anchored by a match of more than two ops whose character is not
// case-ambiguous: the step that disambiguates a stray hyphen or underscore
// from one that genuinely extends a word. See spec.md §4.5.
package align

import (
	"github.com/sigilscan/sigilscan/common"
	"github.com/sigilscan/sigilscan/match"
	"github.com/sigilscan/sigilscan/sigil"
	"github.com/sigilscan/sigilscan/tolerance"
)

// Filter returns the subset of matches accepted by the alignment check. If
// dict has no "V" entry, the font metrics the filter needs cannot be
// estimated, so matches are returned unchanged, matching spec.md §4.5 and
// §7.
func Filter(dict sigil.Dictionary, matches []*match.Match) []*match.Match {
	vWidth, ok := referenceWidth(dict)
	if !ok {
		common.Log.Notice("align: dictionary has no sigil for 'V', skipping alignment filter")
		return matches
	}

	gap := vWidth * tolerance.GapRatio
	space := gap * tolerance.SpaceToGap

	buildGraph(matches, gap, space)
	markSeries(matches)

	out := make([]*match.Match, 0, len(matches))
	for _, m := range matches {
		if m.PassesAlignmentCheck {
			out = append(out, m)
		}
	}
	return out
}

// referenceWidth returns the width of the dictionary's untrained, upright
// "V" sigil (the first entry registered for 'V'), used to derive the
// inter-character gap and space-character widths. See spec.md §4.5.
func referenceWidth(dict sigil.Dictionary) (float64, bool) {
	variants, ok := dict['V']
	if !ok || len(variants) == 0 {
		return 0, false
	}
	return variants[0].Width, true
}

// buildGraph adds a directed edge m -> m' (and its inverse) for every pair
// where m' lies in m's admissible next-character window, has the same
// angle as m, and has a scale factor within tolerance.ScaleRatioMin/Max of
// m's.
func buildGraph(matches []*match.Match, gap, space float64) {
	var horiz, vert []indexEntry
	for i, m := range matches {
		if m.Sig.Angle == 0 {
			horiz = append(horiz, indexEntry{idx: i, prim: m.Origin.X, sec: m.Origin.Y})
		} else {
			vert = append(vert, indexEntry{idx: i, prim: m.Origin.Y, sec: m.Origin.X})
		}
	}
	horizIdx := newAxisIndex(horiz)
	vertIdx := newAxisIndex(vert)

	for i, m := range matches {
		w := nextWindow(m, gap, space)
		horizontal := m.Sig.Angle == 0

		var hits []indexEntry
		if horizontal {
			hits = horizIdx.query(w.xLo, w.xHi)
		} else {
			hits = vertIdx.query(w.yLo, w.yHi)
		}

		for _, hit := range hits {
			if hit.idx == i {
				continue
			}
			neighbor := matches[hit.idx]

			x, y := neighbor.Origin.X, neighbor.Origin.Y
			if !inWindow(w, x, y, horizontal) {
				continue
			}
			if !scaleRatioOK(neighbor.SF, m.SF) {
				continue
			}

			m.NextMatches = append(m.NextMatches, hit.idx)
			neighbor.PrevMatches = append(neighbor.PrevMatches, i)
		}
	}
}
