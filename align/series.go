package align

import (
	"github.com/sigilscan/sigilscan/match"
	"github.com/sigilscan/sigilscan/tolerance"
)

// markSeries walks the series headed by every match with no incoming
// edges, and marks every member of a valid series as accepted. See
// spec.md §4.5.
func markSeries(matches []*match.Match) {
	for i, m := range matches {
		if len(m.PrevMatches) != 0 {
			continue
		}

		series := walkSeries(matches, i)
		if seriesIsValid(matches, series) {
			for _, idx := range series {
				matches[idx].PassesAlignmentCheck = true
			}
		}
	}
}

// walkSeries follows the "closest next" edge from head until a match with
// no outgoing edges is reached. The graph is acyclic by construction
// (edges only ever point toward increasing coordinates), so the walk is
// bounded by len(matches) and needs no visited-set.
func walkSeries(matches []*match.Match, head int) []int {
	series := []int{head}
	current := head

	for step := 0; step < len(matches); step++ {
		next, ok := closestNext(matches, current)
		if !ok {
			break
		}
		series = append(series, next)
		current = next
	}

	return series
}

// closestNext returns the neighbor of matches[i] with the smallest
// along-axis coordinate: x for horizontal sigils, y for vertical ones.
func closestNext(matches []*match.Match, i int) (int, bool) {
	m := matches[i]
	if len(m.NextMatches) == 0 {
		return 0, false
	}

	horizontal := m.Sig.Angle == 0
	best := m.NextMatches[0]
	bestCoord := coordOf(matches[best], horizontal)

	for _, idx := range m.NextMatches[1:] {
		c := coordOf(matches[idx], horizontal)
		if c < bestCoord {
			best, bestCoord = idx, c
		}
	}

	return best, true
}

func coordOf(m *match.Match, horizontal bool) float64 {
	if horizontal {
		return m.Origin.X
	}
	return m.Origin.Y
}

// seriesIsValid reports whether at least one member of the series has more
// than two strokes and is not a case-ambiguous letter (spec.md §4.5): the
// anchor that gives the single-stroke members in the series (hyphens,
// underscores, slashes, bars) their license to be recognized at all.
func seriesIsValid(matches []*match.Match, series []int) bool {
	for _, idx := range series {
		m := matches[idx]
		if len(m.Sig.Ops) > 2 && !tolerance.CaseAmbiguous[m.Sig.Char] {
			return true
		}
	}
	return false
}
