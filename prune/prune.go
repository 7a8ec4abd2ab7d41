// Package prune removes submatches: candidates entirely contained within a
// larger candidate's op range, such as a hyphen sigil matching the
// crossbar inside an "A". See spec.md §4.3.
package prune

import (
	"sort"

	"github.com/sigilscan/sigilscan/match"
)

// Prune sorts matches by (End ascending, Start descending) and scans
// right to left, tracking the most recently visited candidate as the
// current "supermatch". A candidate is contained in the supermatch if it
// starts later, or starts at the same place but ends earlier; contained
// candidates are dropped. A candidate that starts further left becomes
// the new supermatch.
func Prune(matches []*match.Match) []*match.Match {
	if len(matches) == 0 {
		return matches
	}

	sorted := append([]*match.Match(nil), matches...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].End != sorted[j].End {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start > sorted[j].Start
	})

	kept := make([]bool, len(sorted))
	supermatch := len(sorted) - 1
	kept[supermatch] = true

	for i := len(sorted) - 1; i >= 0; i-- {
		m, super := sorted[i], sorted[supermatch]

		contained := m.Start > super.Start ||
			(m.Start == super.Start && m.End < super.End)

		if contained {
			kept[i] = false
			continue
		}
		kept[i] = true

		if m.Start < super.Start {
			supermatch = i
		}
	}

	out := make([]*match.Match, 0, len(sorted))
	for i, k := range kept {
		if k {
			out = append(out, sorted[i])
		}
	}
	return out
}
