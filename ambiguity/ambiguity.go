// Package ambiguity tallies, for diagnostic purposes only, the groups of
// two or more accepted matches that cover the same op-stream slice (same
// start, same op count), whether or not their characters differ. See
// spec.md §4.6.
package ambiguity

import (
	"fmt"
	"sort"

	"github.com/sigilscan/sigilscan/match"
)

// Tally maps a sorted, comma-joined tuple of characters to the number of
// op-stream slices that matched every character in that tuple.
type Tally map[string]int

// Count groups matches by (Start, len(Sig.Ops)) and returns a tally of
// every group with two or more members. It does not affect which matches
// a caller treats as output.
func Count(matches []*match.Match) Tally {
	type key struct {
		start int
		n     int
	}
	groups := make(map[key][]rune)
	for _, m := range matches {
		k := key{start: m.Start, n: len(m.Sig.Ops)}
		groups[k] = append(groups[k], m.Sig.Char)
	}

	tally := make(Tally)
	for _, chars := range groups {
		if len(chars) < 2 {
			continue
		}
		sorted := append([]rune(nil), chars...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		tally[tupleKey(sorted)]++
	}
	return tally
}

func tupleKey(chars []rune) string {
	s := ""
	for i, c := range chars {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%c", c)
	}
	return s
}
