package align

import "sort"

// axisIndex is a sorted-array-plus-binary-search spatial index over match
// origins, keyed by a single coordinate axis. Per spec.md §9 Design Notes,
// this is the teacher-era approach (one-axis sort + bisect); buildGraph keys
// it on the along-axis coordinate (x for horizontal text, y for vertical)
// and checks the cross axis afterwards. An interval tree or kd-tree would
// satisfy the same contract but is not needed at this scale.
type axisIndex struct {
	entries []indexEntry
}

type indexEntry struct {
	idx  int
	prim float64 // the coordinate this index is sorted by
	sec  float64 // the cross-axis coordinate
}

func newAxisIndex(entries []indexEntry) axisIndex {
	sorted := append([]indexEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].prim < sorted[j].prim })
	return axisIndex{entries: sorted}
}

// query returns every entry whose primary coordinate lies in (lo, hi].
func (a axisIndex) query(lo, hi float64) []indexEntry {
	entries := a.entries
	start := sort.Search(len(entries), func(i int) bool { return entries[i].prim > lo })
	end := sort.Search(len(entries), func(i int) bool { return entries[i].prim > hi })
	return entries[start:end]
}
