package sigil

// Dictionary maps a character to its non-empty list of alternate sigil
// variants. Multiple variants let the same letter be trained with more
// than one stroke ordering. See spec.md §3.3.
type Dictionary map[rune][]*Sigil

// RotationAngle is the fixed angle every sigil is augmented with at load
// time, to support recognizing vertically set (rotated) text.
const RotationAngle = -90

// ExpandRotations returns a copy of d with a RotationAngle-rotated twin of
// every sigil added alongside the original, so the shape matcher can
// recognize both horizontal and vertically set text without the caller
// training separate rotated glyphs. See spec.md §4.7 and §4.8 step 3.
func (d Dictionary) ExpandRotations() Dictionary {
	out := make(Dictionary, len(d))
	for char, variants := range d {
		expanded := make([]*Sigil, 0, len(variants)*2)
		for _, v := range variants {
			expanded = append(expanded, v, v.Rotated(RotationAngle))
		}
		out[char] = expanded
	}
	return out
}

// All returns every sigil variant in the dictionary, across every
// character, in an unspecified order. The shape matcher scans all of them
// for each input stream.
func (d Dictionary) All() []*Sigil {
	out := make([]*Sigil, 0, len(d)*2)
	for _, variants := range d {
		out = append(out, variants...)
	}
	return out
}
