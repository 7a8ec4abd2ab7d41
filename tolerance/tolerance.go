// Package tolerance collects the empirical thresholds the sigil recognition
// engine is tuned against. They are compiled constants, not runtime flags:
// they are tied to a specific schematic font, and changing one of them
// changes observable recognition output.
package tolerance

const (
	// DirectionCosine is the minimum cosine similarity between a sigil
	// stroke's direction and the corresponding document stroke's direction
	// for the two to be considered pointing the same way.
	DirectionCosine = 0.93

	// ZeroLength is the magnitude below which a stroke is treated as
	// degenerate (a repositioning rather than a real pen movement).
	ZeroLength = 0.01

	// StrokeLength is the maximum absolute deviation, in document units,
	// between a stroke's observed length and its scale-predicted length.
	StrokeLength = 0.3

	// ScaleRatioMin and ScaleRatioMax bound how far two neighboring
	// matches' scale factors may differ and still be considered part of
	// the same word.
	ScaleRatioMin = 0.9
	ScaleRatioMax = 1.1

	// YAlignment is the maximum difference in the cross-axis coordinate
	// (y for horizontal text, x for vertical text) for two matches to be
	// considered on the same line.
	YAlignment = 0.7

	// GapRatio is the fraction of the widest character's width ("V") used
	// to estimate the gap between adjacent characters.
	GapRatio = 1.0 / 2.58

	// SpaceToGap is the multiplier converting a character gap into the
	// width of a space character.
	SpaceToGap = 2.0

	// Epsilon is the minimum forward separation enforced between a
	// match's end and the start of its admissible neighbor window, so a
	// character never appears as its own neighbor.
	Epsilon = 0.001
)

// CaseAmbiguous holds the characters excluded from anchoring a series in the
// alignment filter because their upper- and lower-case sigils are easily
// confused, and so give false confidence that a series is genuine.
var CaseAmbiguous = map[rune]bool{
	'v': true, 'V': true,
	'w': true, 'W': true,
	'x': true, 'X': true,
	'z': true, 'Z': true,
}
