package align

import (
	"github.com/sigilscan/sigilscan/match"
	"github.com/sigilscan/sigilscan/tolerance"
)

// window is the admissible rectangle, in absolute document coordinates, for
// the start of the character that follows m in its series. See spec.md
// §4.5.
type window struct {
	xLo, xHi float64
	yLo, yHi float64
}

// nextWindow computes m's admissible window for its next character, using
// gap and space (both derived from the dictionary's "V" sigil width) and
// m's own scale factor and sigil width.
func nextWindow(m *match.Match, gap, space float64) window {
	extent := m.SF * (m.Sig.Width + 3*gap + space)
	near := m.SF*m.Sig.Width + tolerance.Epsilon

	if m.Sig.Angle == 0 {
		return window{
			xLo: m.Origin.X + near,
			xHi: m.Origin.X + extent,
			yLo: m.Origin.Y - tolerance.YAlignment,
			yHi: m.Origin.Y + tolerance.YAlignment,
		}
	}

	// Vertical (angle == -90): the roles of x and y swap.
	return window{
		xLo: m.Origin.X - tolerance.YAlignment,
		xHi: m.Origin.X + tolerance.YAlignment,
		yLo: m.Origin.Y + near,
		yHi: m.Origin.Y + extent,
	}
}

// inWindow reports whether candidate (x, y) falls inside w, with the
// along-axis bound half-open (excludes the near edge, includes the far
// edge) per spec.md §4.5's "(lo, hi]" ranges, and the cross-axis bound
// inclusive on both ends.
func inWindow(w window, x, y float64, horizontal bool) bool {
	if horizontal {
		return x > w.xLo && x <= w.xHi && y >= w.yLo && y <= w.yHi
	}
	return y > w.yLo && y <= w.yHi && x >= w.xLo && x <= w.xHi
}

func scaleRatioOK(a, b float64) bool {
	if b == 0 {
		return false
	}
	r := a / b
	return r >= tolerance.ScaleRatioMin && r <= tolerance.ScaleRatioMax
}
