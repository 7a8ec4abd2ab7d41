package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigilscan/sigilscan/match"
	"github.com/sigilscan/sigilscan/opstream"
	"github.com/sigilscan/sigilscan/sigil"
)

func TestVerifyAcceptsConsistentScale(t *testing.T) {
	sig := sigil.New([]opstream.Op{
		{Dx: 1, Dy: 0, Op: opstream.Line},
		{Dx: 0, Dy: 1, Op: opstream.Line},
	}, 'L')

	absOps := []opstream.AbsOp{
		{X: 10, Y: 10, Op: opstream.Move},
		{X: 12, Y: 10, Op: opstream.Line},
		{X: 12, Y: 12, Op: opstream.Line},
	}
	diffOps := opstream.Diff(absOps)

	m := match.New(sig, 0)

	out := Verify([]*match.Match{m}, absOps, diffOps)

	require.Len(t, out, 1)
	assert.InDelta(t, 2.0, out[0].SF, 1e-9)
	assert.InDelta(t, 10, out[0].Origin.X, 1e-9)
	assert.InDelta(t, 10, out[0].Origin.Y, 1e-9)
}

func TestVerifyRejectsInconsistentStrokeLength(t *testing.T) {
	sig := sigil.New([]opstream.Op{
		{Dx: 1, Dy: 0, Op: opstream.Line},
		{Dx: 0, Dy: 1, Op: opstream.Line},
	}, 'L')

	// Second stroke twice as long relative to the first as the sigil
	// template: inconsistent scale (spec.md E5).
	absOps := []opstream.AbsOp{
		{X: 0, Y: 0, Op: opstream.Move},
		{X: 1, Y: 0, Op: opstream.Line},
		{X: 1, Y: 2, Op: opstream.Line},
	}
	diffOps := opstream.Diff(absOps)

	m := match.New(sig, 0)
	out := Verify([]*match.Match{m}, absOps, diffOps)

	assert.Empty(t, out)
}

func TestVerifyRecoversOriginAtNonZeroStart(t *testing.T) {
	sig := sigil.New([]opstream.Op{{Dx: 1, Dy: 0, Op: opstream.Line}}, '-')

	absOps := []opstream.AbsOp{
		{X: 0, Y: 0, Op: opstream.Move},
		{X: 0, Y: 5, Op: opstream.Move},
		{X: 3, Y: 5, Op: opstream.Line},
	}
	diffOps := opstream.Diff(absOps)

	m := match.New(sig, 1) // the hyphen starts at the second differential op

	out := Verify([]*match.Match{m}, absOps, diffOps)

	require.Len(t, out, 1)
	assert.InDelta(t, 0, out[0].Origin.X, 1e-9)
	assert.InDelta(t, 5, out[0].Origin.Y, 1e-9)
	assert.InDelta(t, 3, out[0].SF, 1e-9)
}
