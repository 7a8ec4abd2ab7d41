package ambiguity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigilscan/sigilscan/match"
	"github.com/sigilscan/sigilscan/opstream"
	"github.com/sigilscan/sigilscan/sigil"
)

func sig(char rune, n int) *sigil.Sigil {
	ops := make([]opstream.Op, n)
	for i := range ops {
		ops[i] = opstream.Op{Dx: 1, Dy: 0, Op: opstream.Line}
	}
	return sigil.New(ops, char)
}

func TestCountTalliesOverlappingGroups(t *testing.T) {
	v := match.New(sig('v', 2), 0)
	w := match.New(sig('w', 2), 0) // same start, same length as v: ambiguous
	x := match.New(sig('x', 3), 5) // distinct group, lone member: not ambiguous

	tally := Count([]*match.Match{v, w, x})

	assert.Equal(t, 1, tally["v,w"])
	assert.Len(t, tally, 1)
}

func TestCountIgnoresSingletonGroups(t *testing.T) {
	a := match.New(sig('a', 3), 0)
	b := match.New(sig('b', 3), 10)

	tally := Count([]*match.Match{a, b})

	assert.Empty(t, tally)
}

func TestCountSortsCharactersWithinTuple(t *testing.T) {
	z := match.New(sig('z', 1), 2)
	a := match.New(sig('a', 1), 2)

	tally := Count([]*match.Match{z, a})

	assert.Equal(t, 1, tally["a,z"])
}
