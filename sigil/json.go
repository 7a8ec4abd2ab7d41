package sigil

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sigilscan/sigilscan/opstream"
)

// sigilDoc is the on-disk shape of one sigil variant: a list of ops encoded
// as [[dx, dy], opcode] pairs, an origin pair, and an optional angle. See
// spec.md §6.3.
type sigilDoc struct {
	Ops    [][2]json.RawMessage `json:"ops"`
	Origin [2]float64           `json:"origin"`
	Angle  float64              `json:"angle,omitempty"`
}

// MarshalJSON encodes a Sigil in the §6.3 document shape. Char is not
// included: it is carried by the sigil's position in the dictionary, not
// by the sigil object itself.
func (s *Sigil) MarshalJSON() ([]byte, error) {
	ops := make([][2]json.RawMessage, len(s.Ops))
	for i, op := range s.Ops {
		xy, err := json.Marshal([2]float64{op.Dx, op.Dy})
		if err != nil {
			return nil, err
		}
		opcode, err := json.Marshal(string(op.Op))
		if err != nil {
			return nil, err
		}
		ops[i] = [2]json.RawMessage{xy, opcode}
	}

	return json.Marshal(sigilDoc{
		Ops:    ops,
		Origin: [2]float64{s.Origin.X, s.Origin.Y},
		Angle:  s.Angle,
	})
}

// UnmarshalJSON decodes a Sigil from the §6.3 document shape. Origin,
// Scale and Width are recomputed from the decoded ops rather than trusted
// from the file, honoring the invariant that they are derived from Ops
// (spec.md §3.2).
func (s *Sigil) UnmarshalJSON(data []byte) error {
	var doc sigilDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	ops := make([]opstream.Op, len(doc.Ops))
	for i, pair := range doc.Ops {
		var xy [2]float64
		if err := json.Unmarshal(pair[0], &xy); err != nil {
			return fmt.Errorf("sigil: op %d: decoding vector: %w", i, err)
		}
		var opcode string
		if err := json.Unmarshal(pair[1], &opcode); err != nil {
			return fmt.Errorf("sigil: op %d: decoding opcode: %w", i, err)
		}
		if len(opcode) != 1 || (opcode[0] != byte(opstream.Move) && opcode[0] != byte(opstream.Line)) {
			return fmt.Errorf("sigil: op %d: invalid opcode %q", i, opcode)
		}
		ops[i] = opstream.Op{Dx: xy[0], Dy: xy[1], Op: opstream.Opcode(opcode[0])}
	}
	if len(ops) == 0 {
		return fmt.Errorf("sigil: decoded sigil has no ops")
	}

	minX, maxX, minY, _ := boundingBox(ops)

	s.Ops = ops
	s.Origin = Vector{X: minX, Y: minY}
	s.Scale = opstream.Scale(ops)
	s.Width = maxX - minX
	s.Angle = doc.Angle

	return nil
}

// Load reads a sigil dictionary from its persisted JSON form (spec.md
// §6.3): top-level keys are single characters, values are lists of sigil
// variants. The returned dictionary is not rotation-expanded; callers
// recognizing text call ExpandRotations before passing it to the matcher.
func Load(r io.Reader) (Dictionary, error) {
	var raw map[string][]*Sigil
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("sigil: decoding dictionary: %w", err)
	}

	dict := make(Dictionary, len(raw))
	for key, variants := range raw {
		chars := []rune(key)
		if len(chars) != 1 {
			return nil, fmt.Errorf("sigil: dictionary key %q is not a single character", key)
		}
		char := chars[0]
		for _, v := range variants {
			v.Char = char
		}
		dict[char] = variants
	}

	return dict, nil
}

// Save writes d in its persisted JSON form, sort-keyed and indented for
// diffability (spec.md §6.3). encoding/json sorts string map keys on its
// own, which is exactly the ordering guarantee the format calls for.
func (d Dictionary) Save(w io.Writer) error {
	raw := make(map[string][]*Sigil, len(d))
	for char, variants := range d {
		raw[string(char)] = variants
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(raw)
}
