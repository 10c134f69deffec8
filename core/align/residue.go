package align

import (
	"fmt"
	"strings"
)

// Residue is one amino acid of a peptide sequence. Modification parsing and
// mass arithmetic happen upstream; the report core only needs to know whether
// any modification is present (it drives underline styling).
type Residue struct {
	AminoAcid byte
	Modified  bool
}

// Sequence is a parsed peptide sequence.
type Sequence []Residue

// ParseSequence reads a peptide string with optional bracketed modification
// groups, e.g. "QVT[+57.02]LR". A bracket group marks the preceding residue
// as modified; a group before the first residue (N-terminal notation) marks
// the first residue instead.
func ParseSequence(s string) (Sequence, error) {
	var seq Sequence
	pendingLead := false
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '[':
			depth++
		case c == ']':
			if depth == 0 {
				return nil, fmt.Errorf("sequence %q: unbalanced ']' at %d", s, i)
			}
			depth--
			if depth == 0 {
				if len(seq) == 0 {
					pendingLead = true
				} else {
					seq[len(seq)-1].Modified = true
				}
			}
		case depth > 0:
			// modification body, opaque here
		case c == '-':
			// terminal separator in N-terminal notation, e.g. "[+42]-PEPTIDE"
		case c >= 'A' && c <= 'Z':
			seq = append(seq, Residue{AminoAcid: c, Modified: pendingLead})
			pendingLead = false
		case c >= 'a' && c <= 'z':
			seq = append(seq, Residue{AminoAcid: c - 'a' + 'A', Modified: pendingLead})
			pendingLead = false
		default:
			return nil, fmt.Errorf("sequence %q: invalid character %q at %d", s, c, i)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("sequence %q: unbalanced '['", s)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("empty sequence")
	}
	return seq, nil
}

// MustSequence is ParseSequence for compiled-in data and tests.
func MustSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// String renders the bare amino acid letters, dropping modification marks.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteByte(r.AminoAcid)
	}
	return b.String()
}

// AnyModified reports whether any residue in the slice carries a modification.
func AnyModified(rs []Residue) bool {
	for _, r := range rs {
		if r.Modified {
			return true
		}
	}
	return false
}
