package align

// MatchType classifies one alignment step, as produced by the external
// aligner.
type MatchType uint8

const (
	// FullIdentity: same residue, same mass.
	FullIdentity MatchType = iota
	// IdentityMassMismatch: same residue, mass shifted by a modification.
	IdentityMassMismatch
	// Mismatch: different residues aligned 1:1.
	Mismatch
	// Isobaric: different residue runs with (near) equal mass.
	Isobaric
	// Rotation: same residues in a different order.
	Rotation
	// Gap: residues in only one of the two sequences.
	Gap
)

// IsIdentity reports whether the step preserves residue identity. Annotations
// only transfer across identity-preserving steps; conserved residues and
// N-glycan sites are meaningless on a changed amino acid.
func (t MatchType) IsIdentity() bool {
	return t == FullIdentity || t == IdentityMassMismatch
}

func (t MatchType) String() string {
	switch t {
	case FullIdentity:
		return "identity"
	case IdentityMassMismatch:
		return "identity-mass-mismatch"
	case Mismatch:
		return "mismatch"
	case Isobaric:
		return "isobaric"
	case Rotation:
		return "rotation"
	case Gap:
		return "gap"
	}
	return "unknown"
}

// Step is one edit operation of an alignment path, consuming A residues of
// the reference and B residues of the query. A and B are never both zero.
type Step struct {
	A    uint8
	B    uint8
	Type MatchType
}

// Columns is the number of report columns the step spans.
func (s Step) Columns() int {
	if s.A > s.B {
		return int(s.A)
	}
	return int(s.B)
}
