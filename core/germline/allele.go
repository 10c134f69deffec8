package germline

import (
	"fmt"

	"igreport-core/align"
)

// Allele is one germline gene allele: a reference sequence with its region
// boundary table and point annotations. It implements AnnotatedReference.
type Allele struct {
	Name    string // IMGT-style name, e.g. "IGHV2-26*01"
	Species string

	seq         align.Sequence
	spans       []Span
	annotations []PlacedAnnotation
}

// NewAllele validates the boundary table and annotation positions against the
// sequence. The spans must be non-empty with positive lengths and must not
// run past the sequence; annotation positions must be ascending and within
// the spanned prefix.
func NewAllele(name, species string, seq align.Sequence, spans []Span, anns []PlacedAnnotation) (*Allele, error) {
	if name == "" {
		return nil, fmt.Errorf("allele needs a name")
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("allele %s: empty sequence", name)
	}
	if len(spans) == 0 {
		return nil, fmt.Errorf("allele %s: empty boundary table", name)
	}
	total := 0
	for i, sp := range spans {
		if sp.Length <= 0 {
			return nil, fmt.Errorf("allele %s: span %d (%s) has non-positive length", name, i, sp.Region)
		}
		if sp.Region == "" {
			return nil, fmt.Errorf("allele %s: span %d has no region name", name, i)
		}
		total += sp.Length
	}
	if total > len(seq) {
		return nil, fmt.Errorf("allele %s: boundary table covers %d residues, sequence has %d", name, total, len(seq))
	}
	last := 0
	for _, a := range anns {
		if a.Position <= last {
			return nil, fmt.Errorf("allele %s: annotation positions not ascending at %d", name, a.Position)
		}
		if a.Position > total {
			return nil, fmt.Errorf("allele %s: annotation position %d outside spanned prefix %d", name, a.Position, total)
		}
		last = a.Position
	}
	return &Allele{Name: name, Species: species, seq: seq, spans: spans, annotations: anns}, nil
}

func (a *Allele) Sequence() align.Sequence { return a.seq }
func (a *Allele) Boundaries() []Span       { return a.spans }

func (a *Allele) RegionAt(pos int) (Region, bool) {
	return RegionAt(a.spans, pos)
}

func (a *Allele) AnnotationsAt(pos int) []Annotation {
	var out []Annotation
	for _, p := range a.annotations {
		if p.Position == pos {
			out = append(out, p.Annotation)
		}
	}
	return out
}

// Annotations exposes the full placed annotation list in ascending order.
func (a *Allele) Annotations() []PlacedAnnotation { return a.annotations }
