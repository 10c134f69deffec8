package germline

// Annotation is a point label on a reference sequence.
type Annotation string

const (
	// Conserved marks a structurally conserved residue (cysteine,
	// tryptophan, phenylalanine/tryptophan of the J motif).
	Conserved Annotation = "Conserved"
	// NGlycan marks an N-linked glycosylation site.
	NGlycan Annotation = "NGlycan"
)

// PlacedAnnotation attaches an annotation to one reference position. The
// position follows the dataset convention exercised by the projector: it is
// the cumulative reference index reached after consuming the annotated
// residue.
type PlacedAnnotation struct {
	Annotation Annotation
	Position   int
}
