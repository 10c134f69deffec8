package germline

import "igreport-core/align"

// AnnotatedReference is the capability the report core needs from a germline
// reference, independent of how a concrete dataset stores its sequences.
// RegionAt takes a 0-indexed position on the full reference sequence;
// AnnotationsAt takes positions in the PlacedAnnotation convention, the
// cumulative index reached after consuming the annotated residue.
type AnnotatedReference interface {
	// Sequence is the full reference residue sequence.
	Sequence() align.Sequence
	// Boundaries is the ordered region boundary table.
	Boundaries() []Span
	// RegionAt resolves one position; the bool marks a region's last position.
	RegionAt(pos int) (Region, bool)
	// AnnotationsAt lists the point annotations on one position.
	AnnotationsAt(pos int) []Annotation
}
