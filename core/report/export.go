package report

import (
	"fmt"
	"strings"
)

// String renders the partition in its textual export form:
// "FR1:38;CDR1:10;...".
func (r RegionLengths) String() string {
	parts := make([]string, len(r))
	for i, e := range r {
		parts[i] = fmt.Sprintf("%s:%d", e.Region, e.Length)
	}
	return strings.Join(parts, ";")
}

// Total is the summed query length of all entries.
func (r RegionLengths) Total() int {
	n := 0
	for _, e := range r {
		n += e.Length
	}
	return n
}

// String renders the annotation list in its textual export form:
// "Conserved:21;Conserved:50;...".
func (a AnnotationPositions) String() string {
	parts := make([]string, len(a))
	for i, e := range a {
		parts[i] = fmt.Sprintf("%s:%d", e.Annotation, e.Position)
	}
	return strings.Join(parts, ";")
}
