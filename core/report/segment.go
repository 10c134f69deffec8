// Package report projects germline regions and annotations through a
// computed alignment into query coordinates, and renders the result as a
// line-wrapped multi-track text report.
package report

import (
	"fmt"

	"igreport-core/align"
	"igreport-core/germline"
)

// Segment pairs one annotated reference with its alignment against the
// query. A report is produced from an ordered chain of segments (e.g. V,
// then J, then C) sharing one continuous query coordinate space.
type Segment struct {
	Ref       germline.AnnotatedReference
	Alignment align.Alignment
}

// Chain is an ordered segment list. Consecutive segments' query spans are
// contiguous and non-overlapping; a segment whose alignment starts past the
// previous span's end models the gap as an unaligned lead (StartB != 0).
type Chain []Segment

// Validate checks the chain invariants. Violations are producer bugs, so the
// caller normally treats a non-nil error as fatal.
func (c Chain) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("empty segment chain")
	}
	for i, s := range c {
		if s.Ref == nil {
			return fmt.Errorf("segment %d: nil reference", i)
		}
		if len(s.Alignment.Path) == 0 {
			return fmt.Errorf("segment %d: empty alignment", i)
		}
	}
	return nil
}
