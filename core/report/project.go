package report

import (
	"igreport-core/align"
	"igreport-core/germline"
)

// RegionLength is one entry of the projected region partition: a region name
// and the number of query residues it covers.
type RegionLength struct {
	Region germline.Region
	Length int
}

// RegionLengths is the ordered region partition of the query.
type RegionLengths []RegionLength

// AnnotationPosition carries one reference annotation over to the query
// position it lands on.
type AnnotationPosition struct {
	Annotation germline.Annotation
	Position   int
}

// AnnotationPositions is ordered by ascending query position.
type AnnotationPositions []AnnotationPosition

// UnknownRegion names query residues that fall before any named boundary.
const UnknownRegion germline.Region = "Unknown"

// boundary is one pending entry of the combined boundary queue. A nil-named
// entry is the synthesized lead of a segment whose alignment does not start
// at the previous query position; it accounts for reference length without
// claiming a name of its own.
type boundary struct {
	region germline.Region
	named  bool
	length int
}

// taggedStep is one walk unit: a path step plus the index of the segment
// that owns it.
type taggedStep struct {
	seg  int
	step align.Step
}

// Project turns a segment chain into the query-space region partition and
// annotation list. The walk is O(total aligned length); inputs are read
// only.
func Project(chain Chain) (RegionLengths, AnnotationPositions) {
	if err := chain.Validate(); err != nil {
		panic(err)
	}

	// Combined boundary queue, reversed once so consumption pops the tail.
	var queue []boundary
	for _, s := range chain {
		if s.Alignment.StartB != 0 {
			queue = append(queue, boundary{length: s.Alignment.StartA})
		}
		for _, sp := range s.Ref.Boundaries() {
			queue = append(queue, boundary{region: sp.Region, named: true, length: sp.Length})
		}
	}
	for i, j := 0, len(queue)-1; i < j; i, j = i+1, j-1 {
		queue[i], queue[j] = queue[j], queue[i]
	}

	var regions RegionLengths
	var annotations AnnotationPositions

	indexA, indexB := 0, 0 // global cumulative reference/query positions
	lenA, lenB := 0, 0     // unattributed lengths since the last boundary
	offset := 0            // indexA when the active segment began
	lastSeg := -1
	var lastRegion germline.Region
	lastNamed := false

	emit := func(b boundary, length int) {
		name := UnknownRegion
		switch {
		case b.named:
			name = b.region
		case lastNamed:
			name = lastRegion
		}
		if n := len(regions); n > 0 && regions[n-1].Region == name {
			regions[n-1].Length += length
		} else {
			regions = append(regions, RegionLength{Region: name, Length: length})
		}
		lastRegion, lastNamed = b.region, b.named
	}

	walk(chain, func(ts taggedStep) {
		if ts.seg != lastSeg {
			lastSeg = ts.seg
			offset = indexA
		}
		stepA, stepB := int(ts.step.A), int(ts.step.B)
		indexA += stepA
		indexB += stepB
		lenA += stepA
		lenB += stepB

		for len(queue) > 0 && queue[len(queue)-1].length <= lenA {
			b := queue[len(queue)-1]
			emit(b, lenB)
			queue = queue[:len(queue)-1]
			lenA -= b.length
			lenB = 0
		}

		// Annotations only transfer when residue identity is preserved;
		// gapped and mismatched steps never propagate them.
		if ts.step.Type.IsIdentity() {
			local := indexA - offset + stepA
			for _, ann := range annotationsOf(chain[ts.seg].Ref) {
				if ann.Position == local {
					annotations = append(annotations, AnnotationPosition{
						Annotation: ann.Annotation,
						Position:   indexB + stepB,
					})
				}
			}
		}
	})

	if len(queue) > 0 {
		emit(queue[len(queue)-1], lenB)
	}
	return regions, annotations
}

// walk feeds every step of the chain, in order, to fn — prefixing each
// segment whose query span starts late with a synthetic identity step that
// covers the unaligned lead.
func walk(chain Chain, fn func(taggedStep)) {
	for i, s := range chain {
		if s.Alignment.StartB != 0 {
			fn(taggedStep{seg: i, step: align.Step{
				A:    clampStep(s.Alignment.StartA),
				B:    clampStep(s.Alignment.StartB),
				Type: align.FullIdentity,
			}})
		}
		for _, st := range s.Alignment.Path {
			fn(taggedStep{seg: i, step: st})
		}
	}
}

func clampStep(n int) uint8 {
	if n > 255 {
		panic("segment lead exceeds step range")
	}
	return uint8(n)
}

func annotationsOf(ref germline.AnnotatedReference) []germline.PlacedAnnotation {
	if a, ok := ref.(*germline.Allele); ok {
		return a.Annotations()
	}
	// Generic fallback over the interface: collect per-position annotations
	// across the spanned prefix.
	var out []germline.PlacedAnnotation
	total := 0
	for _, sp := range ref.Boundaries() {
		total += sp.Length
	}
	for pos := 0; pos <= total; pos++ {
		for _, a := range ref.AnnotationsAt(pos) {
			out = append(out, germline.PlacedAnnotation{Annotation: a, Position: pos})
		}
	}
	return out
}
