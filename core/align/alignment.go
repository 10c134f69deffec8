package align

import "fmt"

// Alignment is an immutable view over a previously computed alignment between
// a reference sequence (A) and a query sequence (B). It borrows both
// sequences and owns neither; the path starts at StartA/StartB.
type Alignment struct {
	SeqA   Sequence
	SeqB   Sequence
	StartA int
	StartB int
	Path   Path
}

// New validates the spans against the borrowed sequences. Out-of-range spans
// and zero-length steps are programming errors in the producing aligner, so
// they surface here and nowhere downstream.
func New(seqA, seqB Sequence, startA, startB int, path Path) (Alignment, error) {
	if startA < 0 || startB < 0 {
		return Alignment{}, fmt.Errorf("negative alignment start %d/%d", startA, startB)
	}
	if len(path) == 0 {
		return Alignment{}, fmt.Errorf("empty alignment path")
	}
	for i, s := range path {
		if s.A == 0 && s.B == 0 {
			return Alignment{}, fmt.Errorf("zero-length step at %d", i)
		}
	}
	if end := startA + path.LenA(); end > len(seqA) {
		return Alignment{}, fmt.Errorf("path spans reference %d..%d beyond length %d", startA, end, len(seqA))
	}
	if end := startB + path.LenB(); end > len(seqB) {
		return Alignment{}, fmt.Errorf("path spans query %d..%d beyond length %d", startB, end, len(seqB))
	}
	return Alignment{SeqA: seqA, SeqB: seqB, StartA: startA, StartB: startB, Path: path}, nil
}

// LenA is the aligned reference span.
func (a Alignment) LenA() int { return a.Path.LenA() }

// LenB is the aligned query span.
func (a Alignment) LenB() int { return a.Path.LenB() }

// EndA is the reference position one past the aligned span.
func (a Alignment) EndA() int { return a.StartA + a.LenA() }

// EndB is the query position one past the aligned span.
func (a Alignment) EndB() int { return a.StartB + a.LenB() }
