package report

import (
	"fmt"
	"io"
	"strings"

	"igreport-core/align"
	"igreport-core/germline"
)

// DefaultLineWidth is the wrap width used when the caller sets none.
const DefaultLineWidth = 50

// RenderOptions control the text rendering of a chain.
type RenderOptions struct {
	LineWidth     int
	ShowContext   bool // draw the unaligned flanks, dimmed
	OnlyReference bool // suppress the query and marker tracks
	Styles        *Styles
}

// Render writes the wrapped multi-track report for a chain: a ruler track
// with position ticks and region labels, the reference track, the query track
// and a marker track flagging mismatches, gaps and isobaric/rotated spans.
// Tracks wrap together at LineWidth; a track line is only written when it has
// non-whitespace content.
func Render(w io.Writer, chain Chain, opts RenderOptions) error {
	if err := chain.Validate(); err != nil {
		return err
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = DefaultLineWidth
	}
	st := opts.Styles
	if st == nil {
		st = DefaultStyles()
	}

	// The projection already applies the identity gating, so the renderer can
	// color annotated query positions straight off its output.
	_, placed := Project(chain)
	annAt := make(map[int]germline.Annotation, len(placed))
	for _, a := range placed {
		annAt[a.Position] = a.Annotation
	}

	r := &renderer{w: w, opts: opts, st: st, annAt: annAt}
	for _, s := range chain {
		if s.Alignment.StartB != 0 {
			r.queue = append(r.queue, boundary{length: s.Alignment.StartA})
		}
		for _, sp := range s.Ref.Boundaries() {
			r.queue = append(r.queue, boundary{region: sp.Region, named: true, length: sp.Length})
		}
	}
	for i, j := 0, len(r.queue)-1; i < j; i, j = i+1, j-1 {
		r.queue[i], r.queue[j] = r.queue[j], r.queue[i]
	}

	// Left context only exists when the walk itself does not cover the lead:
	// a late query start is rendered as part of the walk instead.
	first := chain[0].Alignment
	if opts.ShowContext && first.StartB == 0 && first.StartA > 0 {
		r.ruler.shift = first.StartA
		r.contextColumns(first.SeqA[:first.StartA], nil, true)
	}

	for i := range chain {
		s := chain[i]
		la, lb := s.Alignment.StartA, s.Alignment.StartB
		if s.Alignment.StartB != 0 {
			la, lb = 0, 0
			r.stepColumns(s, align.Step{
				A:    clampStep(s.Alignment.StartA),
				B:    clampStep(s.Alignment.StartB),
				Type: align.FullIdentity,
			}, &la, &lb)
		}
		for _, stp := range s.Alignment.Path {
			r.stepColumns(s, stp, &la, &lb)
		}
	}
	r.finishRegions()

	if opts.ShowContext {
		last := chain[len(chain)-1].Alignment
		r.contextColumns(last.SeqA[last.EndA():], last.SeqB[last.EndB():], false)
	}
	if len(r.ruler.line) > 0 {
		r.flushBlock()
	}
	return r.err
}

// ChainStats sums the per-segment alignment statistics for the report header.
func ChainStats(chain Chain) align.Stats {
	var st align.Stats
	for _, s := range chain {
		st = st.Add(align.ComputeStats(s.Alignment))
	}
	return st
}

type renderer struct {
	w    io.Writer
	opts RenderOptions
	st   *Styles
	err  error

	ruler          RulerState
	ref, qry, mark trackBuf

	queue       []boundary
	lenA        int // unattributed reference length since the last boundary
	lastRegion  germline.Region
	lastNamed   bool
	regionStart int // global column where the open region began
	gcol        int // global index of the column being emitted

	annAt   map[int]germline.Annotation
	globalB int // query residues consumed so far
}

type trackBuf struct {
	cells []string
	ink   bool
}

func (t *trackBuf) put(cell string, visible bool) {
	t.cells = append(t.cells, cell)
	if visible {
		t.ink = true
	}
}

func (t *trackBuf) flush() (string, bool) {
	s := strings.Join(t.cells, "")
	ok := t.ink
	t.cells = t.cells[:0]
	t.ink = false
	return s, ok
}

// stepColumns renders one path step, one report column at a time. A column
// shows the residues the step consumes; the shorter side of an unequal span
// is padded with '·', and a side the step skips entirely shows '-'.
func (r *renderer) stepColumns(sg Segment, s align.Step, la, lb *int) {
	a, b := int(s.A), int(s.B)
	n := s.Columns()
	refRes := sg.Alignment.SeqA[*la : *la+a]
	qryRes := sg.Alignment.SeqB[*lb : *lb+b]
	*la += a
	*lb += b

	base := r.st.stepStyle(s.Type)
	refStyle := base
	if align.AnyModified(refRes) {
		refStyle = r.st.Modified
	}
	qryStyle := base
	if align.AnyModified(qryRes) {
		qryStyle = r.st.Modified
	}

	for i := 0; i < n; i++ {
		r.ruler.advance()
		r.gcol = r.ruler.col - 1

		bg := r.st.RegionBG[r.currentRegion()]

		refCh := fillChar(a)
		if i < a {
			refCh = rune(refRes[i].AminoAcid)
		}
		qryCh := fillChar(b)
		if i < b {
			qryCh = rune(qryRes[i].AminoAcid)
		}

		qs := qryStyle
		if i < b {
			if ann, ok := r.annAt[r.globalB]; ok {
				if as, ok := r.st.AnnotationFG[ann]; ok {
					qs = as
				}
			}
			r.globalB++
		}

		mk := markerFor(s.Type, i, n)

		r.ref.put(bg.merge(refStyle).paint(string(refCh)), refCh != ' ')
		if !r.opts.OnlyReference {
			r.qry.put(bg.merge(qs).paint(string(qryCh)), qryCh != ' ')
			r.mark.put(base.paint(string(mk)), mk != ' ')
		}

		if i < a {
			r.lenA++
		}
		r.fireBoundaries()
		if r.ruler.tickDue() {
			r.ruler.writeTick()
		}

		if len(r.ruler.line) == r.opts.LineWidth {
			r.flushBlock()
		}
	}
}

// contextColumns renders an unaligned flank, dimmed and without markers. The
// left flank is right-aligned against the first report column, the right
// flank left-aligned after the last.
func (r *renderer) contextColumns(refSide, qrySide []align.Residue, alignRight bool) {
	n := len(refSide)
	if len(qrySide) > n {
		n = len(qrySide)
	}
	for i := 0; i < n; i++ {
		r.ruler.advance()
		r.gcol = r.ruler.col - 1

		refCh := contextCell(refSide, i, n, alignRight)
		qryCh := contextCell(qrySide, i, n, alignRight)
		r.ref.put(r.st.Context.paint(string(refCh)), refCh != ' ')
		if !r.opts.OnlyReference {
			r.qry.put(r.st.Context.paint(string(qryCh)), qryCh != ' ')
			r.mark.put(" ", false)
		}

		if len(r.ruler.line) == r.opts.LineWidth {
			r.flushBlock()
		}
	}
}

func contextCell(side []align.Residue, i, width int, alignRight bool) rune {
	j := i
	if alignRight {
		j = i - (width - len(side))
	}
	if j < 0 || j >= len(side) {
		return ' '
	}
	return rune(side[j].AminoAcid)
}

// currentRegion resolves the region shading of the column being emitted, the
// same way the projection names its entries.
func (r *renderer) currentRegion() germline.Region {
	if len(r.queue) > 0 {
		if b := r.queue[len(r.queue)-1]; b.named {
			return b.region
		}
	}
	if r.lastNamed {
		return r.lastRegion
	}
	return UnknownRegion
}

// fireBoundaries pops every boundary the consumed reference length has
// reached. A label is written only when the region actually concludes here;
// when the next boundary resolves to the same name the region continues
// across it and the label is deferred to the true end.
func (r *renderer) fireBoundaries() {
	for len(r.queue) > 0 && r.queue[len(r.queue)-1].length <= r.lenA {
		b := r.queue[len(r.queue)-1]
		name := resolveName(b, r.lastRegion, r.lastNamed)
		r.queue = r.queue[:len(r.queue)-1]
		r.lenA -= b.length

		merge := false
		if len(r.queue) > 0 {
			merge = resolveName(r.queue[len(r.queue)-1], b.region, b.named) == name
		}
		r.lastRegion, r.lastNamed = b.region, b.named
		if merge {
			continue
		}
		r.ruler.writeLabel(string(name), r.labelAvail())
		r.regionStart = r.gcol + 1
	}
}

// finishRegions labels a region left open when the paths end short of its
// boundary.
func (r *renderer) finishRegions() {
	if len(r.queue) == 0 || r.gcol < r.regionStart {
		return
	}
	b := r.queue[len(r.queue)-1]
	r.ruler.writeLabel(string(resolveName(b, r.lastRegion, r.lastNamed)), r.labelAvail())
}

// labelAvail is the span of the concluding region on the current line.
func (r *renderer) labelAvail() int {
	lineStart := r.gcol - (len(r.ruler.line) - 1)
	from := r.regionStart
	if lineStart > from {
		from = lineStart
	}
	return r.gcol - from + 1
}

func resolveName(b boundary, lastRegion germline.Region, lastNamed bool) germline.Region {
	switch {
	case b.named:
		return b.region
	case lastNamed:
		return lastRegion
	}
	return UnknownRegion
}

func fillChar(span int) rune {
	if span == 0 {
		return '-'
	}
	return '·'
}

func markerFor(t align.MatchType, i, n int) rune {
	switch t {
	case align.Mismatch:
		return '⨯'
	case align.Gap:
		return '+'
	case align.Isobaric, align.Rotation:
		switch {
		case n == 1:
			return '─'
		case i == 0:
			return '╶'
		case i == n-1:
			return '╴'
		}
		return '─'
	}
	return ' '
}

func (r *renderer) flushBlock() {
	if line := r.ruler.flushLine(); line != "" {
		r.println(r.st.Ruler.paint(line))
	}
	if line, ok := r.ref.flush(); ok {
		r.println(line)
	}
	if !r.opts.OnlyReference {
		if line, ok := r.qry.flush(); ok {
			r.println(line)
		}
		if line, ok := r.mark.flush(); ok {
			r.println(line)
		}
	}
}

func (r *renderer) println(s string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.w, s)
}
