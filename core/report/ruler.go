package report

import (
	"strconv"
	"strings"
)

// RulerState is the numbering/label track of a running report. It is a plain
// value owned by a single Render call and threaded through the column walk;
// nothing here is shared.
//
// The line buffer is written back-to-front: every column first appends a
// space, then ticks and labels overwrite previously appended cells so that
// both end right-aligned at the column that triggered them.
type RulerState struct {
	line  []rune
	shift int // columns preceding aligned position 1 (context lead)
	col   int // columns emitted so far, across the whole report
}

func (r *RulerState) advance() {
	r.line = append(r.line, ' ')
	r.col++
}

// aligned is the 1-based aligned position of the current column, zero or
// negative inside a context lead.
func (r *RulerState) aligned() int { return r.col - r.shift }

func (r *RulerState) tickDue() bool {
	n := r.aligned()
	return n > 0 && n%10 == 0
}

// writeTick backfills the aligned position so its last digit lands on the
// current column. The tick is dropped whole if any target cell is already
// occupied; labels always win over numbering.
func (r *RulerState) writeTick() {
	digits := strconv.Itoa(r.aligned())
	start := len(r.line) - len(digits)
	if start < 0 {
		return
	}
	for i := start; i < len(r.line); i++ {
		if r.line[i] != ' ' {
			return
		}
	}
	for i, d := range digits {
		r.line[start+i] = d
	}
}

// writeLabel backfills a region name ending at the current column. avail is
// the number of columns the region occupies on the current line; the name is
// printed in full only when a separating space fits too, degrades to its
// first and last characters at two columns, its last character at one, and is
// dropped below that. A label that overwrites part of an earlier tick also
// blanks the tick's remaining digits so no truncated number is left behind.
func (r *RulerState) writeLabel(name string, avail int) {
	text := name
	if avail < len(name)+1 {
		switch {
		case avail >= 2 && len(name) >= 2:
			text = name[:1] + name[len(name)-1:]
		case avail >= 1:
			text = name[len(name)-1:]
		default:
			return
		}
	}
	start := len(r.line) - len(text)
	if start < 0 {
		text = text[-start:]
		start = 0
	}
	clipped := false
	for i := start; i < start+len(text); i++ {
		if isDigit(r.line[i]) {
			clipped = true
		}
	}
	for i, c := range text {
		r.line[start+i] = c
	}
	if clipped {
		for i := start - 1; i >= 0 && isDigit(r.line[i]); i-- {
			r.line[i] = ' '
		}
	}
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

// flushLine hands the buffered line over and resets it for the next block.
func (r *RulerState) flushLine() string {
	s := strings.TrimRight(string(r.line), " ")
	r.line = r.line[:0]
	return s
}
