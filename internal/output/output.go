// internal/output/output.go
package output

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"igreport-core/align"
	"igreport-core/report"
)

// Result is the finished report of one query: the projected partition, the
// carried-over annotations, alignment statistics and (for text output) the
// pre-rendered track block.
type Result struct {
	ID          string
	Alleles     []string // reference names in chain order
	Paths       []string // per-segment path notation
	Regions     report.RegionLengths
	Annotations report.AnnotationPositions
	Stats       align.Stats
	Rendered    string
}

// Func writes a full result set in one format.
type Func func(w io.Writer, results []Result, header bool) error

// Writer registry (format → handler); writer files register in init().
var registry = map[string]Func{}

// Register installs a format handler, last registration wins.
func Register(format string, fn Func) { registry[format] = fn }

// Write dispatches to the registered handler.
func Write(format string, w io.Writer, results []Result, header bool) error {
	fn, ok := registry[format]
	if !ok {
		return errors.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, results, header)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
