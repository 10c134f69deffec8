// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"
)

func init() {
	Register("text", writeText)
}

// writeText prints per-report blocks: a title and statistics line (unless
// headers are suppressed), the rendered tracks, then the projected region and
// annotation summaries.
func writeText(w io.Writer, results []Result, header bool) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if header {
			if _, err := fmt.Fprintf(w, ">%s  %s\n", r.ID, strings.Join(r.Alleles, " > ")); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, statsLine(r)); err != nil {
				return err
			}
			if len(r.Paths) > 0 {
				if _, err := fmt.Fprintf(w, "path: %s\n", strings.Join(r.Paths, " > ")); err != nil {
					return err
				}
			}
		}
		if r.Rendered != "" {
			if _, err := io.WriteString(w, r.Rendered); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "regions: %s\n", r.Regions.String()); err != nil {
			return err
		}
		if len(r.Annotations) > 0 {
			if _, err := fmt.Fprintf(w, "annotations: %s\n", r.Annotations.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

func statsLine(r Result) string {
	st := r.Stats
	return fmt.Sprintf("identity: %d/%d (%.1f%%)  similar: %d (%.1f%%)  gaps: %d",
		st.Identical, st.Length, pct(st.Identical, st.Length),
		st.Similar, pct(st.Similar, st.Length), st.Gaps)
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
