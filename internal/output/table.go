// internal/output/table.go
package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

func init() {
	Register("table", writeTable)
}

// writeTable prints a box-drawing summary table, one row per report.
func writeTable(w io.Writer, results []Result, header bool) error {
	cols := []string{"report", "length", "identity", "similar", "gaps", "regions"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		st := r.Stats
		rows = append(rows, []string{
			r.ID,
			fmt.Sprint(st.Length),
			fmt.Sprintf("%d (%.1f%%)", st.Identical, pct(st.Identical, st.Length)),
			fmt.Sprintf("%d (%.1f%%)", st.Similar, pct(st.Similar, st.Length)),
			fmt.Sprint(st.Gaps),
			r.Regions.String(),
		})
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = utf8.RuneCountInString(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	line := func(l, m, r string) string {
		parts := make([]string, len(widths))
		for i, n := range widths {
			parts[i] = strings.Repeat("─", n+2)
		}
		return l + strings.Join(parts, m) + r
	}
	rowLine := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = " " + cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)) + " "
		}
		return "│" + strings.Join(parts, "│") + "│"
	}

	out := []string{line("┌", "┬", "┐")}
	if header {
		out = append(out, rowLine(cols), line("├", "┼", "┤"))
	}
	for _, row := range rows {
		out = append(out, rowLine(row))
	}
	out = append(out, line("└", "┴", "┘"))

	for _, l := range out {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
