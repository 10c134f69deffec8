// internal/output/csv.go
package output

import (
	"fmt"
	"io"
	"strings"
)

func init() {
	Register("csv", writeCSV)
}

// writeCSV emits one row per report. Fields containing commas are quoted;
// embedded double quotes are replaced rather than escaped, keeping rows
// single-line and grep-friendly.
func writeCSV(w io.Writer, results []Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "report_id,alleles,length,identity,similar,gaps,regions,annotations"); err != nil {
			return err
		}
	}
	for _, r := range results {
		row := []string{
			csvField(r.ID),
			csvField(strings.Join(r.Alleles, ">")),
			fmt.Sprint(r.Stats.Length),
			fmt.Sprint(r.Stats.Identical),
			fmt.Sprint(r.Stats.Similar),
			fmt.Sprint(r.Stats.Gaps),
			csvField(r.Regions.String()),
			csvField(r.Annotations.String()),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return err
		}
	}
	return nil
}

func csvField(s string) string {
	s = strings.ReplaceAll(s, `"`, `'`)
	if strings.ContainsAny(s, ",\n") {
		return `"` + s + `"`
	}
	return s
}
