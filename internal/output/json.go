// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

func init() {
	Register("json", writeJSON)
}

type jsonRegion struct {
	Region string `json:"region"`
	Length int    `json:"length"`
}

type jsonAnnotation struct {
	Annotation string `json:"annotation"`
	Position   int    `json:"position"`
}

type jsonReport struct {
	ID          string           `json:"report_id"`
	Alleles     []string         `json:"alleles,omitempty"`
	Length      int              `json:"length"`
	Identical   int              `json:"identical"`
	Similar     int              `json:"similar"`
	Gaps        int              `json:"gaps"`
	Regions     []jsonRegion     `json:"regions"`
	Annotations []jsonAnnotation `json:"annotations,omitempty"`
}

func writeJSON(w io.Writer, results []Result, _ bool) error {
	out := make([]jsonReport, 0, len(results))
	for _, r := range results {
		jr := jsonReport{
			ID:        r.ID,
			Alleles:   r.Alleles,
			Length:    r.Stats.Length,
			Identical: r.Stats.Identical,
			Similar:   r.Stats.Similar,
			Gaps:      r.Stats.Gaps,
			Regions:   make([]jsonRegion, 0, len(r.Regions)),
		}
		for _, e := range r.Regions {
			jr.Regions = append(jr.Regions, jsonRegion{Region: string(e.Region), Length: e.Length})
		}
		for _, a := range r.Annotations {
			jr.Annotations = append(jr.Annotations, jsonAnnotation{Annotation: string(a.Annotation), Position: a.Position})
		}
		out = append(out, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
