// internal/alignfile/reader.go
package alignfile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"igreport-core/align"
	"igreport-core/germline"
	"igreport-core/report"
)

// Record is one parsed line of an alignment TSV. Consecutive lines sharing a
// ReportID form one segment chain.
//
// Columns: report_id, reference, regions, annotations, query, start_a,
// start_b, path. The reference column is either "@Allele" (looked up in the
// germline dataset) or an inline peptide sequence, in which case the regions
// and annotations columns describe it. "-" marks an empty column.
type Record struct {
	ReportID    string
	Reference   string
	Regions     string
	Annotations string
	Query       string
	StartA      int
	StartB      int
	Path        string
}

const columns = 8

// ReadRecords parses the TSV stream. Blank lines and '#' comments are
// skipped.
func ReadRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != columns {
			return nil, errors.Errorf("line %d: expected %d tab-separated columns, got %d", lineNo, columns, len(f))
		}
		startA, err := strconv.Atoi(f[5])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: start_a", lineNo)
		}
		startB, err := strconv.Atoi(f[6])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: start_b", lineNo)
		}
		recs = append(recs, Record{
			ReportID:    f[0],
			Reference:   f[1],
			Regions:     blankable(f[2]),
			Annotations: blankable(f[3]),
			Query:       f[4],
			StartA:      startA,
			StartB:      startB,
			Path:        f[7],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read alignment file")
	}
	if len(recs) == 0 {
		return nil, errors.New("alignment file holds no records")
	}
	return recs, nil
}

func blankable(s string) string {
	if s == "-" {
		return ""
	}
	return s
}

// Report is one assembled segment chain, in input order.
type Report struct {
	ID    string
	Chain report.Chain
}

// BuildReports resolves records against the dataset and assembles chains.
// Records group by consecutive ReportID; reusing an earlier ID later in the
// file is an error since it would silently merge unrelated chains.
func BuildReports(recs []Record, ds *germline.Dataset) ([]Report, error) {
	var out []Report
	seen := map[string]bool{}
	for _, rec := range recs {
		seg, err := buildSegment(rec, ds)
		if err != nil {
			return nil, errors.Wrapf(err, "report %q", rec.ReportID)
		}
		if n := len(out); n > 0 && out[n-1].ID == rec.ReportID {
			out[n-1].Chain = append(out[n-1].Chain, seg)
			continue
		}
		if seen[rec.ReportID] {
			return nil, errors.Errorf("report %q: records are not consecutive", rec.ReportID)
		}
		seen[rec.ReportID] = true
		out = append(out, Report{ID: rec.ReportID, Chain: report.Chain{seg}})
	}
	for _, r := range out {
		if err := r.Chain.Validate(); err != nil {
			return nil, errors.Wrapf(err, "report %q", r.ID)
		}
	}
	return out, nil
}

func buildSegment(rec Record, ds *germline.Dataset) (report.Segment, error) {
	ref, err := resolveReference(rec, ds)
	if err != nil {
		return report.Segment{}, err
	}
	query, err := align.ParseSequence(rec.Query)
	if err != nil {
		return report.Segment{}, errors.Wrap(err, "query")
	}
	path, err := align.ParsePath(rec.Path)
	if err != nil {
		return report.Segment{}, errors.Wrap(err, "path")
	}
	al, err := align.New(ref.Sequence(), query, rec.StartA, rec.StartB, path)
	if err != nil {
		return report.Segment{}, err
	}
	return report.Segment{Ref: ref, Alignment: al}, nil
}

func resolveReference(rec Record, ds *germline.Dataset) (germline.AnnotatedReference, error) {
	if name, ok := strings.CutPrefix(rec.Reference, "@"); ok {
		a, err := ds.Find(name)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
	seq, err := align.ParseSequence(rec.Reference)
	if err != nil {
		return nil, errors.Wrap(err, "inline reference")
	}
	spans, err := ParseSpans(rec.Regions)
	if err != nil {
		return nil, err
	}
	anns, err := ParseAnnotations(rec.Annotations)
	if err != nil {
		return nil, err
	}
	a, err := germline.NewAllele(rec.Reference, "", seq, spans, anns)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ParseSpans reads a "FR1:25;CDR1:10" region list.
func ParseSpans(s string) ([]germline.Span, error) {
	if s == "" {
		return nil, errors.New("inline reference needs a regions column")
	}
	var spans []germline.Span
	for _, part := range strings.Split(s, ";") {
		name, lenStr, ok := strings.Cut(part, ":")
		if !ok || name == "" {
			return nil, errors.Errorf("malformed region %q", part)
		}
		n, err := strconv.Atoi(lenStr)
		if err != nil || n <= 0 {
			return nil, errors.Errorf("malformed region length %q", part)
		}
		spans = append(spans, germline.Span{Region: germline.Region(name), Length: n})
	}
	return spans, nil
}

// ParseAnnotations reads a "Conserved:21;NGlycan:84" annotation list; the
// empty string yields none.
func ParseAnnotations(s string) ([]germline.PlacedAnnotation, error) {
	if s == "" {
		return nil, nil
	}
	var anns []germline.PlacedAnnotation
	for _, part := range strings.Split(s, ";") {
		name, posStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, errors.Errorf("malformed annotation %q", part)
		}
		pos, err := strconv.Atoi(posStr)
		if err != nil || pos < 0 {
			return nil, errors.Errorf("malformed annotation position %q", part)
		}
		anns = append(anns, germline.PlacedAnnotation{Annotation: germline.Annotation(name), Position: pos})
	}
	return anns, nil
}

// Open reads records from a path, with "-" meaning stdin.
func Open(path string) ([]Record, error) {
	if path == "-" {
		return ReadRecords(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open alignment file")
	}
	defer f.Close()
	recs, err := ReadRecords(f)
	return recs, errors.Wrapf(err, "%s", path)
}
