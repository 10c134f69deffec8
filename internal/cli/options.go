// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"igreport/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input: a TSV of segment records, or one inline record.
	SegmentFile string
	Reference   string // "@Allele" or inline peptide sequence
	Germline    string // allele name, shorthand for --reference @Name
	Regions     string // inline reference boundary table
	Annotations string // inline reference annotations
	Query       string
	Path        string
	StartA      int
	StartB      int

	// Rendering
	LineWidth     int
	Context       bool
	ReferenceOnly bool
	Palette       string
	NoColor       bool

	// Output
	Output   string
	Annotate bool // projector export only, no rendered tracks
	Header   bool // true unless --no-header

	// Performance
	Threads int

	ListAlleles bool
	Version     bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: antibody germline alignment reports

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.SegmentFile, "segments", "", "segment TSV file ('-' = stdin) [*]")
	fs.StringVar(&opt.Reference, "reference", "", "inline mode: '@Allele' or reference sequence [*]")
	fs.StringVar(&opt.Germline, "germline", "", "inline mode: germline allele name (same as --reference '@Name')")
	fs.StringVar(&opt.Regions, "regions", "", "inline mode: region table, e.g. FR1:25;CDR1:10")
	fs.StringVar(&opt.Annotations, "annotations", "", "inline mode: annotations, e.g. Conserved:21")
	fs.StringVar(&opt.Query, "query", "", "inline mode: query sequence [*]")
	fs.StringVar(&opt.Path, "path", "", "inline mode: alignment path, e.g. 4=1X9I86= [*]")
	fs.IntVar(&opt.StartA, "start-a", 0, "inline mode: reference start offset [0]")
	fs.IntVar(&opt.StartB, "start-b", 0, "inline mode: query start offset [0]")

	// Rendering
	fs.IntVar(&opt.LineWidth, "line-width", 0, "report wrap width (0 = default) [0]")
	fs.BoolVar(&opt.Context, "context", false, "show unaligned flanking residues [false]")
	fs.BoolVar(&opt.ReferenceOnly, "reference-only", false, "render the reference track only [false]")
	fs.StringVar(&opt.Palette, "palette", "", "style overrides, e.g. cdr1=#ff5555,conserved=#8be9fd")
	fs.BoolVar(&opt.NoColor, "no-color", false, "disable ANSI styling [false]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | csv | table | json [text]")
	fs.BoolVar(&opt.Annotate, "annotate", false, "emit projected regions/annotations only, no rendered tracks [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress headers in text/csv/table [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.BoolVar(&opt.ListAlleles, "list-alleles", false, "list builtin germline alleles and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version || opt.ListAlleles {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.Germline != "" {
		if opt.Reference != "" {
			return opt, errors.New("--germline conflicts with --reference")
		}
		opt.Reference = "@" + opt.Germline
	}
	usingFile := opt.SegmentFile != ""
	usingInline := opt.Reference != "" || opt.Query != "" || opt.Path != ""
	switch {
	case usingFile && usingInline:
		return opt, errors.New("--segments conflicts with --reference/--query/--path")
	case usingInline && (opt.Reference == "" || opt.Query == "" || opt.Path == ""):
		return opt, errors.New("--reference, --query and --path must be supplied together")
	case !usingFile && !usingInline:
		return opt, errors.New("provide --segments or --reference/--query/--path")
	}
	if opt.StartA < 0 || opt.StartB < 0 {
		return opt, errors.New("--start-a/--start-b must be ≥ 0")
	}
	if opt.LineWidth < 0 {
		return opt, errors.New("--line-width must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case "text", "csv", "table", "json":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
