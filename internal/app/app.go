// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"igreport-core/germline"
	"igreport-core/report"
	"igreport/internal/alignfile"
	"igreport/internal/cli"
	"igreport/internal/legend"
	"igreport/internal/output"
	"igreport/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("igreport")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); output.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "igreport version %s\n", version.Version)
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	ds, err := germline.NewBuiltinDataset()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.ListAlleles {
		for _, name := range ds.Names() {
			_, _ = fmt.Fprintln(outw, name)
		}
		if e := outw.Flush(); output.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	reports, err := loadReports(opts, ds)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	styles, err := stylesFor(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.NoColor {
		color.NoColor = true
	}

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	results := make([]output.Result, len(reports))
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(threads)
	for i := range reports {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := reports[i]
			regions, anns := report.Project(r.Chain)
			res := output.Result{
				ID:          r.ID,
				Alleles:     alleleNames(r.Chain),
				Paths:       pathStrings(r.Chain),
				Regions:     regions,
				Annotations: anns,
				Stats:       report.ChainStats(r.Chain),
			}
			if opts.Output == "text" && !opts.Annotate {
				var sb strings.Builder
				ropts := report.RenderOptions{
					LineWidth:     opts.LineWidth,
					ShowContext:   opts.Context,
					OnlyReference: opts.ReferenceOnly,
					Styles:        styles,
				}
				if err := report.Render(&sb, r.Chain, ropts); err != nil {
					return fmt.Errorf("report %q: %w", r.ID, err)
				}
				res.Rendered = sb.String()
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if err := output.Write(opts.Output, outw, results, opts.Header); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); output.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadReports assembles the chains either from the alignment TSV or from the
// single inline record described by the flags.
func loadReports(opts cli.Options, ds *germline.Dataset) ([]alignfile.Report, error) {
	if opts.SegmentFile != "" {
		recs, err := alignfile.Open(opts.SegmentFile)
		if err != nil {
			return nil, err
		}
		return alignfile.BuildReports(recs, ds)
	}
	rec := alignfile.Record{
		ReportID:    "query",
		Reference:   opts.Reference,
		Regions:     opts.Regions,
		Annotations: opts.Annotations,
		Query:       opts.Query,
		StartA:      opts.StartA,
		StartB:      opts.StartB,
		Path:        opts.Path,
	}
	return alignfile.BuildReports([]alignfile.Record{rec}, ds)
}

// stylesFor resolves the effective style set. Non-text outputs and --no-color
// render unstyled; otherwise palette overrides apply on the defaults.
func stylesFor(opts cli.Options) (*report.Styles, error) {
	if opts.Output != "text" || opts.NoColor {
		return report.PlainStyles(), nil
	}
	return legend.Apply(report.DefaultStyles(), opts.Palette)
}

func pathStrings(chain report.Chain) []string {
	out := make([]string, 0, len(chain))
	for _, s := range chain {
		out = append(out, s.Alignment.Path.String())
	}
	return out
}

func alleleNames(chain report.Chain) []string {
	names := make([]string, 0, len(chain))
	for _, s := range chain {
		if a, ok := s.Ref.(*germline.Allele); ok {
			names = append(names, a.Name)
			continue
		}
		names = append(names, "custom")
	}
	return names
}
