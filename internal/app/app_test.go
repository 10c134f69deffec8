package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunInlineCSV(t *testing.T) {
	code, out, errs := run(t,
		"--reference", "@IGHJ5*01",
		"--query", "DSWFDSWGSGTAVTVSS",
		"--path", "17=",
		"--output", "csv", "--no-color",
	)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errs)
	}
	if !strings.Contains(out, "CDR3:6;FR4:11") {
		t.Fatalf("missing projected regions: %q", out)
	}
	if !strings.Contains(out, "Conserved:6;Conserved:7;Conserved:9") {
		t.Fatalf("missing annotations: %q", out)
	}
}

func TestRunInlineText(t *testing.T) {
	code, out, errs := run(t,
		"--reference", "@IGHJ5*01",
		"--query", "DSWFDSWGSGTAVTVSS",
		"--path", "17=",
		"--no-color",
	)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errs)
	}
	for _, want := range []string{
		">query  IGHJ5*01",
		"identity: 17/17 (100.0%)",
		"DSWFDSWGSGTAVTVSS",
		"regions: CDR3:6;FR4:11",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunAlignmentFile(t *testing.T) {
	tsv := filepath.Join(t.TempDir(), "chain.tsv")
	data := "# two-segment chain\n" +
		"mab\tACDEFG\tFR3:3;CDR3:3\t-\tACDEFG\t0\t0\t6=\n" +
		"mab\tHIKLMN\tCDR3:2;FR4:4\t-\tHIKLMN\t0\t0\t6=\n"
	if err := os.WriteFile(tsv, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, errs := run(t, "--segments", tsv, "--output", "csv", "--no-color")
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errs)
	}
	if !strings.Contains(out, "FR3:3;CDR3:5;FR4:4") {
		t.Fatalf("chained regions not merged: %q", out)
	}
}

func TestRunAnnotateSkipsTracks(t *testing.T) {
	code, out, errs := run(t,
		"--germline", "IGHJ5*01",
		"--query", "DSWFDSWGSGTAVTVSS",
		"--path", "17=",
		"--annotate", "--no-color",
	)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errs)
	}
	if !strings.Contains(out, "regions: CDR3:6;FR4:11") {
		t.Fatalf("missing projection: %q", out)
	}
	if strings.Contains(out, "DSWFDSWGSGTAVTVSS\nDSWFDSWGSGTAVTVSS") {
		t.Fatalf("tracks rendered despite --annotate: %q", out)
	}
}

func TestRunListAlleles(t *testing.T) {
	code, out, _ := run(t, "--list-alleles")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, name := range []string{"IGHV2-26*01", "IGHJ5*01", "IGHG1*01"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing allele %s in %q", name, out)
		}
	}
}

func TestRunVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.Contains(out, "igreport version") {
		t.Fatalf("exit %d, out %q", code, out)
	}
}

func TestRunFlagErrors(t *testing.T) {
	cases := [][]string{
		{"--segments", "x.tsv", "--output", "yaml"},
		{"--reference", "@IGHJ5*01"},
		{"--segments", filepath.Join(t.TempDir(), "missing.tsv")},
		{"--reference", "@NOSUCH*99", "--query", "Q", "--path", "1="},
	}
	for _, args := range cases {
		code, _, errs := run(t, args...)
		if code != 2 {
			t.Errorf("%v: exit %d, stderr %q", args, code, errs)
		}
		if errs == "" {
			t.Errorf("%v: expected stderr diagnostics", args)
		}
	}
}

func TestRunNoArgsShowsUsage(t *testing.T) {
	code, out, _ := run(t)
	if code != 0 || !strings.Contains(out, "Usage of igreport") {
		t.Fatalf("exit %d, out %q", code, out)
	}
}
