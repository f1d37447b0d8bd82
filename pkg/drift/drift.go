// Package drift detects stale generated documentation by regenerating
// every artifact in memory and byte-comparing against what is on disk.
package drift

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/render"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// DriftedFile records one artifact whose on-disk bytes differ from the
// regenerated content.
type DriftedFile struct {
	Path          string
	ExpectedLines int
	ActualLines   int
	Expected      string
	Actual        string
}

// Report is the outcome of a drift check.
type Report struct {
	Drifted []DriftedFile
	Missing []string
}

// HasDrift reports whether anything is stale or missing.
func (r *Report) HasDrift() bool {
	return len(r.Drifted) > 0 || len(r.Missing) > 0
}

// Check regenerates every artifact for the tree and compares it to the
// files under outDir. The main document is required: its absence is
// reported as missing. Sidecar artifacts (compact context, diagrams,
// CSV exports) are compared only when a previous run left them on
// disk, so a project that never opted into a sidecar is not flagged.
func Check(t *tree.Compiled, outDir string) *Report {
	report := &Report{}

	artifacts := render.All(t)
	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		expected := artifacts[name]
		path := filepath.Join(outDir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			if name == render.DocumentName {
				report.Missing = append(report.Missing, name)
			}
			continue
		}

		actual := string(data)
		if actual != expected {
			report.Drifted = append(report.Drifted, DriftedFile{
				Path:          name,
				ExpectedLines: countLines(expected),
				ActualLines:   countLines(actual),
				Expected:      expected,
				Actual:        actual,
			})
		}
	}

	return report
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n")
}

// Format renders a drift report as human-readable text.
func Format(r *Report) string {
	if !r.HasDrift() {
		return "Documentation is up to date.\n"
	}

	var sb strings.Builder
	sb.WriteString("Documentation drift detected!\n\n")

	if len(r.Drifted) > 0 {
		sb.WriteString(fmt.Sprintf("Changed files (%d):\n", len(r.Drifted)))
		for _, f := range r.Drifted {
			sb.WriteString(fmt.Sprintf("  %s (expected %d lines, got %d)\n",
				f.Path, f.ExpectedLines, f.ActualLines))
		}
	}

	if len(r.Missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing files (%d):\n", len(r.Missing)))
		for _, f := range r.Missing {
			sb.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	sb.WriteString("\nRun `archidoc generate` to regenerate.\n")
	return sb.String()
}
