// Package health aggregates file maturity and pattern confidence
// across a compiled tree.
package health

import (
	"fmt"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// ElementHealth is the per-module slice of a report.
type ElementHealth struct {
	Name              string
	Level             ir.Level
	FileCount         int
	FilesPlanned      int
	FilesActive       int
	FilesStable       int
	Pattern           string
	PatternConfidence ir.PatternStatus
}

// Report aggregates counts project-wide and per element.
type Report struct {
	TotalElements  int
	ContainerCount int
	ComponentCount int

	TotalFiles   int
	FilesPlanned int
	FilesActive  int
	FilesStable  int

	PatternsTotal    int
	PatternsPlanned  int
	PatternsVerified int

	PerElement []ElementHealth
}

// Aggregate counts files by maturity and patterns by confidence, both
// project-wide and per element. Modules with no declared pattern are
// excluded from pattern totals.
func Aggregate(t *tree.Compiled) *Report {
	report := &Report{}

	// The narrative record counts as an element but has no level.
	if t.Narrative() != nil {
		report.TotalElements++
	}

	for _, rec := range t.Modules() {
		report.TotalElements++
		switch rec.Level {
		case ir.LevelContainer:
			report.ContainerCount++
		case ir.LevelComponent:
			report.ComponentCount++
		}

		elem := ElementHealth{
			Name:              rec.ModulePath,
			Level:             rec.Level,
			FileCount:         len(rec.Files),
			Pattern:           rec.Pattern,
			PatternConfidence: rec.PatternStatus,
		}

		for _, f := range rec.Files {
			switch f.Health {
			case ir.HealthPlanned:
				report.FilesPlanned++
				elem.FilesPlanned++
			case ir.HealthActive:
				report.FilesActive++
				elem.FilesActive++
			case ir.HealthStable:
				report.FilesStable++
				elem.FilesStable++
			}
		}
		report.TotalFiles += len(rec.Files)

		if ir.HasPattern(rec.Pattern) {
			report.PatternsTotal++
			switch rec.PatternStatus {
			case ir.PatternPlanned:
				report.PatternsPlanned++
			case ir.PatternVerified:
				report.PatternsVerified++
			}
		}

		report.PerElement = append(report.PerElement, elem)
	}

	return report
}

// Format renders a report as human-readable text.
func Format(r *Report) string {
	var sb strings.Builder

	sb.WriteString("Architecture Health Report\n")
	sb.WriteString("==========================\n")
	sb.WriteString(fmt.Sprintf("Elements:    %d total (%d containers, %d components)\n",
		r.TotalElements, r.ContainerCount, r.ComponentCount))
	sb.WriteString(fmt.Sprintf("Files:       %d total\n", r.TotalFiles))

	if r.TotalFiles > 0 {
		sb.WriteString(fmt.Sprintf("  planned:   %d (%.1f%%)\n", r.FilesPlanned, percent(r.FilesPlanned, r.TotalFiles)))
		sb.WriteString(fmt.Sprintf("  active:    %d (%.1f%%)\n", r.FilesActive, percent(r.FilesActive, r.TotalFiles)))
		sb.WriteString(fmt.Sprintf("  stable:    %d (%.1f%%)\n", r.FilesStable, percent(r.FilesStable, r.TotalFiles)))
	}

	sb.WriteString(fmt.Sprintf("Patterns:    %d assigned\n", r.PatternsTotal))
	if r.PatternsTotal > 0 {
		sb.WriteString(fmt.Sprintf("  planned:   %d (%.1f%%)\n", r.PatternsPlanned, percent(r.PatternsPlanned, r.PatternsTotal)))
		sb.WriteString(fmt.Sprintf("  verified:  %d (%.1f%%)\n", r.PatternsVerified, percent(r.PatternsVerified, r.PatternsTotal)))
	}

	return sb.String()
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
