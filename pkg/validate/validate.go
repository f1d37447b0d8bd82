// Package validate cross-checks module file tables against the actual
// file system: ghost entries (cataloged but missing on disk) and orphan
// files (on disk but uncataloged).
//
// Findings are reported, never fatal by themselves; the calling mode
// decides whether a dirty report fails the run.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// DefaultEntryPoints are structural filenames excluded from orphan
// detection across the supported ecosystems.
var DefaultEntryPoints = []string{
	"doc.go", "main.go",
	"mod.rs", "lib.rs", "main.rs",
	"index.ts", "index.js",
	"__init__.py",
}

// DefaultSourceExts are the file extensions considered source files for
// orphan detection.
var DefaultSourceExts = []string{".go", ".rs", ".ts", ".js", ".py"}

// Options tunes which on-disk files participate in orphan detection.
type Options struct {
	EntryPoints []string // defaults to DefaultEntryPoints
	SourceExts  []string // defaults to DefaultSourceExts
}

// Finding is one ghost or orphan observation.
type Finding struct {
	Module    string
	Filename  string
	SourceDir string
}

// Report collects everything the validator observed.
type Report struct {
	Ghosts  []Finding
	Orphans []Finding
}

// Clean reports whether the file tables match the filesystem.
func (r *Report) Clean() bool {
	return len(r.Ghosts) == 0 && len(r.Orphans) == 0
}

// FileTables checks every module's file table against the directory of
// its source file. Modules without file tables are skipped.
//
// Ghosts: cataloged files missing on disk, excluding entries whose
// health is planned, since those are permitted to be aspirational.
// Orphans: source files on disk not named in the module's table,
// excluding structural entry-point filenames.
func FileTables(t *tree.Compiled, opts Options) *Report {
	entryPoints := opts.EntryPoints
	if len(entryPoints) == 0 {
		entryPoints = DefaultEntryPoints
	}
	sourceExts := opts.SourceExts
	if len(sourceExts) == 0 {
		sourceExts = DefaultSourceExts
	}

	structural := make(map[string]bool, len(entryPoints))
	for _, name := range entryPoints {
		structural[name] = true
	}

	report := &Report{}

	for _, rec := range t.Modules() {
		if len(rec.Files) == 0 {
			continue
		}

		sourceDir := filepath.Dir(rec.SourceFile)

		cataloged := make(map[string]bool, len(rec.Files))
		for _, f := range rec.Files {
			cataloged[f.Name] = true

			if f.Health == ir.HealthPlanned {
				continue
			}
			if _, err := os.Stat(filepath.Join(sourceDir, f.Name)); err != nil {
				report.Ghosts = append(report.Ghosts, Finding{
					Module:    rec.ModulePath,
					Filename:  f.Name,
					SourceDir: sourceDir,
				})
			}
		}

		entries, err := os.ReadDir(sourceDir)
		if err != nil {
			// An unreadable module directory is a structural condition
			// on the table itself: nothing to scan for orphans.
			continue
		}

		var names []string
		for _, entry := range entries {
			if !entry.IsDir() {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			if structural[name] || cataloged[name] {
				continue
			}
			if !hasSourceExt(name, sourceExts) {
				continue
			}
			report.Orphans = append(report.Orphans, Finding{
				Module:    rec.ModulePath,
				Filename:  name,
				SourceDir: sourceDir,
			})
		}
	}

	return report
}

func hasSourceExt(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Format renders a report as human-readable text.
func Format(r *Report) string {
	if r.Clean() {
		return "File validation: all clear\n"
	}

	var sb strings.Builder

	if len(r.Ghosts) > 0 {
		sb.WriteString(fmt.Sprintf("Ghost entries (%d found):\n", len(r.Ghosts)))
		for _, g := range r.Ghosts {
			sb.WriteString(fmt.Sprintf("  %s: '%s' listed in the file table but not found on disk\n",
				g.Module, g.Filename))
		}
	}

	if len(r.Orphans) > 0 {
		sb.WriteString(fmt.Sprintf("Orphan files (%d found):\n", len(r.Orphans)))
		for _, o := range r.Orphans {
			sb.WriteString(fmt.Sprintf("  %s: '%s' exists on disk but is not in the file table\n",
				o.Module, o.Filename))
		}
	}

	return sb.String()
}
