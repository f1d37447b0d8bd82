package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// moduleInDir builds a record whose source file lives in dir, with the
// given file table.
func moduleInDir(t *testing.T, dir, path string, files []ir.FileEntry) ir.ModuleRecord {
	t.Helper()
	return ir.ModuleRecord{
		ModulePath:    path,
		SourceFile:    filepath.Join(dir, "doc.go"),
		Level:         ir.LevelContainer,
		Pattern:       ir.PatternNone,
		PatternStatus: ir.PatternPlanned,
		Files:         files,
	}
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("package x\n"), 0644))
}

func compile(t *testing.T, records ...ir.ModuleRecord) *tree.Compiled {
	t.Helper()
	c, err := tree.Assemble(records)
	require.NoError(t, err)
	return c
}

func TestCleanWhenTableMatchesDisk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "jwt.cfg")

	rec := moduleInDir(t, dir, "api", []ir.FileEntry{
		{Name: "jwt.cfg", Pattern: "--", PatternStatus: ir.PatternPlanned, Purpose: "tokens", Health: ir.HealthStable},
	})

	report := FileTables(compile(t, rec), Options{SourceExts: []string{".cfg"}})

	assert.True(t, report.Clean())
}

func TestGhostReportedForMissingActiveFile(t *testing.T) {
	dir := t.TempDir()

	rec := moduleInDir(t, dir, "api", []ir.FileEntry{
		{Name: "handler.ext", Pattern: "--", PatternStatus: ir.PatternPlanned, Purpose: "handles", Health: ir.HealthActive},
	})

	report := FileTables(compile(t, rec), Options{})

	require.Len(t, report.Ghosts, 1)
	assert.Equal(t, "api", report.Ghosts[0].Module)
	assert.Equal(t, "handler.ext", report.Ghosts[0].Filename)
	assert.Empty(t, report.Orphans)
}

func TestPlannedFileIsNotAGhost(t *testing.T) {
	dir := t.TempDir()

	rec := moduleInDir(t, dir, "api", []ir.FileEntry{
		{Name: "handler.ext", Pattern: "--", PatternStatus: ir.PatternPlanned, Purpose: "future work", Health: ir.HealthPlanned},
	})

	report := FileTables(compile(t, rec), Options{})

	assert.Empty(t, report.Ghosts)
}

func TestOrphanReportedForUncatalogedSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "handler.go")
	writeFile(t, dir, "stray.go")

	rec := moduleInDir(t, dir, "api", []ir.FileEntry{
		{Name: "handler.go", Pattern: "--", PatternStatus: ir.PatternPlanned, Purpose: "handles", Health: ir.HealthActive},
	})

	report := FileTables(compile(t, rec), Options{})

	require.Len(t, report.Orphans, 1)
	assert.Equal(t, "stray.go", report.Orphans[0].Filename)
}

func TestEntryPointsAreNotOrphans(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "core.go")
	writeFile(t, dir, "main.go")
	writeFile(t, dir, "doc.go")

	rec := moduleInDir(t, dir, "api", []ir.FileEntry{
		{Name: "core.go", Pattern: "--", PatternStatus: ir.PatternPlanned, Purpose: "core", Health: ir.HealthActive},
	})

	report := FileTables(compile(t, rec), Options{})

	assert.Empty(t, report.Orphans)
}

func TestNonSourceFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "core.go")
	writeFile(t, dir, "README.md")
	writeFile(t, dir, "data.json")

	rec := moduleInDir(t, dir, "api", []ir.FileEntry{
		{Name: "core.go", Pattern: "--", PatternStatus: ir.PatternPlanned, Purpose: "core", Health: ir.HealthActive},
	})

	report := FileTables(compile(t, rec), Options{})

	assert.Empty(t, report.Orphans)
}

func TestModulesWithoutTablesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "anything.go")

	rec := moduleInDir(t, dir, "api", nil)

	report := FileTables(compile(t, rec), Options{})

	assert.True(t, report.Clean())
}

func TestFormatNamesEveryFinding(t *testing.T) {
	report := &Report{
		Ghosts:  []Finding{{Module: "api", Filename: "gone.go"}},
		Orphans: []Finding{{Module: "api", Filename: "stray.go"}},
	}

	out := Format(report)

	assert.Contains(t, out, "Ghost entries (1 found)")
	assert.Contains(t, out, "gone.go")
	assert.Contains(t, out, "Orphan files (1 found)")
	assert.Contains(t, out, "stray.go")
}
