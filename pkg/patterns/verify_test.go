package patterns

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GitSmart86/archidoc/pkg/ir"
)

func moduleWithSource(t *testing.T, pattern string, status ir.PatternStatus, source string) ir.ModuleRecord {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "impl.go"), []byte(source), 0644))
	return ir.ModuleRecord{
		ModulePath:    "mod",
		SourceFile:    filepath.Join(dir, "doc.go"),
		Level:         ir.LevelComponent,
		Pattern:       pattern,
		PatternStatus: status,
	}
}

func TestPromoteWithStructuralEvidence(t *testing.T) {
	records := []ir.ModuleRecord{
		moduleWithSource(t, "Strategy", ir.PatternPlanned,
			"package mod\n\ntype Pricer interface {\n\tPrice(x float64) float64\n}\n"),
	}

	promoted := NewVerifier().Promote(records)

	assert.Equal(t, 1, promoted)
	assert.Equal(t, ir.PatternVerified, records[0].PatternStatus)
}

func TestPromoteWithoutEvidence(t *testing.T) {
	records := []ir.ModuleRecord{
		moduleWithSource(t, "Strategy", ir.PatternPlanned,
			"package mod\n\ntype Flat struct{}\n"),
	}

	promoted := NewVerifier().Promote(records)

	assert.Equal(t, 0, promoted)
	assert.Equal(t, ir.PatternPlanned, records[0].PatternStatus)
}

func TestPromoteIsMonotonic(t *testing.T) {
	records := []ir.ModuleRecord{
		moduleWithSource(t, "Strategy", ir.PatternPlanned,
			"package mod\n\ntype Pricer interface {\n\tPrice(x float64) float64\n}\n"),
	}

	v := NewVerifier()
	require.Equal(t, 1, v.Promote(records))

	// Second run is a no-op: verified stays verified, nothing recounted.
	assert.Equal(t, 0, v.Promote(records))
	assert.Equal(t, ir.PatternVerified, records[0].PatternStatus)
}

func TestPromoteSkipsUnverifiablePatterns(t *testing.T) {
	records := []ir.ModuleRecord{
		moduleWithSource(t, "Mediator", ir.PatternPlanned,
			"package mod\n\ntype Hub interface{ Route() }\n"),
	}

	// No predicate registered for Mediator; the claim stays planned.
	assert.Equal(t, 0, NewVerifier().Promote(records))
	assert.Equal(t, ir.PatternPlanned, records[0].PatternStatus)
}

func TestRunFitnessPassAndFail(t *testing.T) {
	good := moduleWithSource(t, "Strategy", ir.PatternPlanned,
		"package mod\n\ntype Pricer interface {\n\tPrice(x float64) float64\n}\n")
	bad := moduleWithSource(t, "Strategy", ir.PatternPlanned,
		"package mod\n\ntype Flat struct{}\n")
	bad.ModulePath = "other"
	unrelated := moduleWithSource(t, "Facade", ir.PatternPlanned, "package mod\n")
	unrelated.ModulePath = "third"

	v := NewVerifier()
	result, ok := v.RunFitness("all_strategy_modules_define_a_contract",
		[]ir.ModuleRecord{good, bad, unrelated})
	require.True(t, ok)

	assert.False(t, result.Passed)
	assert.Equal(t, 2, result.Checked)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "other", result.Failures[0].ModulePath)
}

func TestRunFitnessUnknownName(t *testing.T) {
	_, ok := NewVerifier().RunFitness("no_such_check", nil)
	assert.False(t, ok)
}

func TestFormatFitness(t *testing.T) {
	pass := &FitnessResult{Passed: true, Checked: 3}
	assert.Contains(t, FormatFitness("some_check", pass), "PASS: some_check")

	fail := &FitnessResult{
		Checked: 2,
		Failures: []FitnessFailure{
			{ModulePath: "api", SourceFile: "src/api/doc.go", Reason: "no contract"},
		},
	}
	out := FormatFitness("some_check", fail)
	assert.Contains(t, out, "FAIL: some_check")
	assert.Contains(t, out, "api (src/api/doc.go): no contract")
}
