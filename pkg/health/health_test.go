package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

func compile(t *testing.T, records ...ir.ModuleRecord) *tree.Compiled {
	t.Helper()
	c, err := tree.Assemble(records)
	require.NoError(t, err)
	return c
}

func TestAggregateCountsFilesAndPatterns(t *testing.T) {
	records := []ir.ModuleRecord{
		{
			ModulePath:    "api",
			Level:         ir.LevelContainer,
			Pattern:       "Facade",
			PatternStatus: ir.PatternVerified,
			Files: []ir.FileEntry{
				{Name: "a.go", Health: ir.HealthStable, PatternStatus: ir.PatternPlanned},
				{Name: "b.go", Health: ir.HealthActive, PatternStatus: ir.PatternPlanned},
			},
		},
		{
			ModulePath:    "api.auth",
			Level:         ir.LevelComponent,
			Pattern:       "Strategy",
			PatternStatus: ir.PatternPlanned,
			Files: []ir.FileEntry{
				{Name: "c.go", Health: ir.HealthPlanned, PatternStatus: ir.PatternPlanned},
			},
		},
		{
			ModulePath:    "store",
			Level:         ir.LevelContainer,
			Pattern:       ir.PatternNone,
			PatternStatus: ir.PatternPlanned,
		},
	}

	r := Aggregate(compile(t, records...))

	assert.Equal(t, 3, r.TotalElements)
	assert.Equal(t, 2, r.ContainerCount)
	assert.Equal(t, 1, r.ComponentCount)

	assert.Equal(t, 3, r.TotalFiles)
	assert.Equal(t, 1, r.FilesPlanned)
	assert.Equal(t, 1, r.FilesActive)
	assert.Equal(t, 1, r.FilesStable)

	// store claims no pattern, so only two claims are counted.
	assert.Equal(t, 2, r.PatternsTotal)
	assert.Equal(t, 1, r.PatternsPlanned)
	assert.Equal(t, 1, r.PatternsVerified)

	require.Len(t, r.PerElement, 3)
	assert.Equal(t, "api", r.PerElement[0].Name)
	assert.Equal(t, 2, r.PerElement[0].FileCount)
}

func TestAggregateCountsNarrativeAsElement(t *testing.T) {
	records := []ir.ModuleRecord{
		{ModulePath: ir.RootSentinel, Level: ir.LevelContainer, Pattern: ir.PatternNone, PatternStatus: ir.PatternPlanned},
		{ModulePath: "api", Level: ir.LevelContainer, Pattern: ir.PatternNone, PatternStatus: ir.PatternPlanned},
	}

	r := Aggregate(compile(t, records...))

	require.Equal(t, 2, r.TotalElements)
	// The narrative record stays out of the level breakdown.
	assert.Equal(t, 1, r.ContainerCount)
	assert.Equal(t, 0, r.ComponentCount)
	require.Len(t, r.PerElement, 1)
}

func TestAggregateSingleStableFile(t *testing.T) {
	records := []ir.ModuleRecord{
		{ModulePath: "api", Level: ir.LevelContainer, Pattern: ir.PatternNone, PatternStatus: ir.PatternPlanned},
		{
			ModulePath: "api.auth", Level: ir.LevelComponent, Pattern: ir.PatternNone, PatternStatus: ir.PatternPlanned,
			Files: []ir.FileEntry{{Name: "jwt.cfg", Health: ir.HealthStable, PatternStatus: ir.PatternPlanned}},
		},
	}

	r := Aggregate(compile(t, records...))

	assert.Equal(t, 1, r.FilesStable)
	assert.Equal(t, 0, r.FilesActive)
	assert.Equal(t, 0, r.FilesPlanned)
	assert.Equal(t, 0, r.PatternsTotal)
}

func TestFormatReport(t *testing.T) {
	records := []ir.ModuleRecord{
		{
			ModulePath: "api", Level: ir.LevelContainer, Pattern: "Facade", PatternStatus: ir.PatternVerified,
			Files: []ir.FileEntry{{Name: "a.go", Health: ir.HealthStable, PatternStatus: ir.PatternPlanned}},
		},
	}

	out := Format(Aggregate(compile(t, records...)))

	assert.Contains(t, out, "Architecture Health Report")
	assert.Contains(t, out, "Elements:    1 total (1 containers, 0 components)")
	assert.Contains(t, out, "stable:    1 (100.0%)")
	assert.Contains(t, out, "verified:  1 (100.0%)")
}
