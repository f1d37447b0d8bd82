package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

func rec(path string) ir.ModuleRecord {
	return ir.ModuleRecord{
		ModulePath:    path,
		Level:         ir.LevelContainer,
		Pattern:       ir.PatternNone,
		PatternStatus: ir.PatternPlanned,
	}
}

func TestRecordsUnionsDisjointSets(t *testing.T) {
	goSet := []ir.ModuleRecord{rec("api"), rec("api.auth")}
	rustSet := []ir.ModuleRecord{rec("engine")}

	merged, err := Records(goSet, rustSet)
	require.NoError(t, err)

	require.Len(t, merged, 3)
	assert.Equal(t, "api", merged[0].ModulePath)
	assert.Equal(t, "api.auth", merged[1].ModulePath)
	assert.Equal(t, "engine", merged[2].ModulePath)
}

func TestRecordsCollisionIsFatal(t *testing.T) {
	a := []ir.ModuleRecord{rec("payments")}
	b := []ir.ModuleRecord{rec("payments")}

	_, err := Records(a, b)
	require.Error(t, err)

	var se *tree.StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "payments", se.ModulePath)
}

func TestRecordsCollisionWithinOneSet(t *testing.T) {
	_, err := Records([]ir.ModuleRecord{rec("api"), rec("api")})

	var se *tree.StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "api", se.ModulePath)
}

func TestRecordsSingleSetPassesThroughSorted(t *testing.T) {
	merged, err := Records([]ir.ModuleRecord{rec("zeta"), rec("alpha")})
	require.NoError(t, err)

	require.Len(t, merged, 2)
	assert.Equal(t, "alpha", merged[0].ModulePath)
}

func TestRecordsEmptyInput(t *testing.T) {
	merged, err := Records()
	require.NoError(t, err)
	assert.Empty(t, merged)
}
