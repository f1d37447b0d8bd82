package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedParent(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"single segment has no parent", "api", ""},
		{"two segments", "api.auth", "api"},
		{"deep nesting drops last segment only", "bus.calc.indicators", "bus.calc"},
		{"root sentinel has no parent", RootSentinel, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ModuleRecord{ModulePath: tt.path}
			assert.Equal(t, tt.want, rec.DerivedParent())
		})
	}
}

func TestShortName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"api", "api"},
		{"api.auth", "auth"},
		{"bus.calc.indicators", "indicators"},
	}

	for _, tt := range tests {
		rec := ModuleRecord{ModulePath: tt.path}
		assert.Equal(t, tt.want, rec.ShortName())
	}
}

func TestHasPattern(t *testing.T) {
	assert.True(t, HasPattern("Strategy"))
	assert.False(t, HasPattern(""))
	assert.False(t, HasPattern(PatternNone))
	assert.False(t, HasPattern("--"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelContainer, ParseLevel("container"))
	assert.Equal(t, LevelComponent, ParseLevel("component"))
	assert.Equal(t, LevelUnknown, ParseLevel("whatever"))
}

func TestParseHealth(t *testing.T) {
	assert.Equal(t, HealthActive, ParseHealth("active"))
	assert.Equal(t, HealthStable, ParseHealth("stable"))
	assert.Equal(t, HealthPlanned, ParseHealth("planned"))
	assert.Equal(t, HealthPlanned, ParseHealth("garbage"))
}

func TestCloneIsDeep(t *testing.T) {
	rec := ModuleRecord{
		ModulePath:    "api",
		Relationships: []Relationship{{Target: "store", Label: "reads", Protocol: "sql"}},
		Files:         []FileEntry{{Name: "handler.go", Health: HealthActive}},
	}

	clone := rec.Clone()
	clone.Relationships[0].Target = "other"
	clone.Files[0].Name = "other.go"

	assert.Equal(t, "store", rec.Relationships[0].Target)
	assert.Equal(t, "handler.go", rec.Files[0].Name)
}
