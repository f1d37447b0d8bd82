package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

func exampleRecords() []ir.ModuleRecord {
	return []ir.ModuleRecord{
		{
			ModulePath:    "api",
			SourceFile:    "src/api/doc.go",
			Level:         ir.LevelContainer,
			Pattern:       "Facade",
			PatternStatus: ir.PatternVerified,
			Description:   "HTTP surface",
			Relationships: []ir.Relationship{
				{Target: "store", Label: "persists to", Protocol: "sql"},
			},
		},
		{
			ModulePath:    "api.auth",
			SourceFile:    "src/api/auth/doc.go",
			Level:         ir.LevelComponent,
			Pattern:       "Strategy",
			PatternStatus: ir.PatternPlanned,
			Description:   "authentication",
			Parent:        "api",
			Files: []ir.FileEntry{
				{Name: "jwt.cfg", Pattern: "--", PatternStatus: ir.PatternPlanned, Purpose: "token config", Health: ir.HealthStable},
			},
		},
		{
			ModulePath:    "store",
			SourceFile:    "src/store/doc.go",
			Level:         ir.LevelContainer,
			Pattern:       ir.PatternNone,
			PatternStatus: ir.PatternPlanned,
			Description:   "persistence",
		},
	}
}

func compile(t *testing.T, records []ir.ModuleRecord) *tree.Compiled {
	t.Helper()
	c, err := tree.Assemble(records)
	require.NoError(t, err)
	return c
}

func TestDocumentListsModulesInCanonicalOrder(t *testing.T) {
	doc := Document(compile(t, exampleRecords()))

	api := strings.Index(doc, "### api\n")
	auth := strings.Index(doc, "### api.auth\n")
	store := strings.Index(doc, "### store\n")

	require.True(t, api >= 0 && auth >= 0 && store >= 0, "all module sections present")
	assert.Less(t, api, auth)
	assert.Less(t, auth, store)
}

func TestDocumentCarriesDiagramsAndTables(t *testing.T) {
	doc := Document(compile(t, exampleRecords()))

	assert.Contains(t, doc, "```mermaid\nC4Container")
	assert.Contains(t, doc, "```mermaid\nC4Component")
	assert.Contains(t, doc, "| `jwt.cfg` | -- | token config | stable |")
	assert.Contains(t, doc, "## File Index")
	assert.Contains(t, doc, "## Relationship Map")
	assert.Contains(t, doc, "- **Pattern**: Facade (verified)")
}

func TestDocumentFlagsUnresolvedTargets(t *testing.T) {
	records := exampleRecords()
	records[0].Relationships = append(records[0].Relationships,
		ir.Relationship{Target: "ghost.module", Label: "calls", Protocol: "rpc"})

	doc := Document(compile(t, records))

	assert.Contains(t, doc, "ghost.module")
	assert.Contains(t, doc, "_(unresolved)_")
}

func TestContainerDiagram(t *testing.T) {
	out := ContainerDiagram(compile(t, exampleRecords()))

	assert.True(t, strings.HasPrefix(out, "C4Container\n"))
	assert.Contains(t, out, `Container(api, "Api", "Facade ✓", "HTTP surface")`)
	assert.Contains(t, out, `Container(store, "Store", "", "persistence")`)
	assert.Contains(t, out, `Rel(api, store, "persists to", "sql")`)
	// Components never leak into the container diagram.
	assert.NotContains(t, out, "api_auth")
}

func TestComponentDiagramBoundaries(t *testing.T) {
	out := ComponentDiagram(compile(t, exampleRecords()))

	assert.Contains(t, out, `Container_Boundary(api_boundary, "Api") {`)
	assert.Contains(t, out, `Component(api_auth, "auth", "Strategy", "authentication")`)
}

func TestDiagramsSkipUnresolvedRelTargets(t *testing.T) {
	records := exampleRecords()
	records[0].Relationships = []ir.Relationship{
		{Target: "nowhere", Label: "calls", Protocol: "rpc"},
	}

	out := ContainerDiagram(compile(t, records))
	assert.NotContains(t, out, "Rel(")
}

func TestRenderingIsDeterministic(t *testing.T) {
	records := exampleRecords()

	first := All(compile(t, records))

	// Permute input order; output must be byte-identical.
	permuted := []ir.ModuleRecord{records[2], records[0], records[1]}
	second := All(compile(t, permuted))

	require.Equal(t, len(first), len(second))
	for name := range first {
		assert.Equal(t, first[name], second[name], "artifact %s", name)
	}
}

func TestCompactStripsStructuralMarkup(t *testing.T) {
	records := exampleRecords()
	records = append(records, ir.ModuleRecord{
		ModulePath:    ir.RootSentinel,
		SourceFile:    "src/doc.go",
		Level:         ir.LevelContainer,
		Pattern:       ir.PatternNone,
		PatternStatus: ir.PatternPlanned,
		Content: strings.Join([]string{
			"@c4 container",
			"",
			"# Trading Platform",
			"",
			"An event-driven trading system.",
			"",
			"```mermaid",
			"C4Context",
			"```",
			"",
			"| File | Pattern | Purpose | Health |",
			"|------|---------|---------|--------|",
			"| `main.go` | -- | entry | active |",
		}, "\n"),
	})

	out := Compact(compile(t, records))

	assert.Contains(t, out, "An event-driven trading system.")
	assert.NotContains(t, out, "```")
	assert.NotContains(t, out, "C4Context")
	assert.NotContains(t, out, "| `main.go` |")
	assert.NotContains(t, out, "@c4")
}

func TestCompactOutlineIndentsByDepth(t *testing.T) {
	out := Compact(compile(t, exampleRecords()))

	assert.Contains(t, out, "api/ Facade")
	assert.Contains(t, out, "\n  auth/ Strategy")
	assert.Contains(t, out, "api -> store: \"persists to\" (sql)")
}

func TestContainerCSV(t *testing.T) {
	out := ContainerCSV(compile(t, exampleRecords()))

	assert.True(t, strings.HasPrefix(out, "## C4 Diagram"))
	assert.Contains(t, out, "id,name,type,pattern,description,refs")
	assert.Contains(t, out, "api,Api,container,Facade,HTTP surface,store")
}

func TestCSVEscapesCommas(t *testing.T) {
	records := exampleRecords()
	records[0].Description = "routes, handlers, middleware"

	out := ContainerCSV(compile(t, records))

	assert.Contains(t, out, "routes; handlers; middleware")
}

func TestComponentCSVEmitsParentStubs(t *testing.T) {
	out := ComponentCSV(compile(t, exampleRecords()))

	assert.Contains(t, out, "api,Api,container,,,")
	assert.Contains(t, out, "api.auth,auth,component,Strategy,authentication,api")
}

func TestHTMLDocument(t *testing.T) {
	html, err := HTMLDocument("# Architecture\n\nSome *prose*.\n")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<em>prose</em>")
}
