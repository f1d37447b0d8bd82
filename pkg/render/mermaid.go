// Package render holds the artifact renderers. Every renderer is a pure
// function from the compiled tree to text: the same tree always renders
// to byte-identical output, which the drift detector depends on. No
// timestamps, no absolute paths, no map-order iteration.
package render

import (
	"fmt"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// Artifact file names for the default output set.
const (
	DocumentName         = "ARCHITECTURE.md"
	CompactName          = "AI_CONTEXT.md"
	ContainerDiagramName = "c4/container.mmd"
	ComponentDiagramName = "c4/component.mmd"
	ContainerCSVName     = "drawio/c4-container.csv"
	ComponentCSVName     = "drawio/c4-component.csv"
)

// All renders the complete default artifact set.
func All(t *tree.Compiled) map[string]string {
	return map[string]string{
		DocumentName:         Document(t),
		CompactName:          Compact(t),
		ContainerDiagramName: ContainerDiagram(t),
		ComponentDiagramName: ComponentDiagram(t),
		ContainerCSVName:     ContainerCSV(t),
		ComponentCSVName:     ComponentCSV(t),
	}
}

// mermaidID converts a module path into a Mermaid-safe node id.
func mermaidID(path string) string {
	return strings.ReplaceAll(path, ".", "_")
}

// mermaidEscape strips characters that would break quoted Mermaid text.
func mermaidEscape(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	return strings.ReplaceAll(s, "\n", " ")
}

// nodeTech renders the technology slot of a C4 node from the pattern
// claim: the pattern name, with a check mark once verified.
func nodeTech(pattern string, status ir.PatternStatus) string {
	if !ir.HasPattern(pattern) {
		return ""
	}
	if status == ir.PatternVerified {
		return pattern + " ✓"
	}
	return pattern
}

// ContainerDiagram renders a Mermaid C4Container diagram of every
// container-level module and the relationships between them.
// Relationships whose target is absent from the tree are omitted here;
// the validator reports them.
func ContainerDiagram(t *tree.Compiled) string {
	var b strings.Builder
	b.WriteString("C4Container\n")
	b.WriteString("    title Container Diagram\n")

	for _, rec := range t.Modules() {
		if rec.Level != ir.LevelContainer {
			continue
		}
		fmt.Fprintf(&b, "    Container(%s, \"%s\", \"%s\", \"%s\")\n",
			mermaidID(rec.ModulePath),
			mermaidEscape(titleCase(rec.ShortName())),
			mermaidEscape(nodeTech(rec.Pattern, rec.PatternStatus)),
			mermaidEscape(rec.Description))
	}

	writeRels(&b, t, func(rec *ir.ModuleRecord) bool {
		return rec.Level == ir.LevelContainer
	})

	return b.String()
}

// ComponentDiagram renders a Mermaid C4Component diagram: one
// Container_Boundary per parent, components nested inside, then all
// resolvable component relationships.
func ComponentDiagram(t *tree.Compiled) string {
	var b strings.Builder
	b.WriteString("C4Component\n")
	b.WriteString("    title Component Diagram\n")

	for _, parent := range boundaryParents(t) {
		fmt.Fprintf(&b, "    Container_Boundary(%s_boundary, \"%s\") {\n",
			mermaidID(parent), mermaidEscape(titleCase(lastSegment(parent))))
		for _, child := range t.Children(parent) {
			rec := t.Get(child)
			if rec.Level != ir.LevelComponent {
				continue
			}
			fmt.Fprintf(&b, "        Component(%s, \"%s\", \"%s\", \"%s\")\n",
				mermaidID(rec.ModulePath),
				mermaidEscape(rec.ShortName()),
				mermaidEscape(nodeTech(rec.Pattern, rec.PatternStatus)),
				mermaidEscape(rec.Description))
		}
		b.WriteString("    }\n")
	}

	writeRels(&b, t, func(rec *ir.ModuleRecord) bool {
		return rec.Level == ir.LevelComponent
	})

	return b.String()
}

// boundaryParents returns, in canonical order, every module that has at
// least one component child.
func boundaryParents(t *tree.Compiled) []string {
	var parents []string
	for _, path := range t.Paths() {
		for _, child := range t.Children(path) {
			if t.Get(child).Level == ir.LevelComponent {
				parents = append(parents, path)
				break
			}
		}
	}
	return parents
}

// writeRels emits one Rel line per resolvable relationship of every
// module accepted by the filter, in canonical module order.
func writeRels(b *strings.Builder, t *tree.Compiled, include func(*ir.ModuleRecord) bool) {
	for _, rec := range t.Modules() {
		if !include(rec) {
			continue
		}
		for _, rel := range rec.Relationships {
			if !t.Has(rel.Target) {
				continue
			}
			fmt.Fprintf(b, "    Rel(%s, %s, \"%s\", \"%s\")\n",
				mermaidID(rec.ModulePath), mermaidID(rel.Target),
				mermaidEscape(rel.Label), mermaidEscape(rel.Protocol))
		}
	}
}

// lastSegment returns the final dot segment of a module path.
func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

// titleCase renders a path segment as a display name: underscores
// become spaces and each word is capitalized.
func titleCase(segment string) string {
	words := strings.Split(segment, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
