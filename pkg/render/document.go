package render

import (
	"fmt"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// Document renders the indexed architecture document: the project
// narrative, both C4 diagrams, a per-module section for every element
// in canonical order, a flat file index, and a relationship map.
func Document(t *tree.Compiled) string {
	var b strings.Builder

	b.WriteString("# Architecture\n\n")

	if narr := Narrative(t); narr != "" {
		b.WriteString(narr)
		b.WriteString("\n")
	}

	b.WriteString("## C4 Container Diagram\n\n")
	b.WriteString("```mermaid\n")
	b.WriteString(ContainerDiagram(t))
	b.WriteString("```\n\n")

	b.WriteString("## C4 Component Diagram\n\n")
	b.WriteString("```mermaid\n")
	b.WriteString(ComponentDiagram(t))
	b.WriteString("```\n\n")

	b.WriteString("## Modules\n\n")
	for _, rec := range t.Modules() {
		writeModuleSection(&b, rec)
	}

	writeFileIndex(&b, t)
	writeRelationshipMap(&b, t)

	return b.String()
}

func writeModuleSection(b *strings.Builder, rec *ir.ModuleRecord) {
	fmt.Fprintf(b, "### %s\n\n", rec.ModulePath)

	fmt.Fprintf(b, "- **Level**: %s\n", rec.Level)
	if ir.HasPattern(rec.Pattern) {
		fmt.Fprintf(b, "- **Pattern**: %s (%s)\n", rec.Pattern, rec.PatternStatus)
	}
	if rec.Description != "" {
		fmt.Fprintf(b, "- **Purpose**: %s\n", rec.Description)
	}
	b.WriteString("\n")

	if len(rec.Files) > 0 {
		b.WriteString("| File | Pattern | Purpose | Health |\n")
		b.WriteString("|------|---------|---------|--------|\n")
		for _, f := range rec.Files {
			fmt.Fprintf(b, "| `%s` | %s | %s | %s |\n",
				f.Name, fileTableCell(f), f.Purpose, f.Health)
		}
		b.WriteString("\n")
	}
}

// fileTableCell renders a file's pattern cell, appending the status
// only when a real pattern is claimed.
func fileTableCell(f ir.FileEntry) string {
	if !ir.HasPattern(f.Pattern) {
		return "--"
	}
	if f.PatternStatus == ir.PatternVerified {
		return f.Pattern + " (verified)"
	}
	return f.Pattern
}

// writeFileIndex emits the flat index linking every file entry to its
// module, in canonical module order.
func writeFileIndex(b *strings.Builder, t *tree.Compiled) {
	var rows []string
	for _, rec := range t.Modules() {
		for _, f := range rec.Files {
			rows = append(rows, fmt.Sprintf("| %s | `%s` | %s | %s |",
				rec.ModulePath, f.Name, f.Purpose, f.Health))
		}
	}
	if len(rows) == 0 {
		return
	}

	b.WriteString("## File Index\n\n")
	b.WriteString("| Module | File | Purpose | Health |\n")
	b.WriteString("|--------|------|---------|--------|\n")
	for _, row := range rows {
		b.WriteString(row + "\n")
	}
	b.WriteString("\n")
}

// writeRelationshipMap emits the flat relationship list. Unlike the
// diagrams, the map includes relationships whose target is missing from
// the tree, flagging them inline so the document stays honest about
// declared-but-unresolvable links.
func writeRelationshipMap(b *strings.Builder, t *tree.Compiled) {
	var rows []string
	for _, rec := range t.Modules() {
		for _, rel := range rec.Relationships {
			suffix := ""
			if !t.Has(rel.Target) {
				suffix = " _(unresolved)_"
			}
			rows = append(rows, fmt.Sprintf("- %s → %s: \"%s\" (%s)%s",
				rec.ModulePath, rel.Target, rel.Label, rel.Protocol, suffix))
		}
	}
	if len(rows) == 0 {
		return
	}

	b.WriteString("## Relationship Map\n\n")
	for _, row := range rows {
		b.WriteString(row + "\n")
	}
}
