package render

import (
	"fmt"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// Compact renders the token-minimized outline for machine consumption:
// the narrative prose, an indented module tree where each module
// appears exactly once with pattern and one-line description, and a
// flat relationship list. All structural markup (diagrams, tables,
// fenced blocks) is stripped.
func Compact(t *tree.Compiled) string {
	var b strings.Builder

	b.WriteString("# Architecture (AI Context)\n\n")

	if narr := Narrative(t); narr != "" {
		b.WriteString(narr)
		b.WriteString("\n")
	}

	if mt := moduleOutline(t); mt != "" {
		b.WriteString(mt)
	}

	if rels := relationshipLines(t); rels != "" {
		b.WriteString("\n")
		b.WriteString(rels)
	}

	return b.String()
}

// Narrative extracts prose from the project-root annotation, skipping
// fenced code blocks, file tables, annotation markers, and headers that
// end up with no content under them. Multiple blank lines collapse.
func Narrative(t *tree.Compiled) string {
	root := t.Narrative()
	if root == nil {
		return ""
	}

	var lines []string
	inCode := false
	inTable := false

	for _, line := range strings.Split(root.Content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}

		if strings.HasPrefix(trimmed, "@c4 ") || strings.HasPrefix(trimmed, "GoF:") ||
			strings.Contains(trimmed, "<<container>>") || strings.Contains(trimmed, "<<component>>") {
			// Marker lines carry structure, not prose. Headers with a
			// level marker keep their title text.
			if strings.HasPrefix(trimmed, "#") {
				cleaned := strings.ReplaceAll(line, "<<container>>", "")
				cleaned = strings.ReplaceAll(cleaned, "<<component>>", "")
				lines = append(lines, strings.TrimRight(cleaned, " "))
			}
			continue
		}

		if strings.HasPrefix(trimmed, "| File") || strings.HasPrefix(trimmed, "| file") {
			inTable = true
			continue
		}
		if inTable {
			if strings.HasPrefix(trimmed, "|") {
				continue
			}
			inTable = false
		}

		lines = append(lines, line)
	}

	lines = dropOrphanHeaders(lines)

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	if text == "" {
		return ""
	}
	return text + "\n"
}

// dropOrphanHeaders removes headers with no content before the next
// header or end of input.
func dropOrphanHeaders(lines []string) []string {
	var out []string
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			hasContent := false
			for _, next := range lines[i+1:] {
				t := strings.TrimSpace(next)
				if strings.HasPrefix(t, "#") {
					break
				}
				if t != "" {
					hasContent = true
					break
				}
			}
			if !hasContent {
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

// moduleOutline builds the indented tree: one line per module with a
// trailing slash, the pattern claim when present, and the description.
func moduleOutline(t *tree.Compiled) string {
	modules := t.Modules()
	if len(modules) == 0 {
		return ""
	}

	var b strings.Builder
	for _, rec := range modules {
		name := rec.ShortName()

		b.WriteString(strings.Repeat("  ", t.Depth(rec.ModulePath)))
		b.WriteString(name)
		b.WriteString("/")

		if ir.HasPattern(rec.Pattern) {
			b.WriteString(" ")
			b.WriteString(rec.Pattern)
		}
		if rec.Description != "" {
			b.WriteString(" — ")
			b.WriteString(rec.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// relationshipLines renders the flat relationship list.
func relationshipLines(t *tree.Compiled) string {
	var b strings.Builder
	for _, rec := range t.Modules() {
		for _, rel := range rec.Relationships {
			fmt.Fprintf(&b, "%s -> %s: \"%s\" (%s)\n",
				rec.ModulePath, rel.Target, rel.Label, rel.Protocol)
		}
	}
	return b.String()
}
