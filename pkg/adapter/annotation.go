package adapter

import (
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
)

// knownPatterns are the design pattern names the annotation grammar
// recognizes, longest names first so "Active Object" wins over
// "Observer" never matching inside it.
var knownPatterns = []string{
	"Chain of Responsibility",
	"Active Object",
	"Interpreter",
	"Repository",
	"Singleton",
	"Publisher",
	"Flyweight",
	"Composite",
	"Decorator",
	"Registry",
	"Strategy",
	"Observer",
	"Mediator",
	"Memento",
	"Factory",
	"Command",
	"Adapter",
	"Builder",
	"Facade",
}

// ParseAnnotation interprets the annotation grammar in a module's doc
// comment content and fills in every derived field of a record except
// ModulePath, SourceFile, and Parent.
func ParseAnnotation(content string) ir.ModuleRecord {
	return ir.ModuleRecord{
		Content:       content,
		Level:         ExtractLevel(content),
		Pattern:       ExtractPattern(content),
		PatternStatus: ExtractPatternStatus(content),
		Description:   ExtractDescription(content),
		Relationships: ExtractRelationships(content),
		Files:         ExtractFileTable(content),
	}
}

// ExtractLevel reads the C4 level marker. Both the `<<container>>`
// guillemet form and the `@c4 container` form are accepted.
func ExtractLevel(content string) ir.Level {
	switch {
	case strings.Contains(content, "<<container>>"), strings.Contains(content, "@c4 container"):
		return ir.LevelContainer
	case strings.Contains(content, "<<component>>"), strings.Contains(content, "@c4 component"):
		return ir.LevelComponent
	}
	return ir.LevelUnknown
}

// ExtractPattern scans for a known pattern name. Returns the sentinel
// when none is found.
func ExtractPattern(content string) string {
	for _, name := range knownPatterns {
		if strings.Contains(content, name) {
			return name
		}
	}
	return ir.PatternNone
}

// ExtractPatternStatus looks for a "(verified)" suffix near the
// pattern claim. Defaults to planned.
func ExtractPatternStatus(content string) ir.PatternStatus {
	if strings.Contains(content, "(verified)") {
		return ir.PatternVerified
	}
	return ir.PatternPlanned
}

// ExtractDescription returns the first line that is prose: not a
// header, marker, table row, or pattern declaration.
func ExtractDescription(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "|") ||
			strings.HasPrefix(trimmed, "@c4") ||
			strings.HasPrefix(trimmed, "GoF:") ||
			strings.Contains(trimmed, "<<") {
			continue
		}
		return trimmed
	}
	return "*No description*"
}

// ExtractRelationships parses `<<uses: target, "label", "protocol">>`
// markers, one per line, in document order.
func ExtractRelationships(content string) []ir.Relationship {
	var rels []ir.Relationship

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		inner, ok := strings.CutPrefix(trimmed, "<<uses:")
		if !ok {
			continue
		}
		inner, ok = strings.CutSuffix(inner, ">>")
		if !ok {
			continue
		}

		parts := strings.SplitN(inner, ",", 3)
		if len(parts) < 3 {
			continue
		}
		rels = append(rels, ir.Relationship{
			Target:   strings.TrimSpace(parts[0]),
			Label:    strings.Trim(strings.TrimSpace(parts[1]), `"`),
			Protocol: strings.Trim(strings.TrimSpace(parts[2]), `"`),
		})
	}

	return rels
}

// ExtractFileTable parses the markdown file table:
//
//	| File | Pattern | Purpose | Health |
//	|------|---------|---------|--------|
//	| `core.go` | Facade | Entry point | stable |
//
// The table ends at the first non-table line after the header.
func ExtractFileTable(content string) []ir.FileEntry {
	var entries []ir.FileEntry
	inTable := false
	headerSeen := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inTable {
			lower := strings.ToLower(trimmed)
			if strings.HasPrefix(trimmed, "|") &&
				strings.Contains(lower, "file") && strings.Contains(lower, "pattern") {
				inTable = true
			}
			continue
		}

		if !headerSeen {
			if strings.HasPrefix(trimmed, "|") && strings.Contains(trimmed, "---") {
				headerSeen = true
				continue
			}
			// Malformed table with no separator row; treat the line as data.
			headerSeen = true
		}

		if !strings.HasPrefix(trimmed, "|") {
			break
		}

		var cells []string
		for _, cell := range strings.Split(trimmed, "|") {
			if c := strings.TrimSpace(cell); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) < 4 {
			continue
		}

		pattern, status := parsePatternField(cells[1])
		entries = append(entries, ir.FileEntry{
			Name:          strings.TrimSpace(strings.Trim(cells[0], "`")),
			Pattern:       pattern,
			PatternStatus: status,
			Purpose:       cells[2],
			Health:        ir.ParseHealth(cells[3]),
		})
	}

	return entries
}

// parsePatternField splits "Strategy (verified)" into the pattern name
// and its status.
func parsePatternField(field string) (string, ir.PatternStatus) {
	field = strings.TrimSpace(field)
	if idx := strings.Index(field, "("); idx >= 0 {
		pattern := strings.TrimSpace(field[:idx])
		status := strings.TrimSpace(strings.TrimSuffix(field[idx+1:], ")"))
		return pattern, ir.ParsePatternStatus(status)
	}
	return field, ir.PatternPlanned
}
