// Package ir defines the portable intermediate representation shared by
// language adapters and the documentation engine.
//
// A ModuleRecord describes one architectural element extracted from an
// annotated source tree. Records are immutable once handed to the engine:
// every engine stage returns new values, except pattern verification,
// which may promote PatternStatus from planned to verified.
package ir

import "strings"

// Level is the C4 architecture level of a module.
type Level string

const (
	LevelContainer Level = "container"
	LevelComponent Level = "component"
	LevelUnknown   Level = "unknown"
)

// ParseLevel parses a level marker, defaulting to unknown.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "container":
		return LevelContainer
	case "component":
		return LevelComponent
	default:
		return LevelUnknown
	}
}

// Valid reports whether the level is one of the schema values.
func (l Level) Valid() bool {
	return l == LevelContainer || l == LevelComponent || l == LevelUnknown
}

// PatternStatus is the confidence tier of a design-pattern claim.
//
// planned: developer intent, not yet structurally confirmed.
// verified: a structural heuristic has confirmed the claim.
type PatternStatus string

const (
	PatternPlanned  PatternStatus = "planned"
	PatternVerified PatternStatus = "verified"
)

// ParsePatternStatus parses a status string, defaulting to planned.
func ParsePatternStatus(s string) PatternStatus {
	if strings.ToLower(strings.TrimSpace(s)) == "verified" {
		return PatternVerified
	}
	return PatternPlanned
}

// Valid reports whether the status is one of the schema values.
func (s PatternStatus) Valid() bool {
	return s == PatternPlanned || s == PatternVerified
}

// Health is the implementation maturity of a file.
//
// Progression: planned -> active -> stable.
type Health string

const (
	HealthPlanned Health = "planned"
	HealthActive  Health = "active"
	HealthStable  Health = "stable"
)

// ParseHealth parses a health string, defaulting to planned.
func ParseHealth(s string) Health {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return HealthActive
	case "stable":
		return HealthStable
	default:
		return HealthPlanned
	}
}

// Valid reports whether the health is one of the schema values.
func (h Health) Valid() bool {
	return h == HealthPlanned || h == HealthActive || h == HealthStable
}

// PatternNone is the sentinel for modules without a pattern claim.
// Adapters using the older "--" notation are accepted as equivalent.
const PatternNone = "none"

// HasPattern reports whether a pattern field carries a real claim.
func HasPattern(pattern string) bool {
	return pattern != "" && pattern != PatternNone && pattern != "--"
}

// RootSentinel is the module path reserved for the project-root
// annotation. It carries the document narrative and is exempt from
// hierarchy placement: it never appears in diagrams or module trees.
const RootSentinel = "_lib"

// Relationship is a declared or discovered dependency between modules.
type Relationship struct {
	Target   string `json:"target"`
	Label    string `json:"label"`
	Protocol string `json:"protocol"`
}

// FileEntry is one row of a module's file table: a claim about a source
// file inside the module's directory.
type FileEntry struct {
	Name          string        `json:"name"`
	Pattern       string        `json:"pattern"`
	PatternStatus PatternStatus `json:"pattern_status"`
	Purpose       string        `json:"purpose"`
	Health        Health        `json:"health"`
}

// ModuleRecord is one architectural element. This is the IR contract
// between adapters and the engine.
type ModuleRecord struct {
	ModulePath    string         `json:"module_path"`
	Content       string         `json:"content"`
	SourceFile    string         `json:"source_file"`
	Level         Level          `json:"level"`
	Pattern       string         `json:"pattern"`
	PatternStatus PatternStatus  `json:"pattern_status"`
	Description   string         `json:"description"`
	Parent        string         `json:"parent,omitempty"`
	Relationships []Relationship `json:"relationships"`
	Files         []FileEntry    `json:"files"`
}

// ShortName returns the last segment of the module path.
func (m *ModuleRecord) ShortName() string {
	if i := strings.LastIndex(m.ModulePath, "."); i >= 0 {
		return m.ModulePath[i+1:]
	}
	return m.ModulePath
}

// DerivedParent returns the module path with its last segment dropped,
// or "" for single-segment paths and the root sentinel.
func (m *ModuleRecord) DerivedParent() string {
	if m.ModulePath == RootSentinel {
		return ""
	}
	if i := strings.LastIndex(m.ModulePath, "."); i >= 0 {
		return m.ModulePath[:i]
	}
	return ""
}

// Clone returns a deep copy of the record.
func (m *ModuleRecord) Clone() ModuleRecord {
	out := *m
	out.Relationships = append([]Relationship(nil), m.Relationships...)
	out.Files = append([]FileEntry(nil), m.Files...)
	return out
}

// CloneAll deep-copies a record slice.
func CloneAll(records []ModuleRecord) []ModuleRecord {
	out := make([]ModuleRecord, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}
