package ir

import (
	"fmt"
	"strings"
)

// Violation describes one schema defect found in a candidate record.
type Violation struct {
	Index      int    // position in the candidate slice
	ModulePath string // may be empty when the path itself is the defect
	Field      string
	Message    string
}

// Error formats a single violation.
func (v Violation) Error() string {
	where := v.ModulePath
	if where == "" {
		where = fmt.Sprintf("record[%d]", v.Index)
	}
	return fmt.Sprintf("%s: %s: %s", where, v.Field, v.Message)
}

// SchemaViolation reports every schema defect in a candidate IR batch.
// Validation is exhaustive rather than fail-fast, so one invocation
// surfaces the complete defect set.
type SchemaViolation struct {
	Violations []Violation
}

// Error implements the error interface with a summary line followed by
// one line per defect.
func (e *SchemaViolation) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("IR schema validation failed with %d violation(s)\n", len(e.Violations)))
	for _, v := range e.Violations {
		sb.WriteString("  ✗ " + v.Error() + "\n")
	}
	return sb.String()
}

// ValidateRecords checks a candidate record batch against the IR schema.
// Returns nil when the batch is clean, or a *SchemaViolation enumerating
// every offending record.
func ValidateRecords(records []ModuleRecord) error {
	var violations []Violation

	add := func(i int, field, msg string) {
		violations = append(violations, Violation{
			Index:      i,
			ModulePath: records[i].ModulePath,
			Field:      field,
			Message:    msg,
		})
	}

	for i := range records {
		rec := &records[i]

		if rec.ModulePath == "" {
			violations = append(violations, Violation{
				Index:   i,
				Field:   "module_path",
				Message: "must not be empty",
			})
		} else if rec.ModulePath != RootSentinel {
			for _, seg := range strings.Split(rec.ModulePath, ".") {
				if seg == "" {
					add(i, "module_path", "contains an empty segment")
					break
				}
			}
		}

		if !rec.Level.Valid() {
			add(i, "level", fmt.Sprintf("%q is not one of container, component, unknown", string(rec.Level)))
		}
		if !rec.PatternStatus.Valid() {
			add(i, "pattern_status", fmt.Sprintf("%q is not one of planned, verified", string(rec.PatternStatus)))
		}

		for j, f := range rec.Files {
			if f.Name == "" {
				add(i, fmt.Sprintf("files[%d].name", j), "must not be empty")
			}
			if !f.Health.Valid() {
				add(i, fmt.Sprintf("files[%d].health", j),
					fmt.Sprintf("%q is not one of planned, active, stable", string(f.Health)))
			}
			if !f.PatternStatus.Valid() {
				add(i, fmt.Sprintf("files[%d].pattern_status", j),
					fmt.Sprintf("%q is not one of planned, verified", string(f.PatternStatus)))
			}
		}
	}

	if len(violations) > 0 {
		return &SchemaViolation{Violations: violations}
	}
	return nil
}
