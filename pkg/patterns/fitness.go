package patterns

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
)

// FitnessResult is the outcome of one fitness function run across all
// modules claiming its pattern.
type FitnessResult struct {
	Passed   bool
	Checked  int
	Failures []FitnessFailure
}

// FitnessFailure is a single module that failed a fitness check.
type FitnessFailure struct {
	ModulePath string
	SourceFile string
	Reason     string
}

// fitnessCheck binds a named fitness function to the pattern it guards
// and the reason reported on failure.
type fitnessCheck struct {
	pattern string
	reason  string
}

var fitnessChecks = map[string]fitnessCheck{
	"all_strategy_modules_define_a_contract": {
		pattern: "Strategy",
		reason:  "no interface, trait, or abstract contract found",
	},
	"all_facade_modules_reexport_submodules": {
		pattern: "Facade",
		reason:  "no re-exports or submodule declarations found",
	},
	"all_observer_modules_have_channels_or_callbacks": {
		pattern: "Observer",
		reason:  "no channel types or callback parameters found",
	},
}

// FitnessNames returns the available fitness function names, sorted.
func FitnessNames() []string {
	names := make([]string, 0, len(fitnessChecks))
	for name := range fitnessChecks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunFitness executes a named fitness function against the records.
// Returns false when the name is not recognized.
func (v *Verifier) RunFitness(name string, records []ir.ModuleRecord) (*FitnessResult, bool) {
	check, ok := fitnessChecks[name]
	if !ok {
		return nil, false
	}
	pred, ok := v.Registry.Lookup(check.pattern)
	if !ok {
		return nil, false
	}

	exts := v.SourceExts
	if len(exts) == 0 {
		exts = defaultSourceExts
	}

	result := &FitnessResult{}
	for _, rec := range records {
		if rec.Pattern != check.pattern {
			continue
		}
		result.Checked++

		dir := filepath.Dir(rec.SourceFile)
		if !anySourceMatches(dir, exts, pred) {
			result.Failures = append(result.Failures, FitnessFailure{
				ModulePath: rec.ModulePath,
				SourceFile: rec.SourceFile,
				Reason:     check.reason,
			})
		}
	}
	result.Passed = len(result.Failures) == 0
	return result, true
}

// FormatFitness renders a fitness result as human-readable text.
func FormatFitness(name string, result *FitnessResult) string {
	var sb strings.Builder

	if result.Passed {
		sb.WriteString(fmt.Sprintf("PASS: %s (checked %d module(s))\n", name, result.Checked))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("FAIL: %s (%d/%d module(s) failed)\n",
		name, len(result.Failures), result.Checked))
	for _, f := range result.Failures {
		sb.WriteString(fmt.Sprintf("  %s (%s): %s\n", f.ModulePath, f.SourceFile, f.Reason))
	}
	return sb.String()
}
