// Package merge combines IR collections produced by independent
// adapters into a single batch prior to tree assembly.
package merge

import (
	"sort"

	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// Records unions multiple IR sets keyed by module path.
//
// Two records sharing a module path is ambiguous ownership and fails
// with a StructuralError naming the colliding path; the merger never
// attempts field-level reconciliation. The merged batch is sorted by
// module path.
func Records(sets ...[]ir.ModuleRecord) ([]ir.ModuleRecord, error) {
	seen := make(map[string]bool)
	var merged []ir.ModuleRecord

	for _, set := range sets {
		for i := range set {
			rec := &set[i]
			if seen[rec.ModulePath] {
				return nil, &tree.StructuralError{
					ModulePath: rec.ModulePath,
					Message:    "module path appears in more than one IR set",
				}
			}
			seen[rec.ModulePath] = true
			merged = append(merged, rec.Clone())
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ModulePath < merged[j].ModulePath
	})
	return merged, nil
}
