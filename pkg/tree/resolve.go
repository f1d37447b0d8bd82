package tree

import "github.com/GitSmart86/archidoc/pkg/ir"

// MergeRelationships combines a module's explicitly declared
// relationships with auto-discovered ones.
//
// Explicit entries are kept verbatim and first, in original order. A
// discovered entry survives only if no explicit entry already targets
// the same module path; survivors follow in their original order. An
// explicit entry shadows a discovered one wholesale: label and
// protocol are not unioned.
func MergeRelationships(explicit, discovered []ir.Relationship) []ir.Relationship {
	merged := append([]ir.Relationship(nil), explicit...)

	claimed := make(map[string]bool, len(explicit))
	for _, r := range explicit {
		claimed[r.Target] = true
	}

	for _, r := range discovered {
		if claimed[r.Target] {
			continue
		}
		claimed[r.Target] = true
		merged = append(merged, r)
	}

	return merged
}

// Resolve applies adapter-supplied auto-discovered relationships to the
// tree, module by module, under the explicit-wins merge rule. The tree
// owns its records, so resolution annotates them in place; adapter
// input is never mutated.
func (c *Compiled) Resolve(discovered map[string][]ir.Relationship) {
	if len(discovered) == 0 {
		return
	}
	for path, rec := range c.records {
		if extra, ok := discovered[path]; ok {
			rec.Relationships = MergeRelationships(rec.Relationships, extra)
		}
	}
}
