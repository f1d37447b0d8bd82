// Package tree assembles validated IR records into a compiled module
// tree with a canonical rendering order.
//
// The compiled tree is derived state: built once per invocation,
// consumed by the renderers, validators, and reports, then discarded.
// Rendering order never depends on IR input order; siblings are
// ordered by ascending lexicographic module path, so two equivalent
// payloads in different orders compile to byte-identical artifacts.
package tree

import (
	"fmt"
	"sort"

	"github.com/GitSmart86/archidoc/pkg/ir"
)

// StructuralError halts compilation of the affected tree: a dangling
// parent reference, a parent that contradicts the module path, or a
// module-path collision.
type StructuralError struct {
	ModulePath string
	Message    string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error at '%s': %s", e.ModulePath, e.Message)
}

// Compiled is the assembled tree: module path -> record plus a computed
// parent -> children adjacency.
type Compiled struct {
	records  map[string]*ir.ModuleRecord
	children map[string][]string
	roots    []string
	paths    []string // canonical flat order, root sentinel excluded
	root     *ir.ModuleRecord
}

// Assemble builds the compiled tree from a record batch.
//
// The parent of each record is derived from its module path by dropping
// the trailing segment; a record carrying an explicit parent that
// differs from the derived one is a structural error, as is a parent
// path that resolves to no record in the batch.
func Assemble(records []ir.ModuleRecord) (*Compiled, error) {
	c := &Compiled{
		records:  make(map[string]*ir.ModuleRecord, len(records)),
		children: make(map[string][]string),
	}

	owned := ir.CloneAll(records)
	for i := range owned {
		rec := &owned[i]
		if _, dup := c.records[rec.ModulePath]; dup {
			return nil, &StructuralError{
				ModulePath: rec.ModulePath,
				Message:    "module path declared more than once",
			}
		}
		c.records[rec.ModulePath] = rec
	}

	for i := range owned {
		rec := &owned[i]

		if rec.ModulePath == ir.RootSentinel {
			c.root = rec
			continue
		}

		derived := rec.DerivedParent()
		if rec.Parent != "" && rec.Parent != derived {
			return nil, &StructuralError{
				ModulePath: rec.ModulePath,
				Message: fmt.Sprintf("parent '%s' does not match the path prefix '%s'",
					rec.Parent, derived),
			}
		}

		if derived == "" {
			c.roots = append(c.roots, rec.ModulePath)
		} else {
			if _, ok := c.records[derived]; !ok {
				return nil, &StructuralError{
					ModulePath: rec.ModulePath,
					Message:    fmt.Sprintf("parent '%s' does not resolve to any module", derived),
				}
			}
			c.children[derived] = append(c.children[derived], rec.ModulePath)
		}

		c.paths = append(c.paths, rec.ModulePath)
	}

	sort.Strings(c.roots)
	sort.Strings(c.paths)
	for _, kids := range c.children {
		sort.Strings(kids)
	}

	return c, nil
}

// Get returns the record at the given module path, or nil.
func (c *Compiled) Get(path string) *ir.ModuleRecord {
	return c.records[path]
}

// Has reports whether a module path exists in the tree.
func (c *Compiled) Has(path string) bool {
	_, ok := c.records[path]
	return ok
}

// Roots returns top-level module paths in canonical order.
func (c *Compiled) Roots() []string {
	return c.roots
}

// Children returns the child paths of a module in canonical order.
func (c *Compiled) Children(path string) []string {
	return c.children[path]
}

// Paths returns every module path (root sentinel excluded) in canonical
// order. Because paths are dot-segmented, this flat order is also a
// depth-first traversal with lexicographic siblings.
func (c *Compiled) Paths() []string {
	return c.paths
}

// Modules returns all records (root sentinel excluded) in canonical
// order.
func (c *Compiled) Modules() []*ir.ModuleRecord {
	out := make([]*ir.ModuleRecord, len(c.paths))
	for i, p := range c.paths {
		out[i] = c.records[p]
	}
	return out
}

// Narrative returns the project-root annotation record, or nil when the
// batch carried none.
func (c *Compiled) Narrative() *ir.ModuleRecord {
	return c.root
}

// Len is the number of modules in the tree, root sentinel excluded.
func (c *Compiled) Len() int {
	return len(c.paths)
}

// Records flattens the tree back to an IR batch in canonical order,
// root sentinel first when present. Supports lossless IR egress.
func (c *Compiled) Records() []ir.ModuleRecord {
	out := make([]ir.ModuleRecord, 0, len(c.paths)+1)
	if c.root != nil {
		out = append(out, c.root.Clone())
	}
	for _, p := range c.paths {
		out = append(out, c.records[p].Clone())
	}
	return out
}

// Depth returns how many ancestors of a module are themselves modules
// in this tree. Used by renderers for indentation.
func (c *Compiled) Depth(path string) int {
	depth := 0
	rec := c.records[path]
	if rec == nil {
		return 0
	}
	for parent := rec.DerivedParent(); parent != ""; {
		p, ok := c.records[parent]
		if !ok {
			break
		}
		depth++
		parent = p.DerivedParent()
	}
	return depth
}
