// Package adapter defines the contract between language-specific
// source scanners and the engine, plus the shared annotation grammar
// every scanner feeds records through.
package adapter

import (
	"fmt"
	"sort"

	"github.com/GitSmart86/archidoc/pkg/ir"
)

// Adapter extracts module records from a source tree for one language
// ecosystem.
type Adapter interface {
	// Name is the ecosystem identifier ("go", "rust", ...).
	Name() string

	// Detect reports whether root looks like a project this adapter
	// can scan.
	Detect(root string) bool

	// Extract walks root and returns one record per annotated module,
	// sorted by module path.
	Extract(root string) ([]ir.ModuleRecord, error)

	// DiscoverRelationships derives module-to-module relationships
	// from the code itself (imports, includes), keyed by source module
	// path. These are merged under explicit annotations, never over.
	DiscoverRelationships(root string, records []ir.ModuleRecord) (map[string][]ir.Relationship, error)
}

// Registry holds the available adapters.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry returns an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter under its name.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.Name()] = a
}

// Lookup returns the adapter registered under name.
func (r *Registry) Lookup(name string) (Adapter, bool) {
	a, ok := r.adapters[name]
	return a, ok
}

// Names returns the registered adapter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect picks the first adapter (in name order) whose Detect passes
// for root.
func (r *Registry) Detect(root string) (Adapter, error) {
	for _, name := range r.Names() {
		if a := r.adapters[name]; a.Detect(root) {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no adapter recognizes project at %s (available: %v)", root, r.Names())
}
