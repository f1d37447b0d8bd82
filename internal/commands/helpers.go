package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GitSmart86/archidoc/internal/output"
	"github.com/GitSmart86/archidoc/pkg/adapter"
	"github.com/GitSmart86/archidoc/pkg/adapter/golang"
	"github.com/GitSmart86/archidoc/pkg/config"
	"github.com/GitSmart86/archidoc/pkg/ir"
	"github.com/GitSmart86/archidoc/pkg/patterns"
	"github.com/GitSmart86/archidoc/pkg/tree"
)

// newAdapterRegistry returns the registry of built-in adapters.
func newAdapterRegistry() *adapter.Registry {
	reg := adapter.NewRegistry()
	reg.Register(golang.New())
	return reg
}

// pickAdapter selects an adapter by configured language, falling back
// to detection.
func pickAdapter(cfg *config.Config, root string) (adapter.Adapter, error) {
	reg := newAdapterRegistry()
	if cfg.Source.Language != "" && cfg.Source.Language != "auto" {
		a, ok := reg.Lookup(cfg.Source.Language)
		if !ok {
			return nil, fmt.Errorf("unknown source language %q (available: %v)", cfg.Source.Language, reg.Names())
		}
		return a, nil
	}
	return reg.Detect(root)
}

// loadRecords produces the record set for a project: from an IR file
// when fromIR is set, otherwise by scanning the source tree. The
// returned discover map holds adapter-found relationships; it is nil
// for IR input since serialized records already carry their merge
// result.
func loadRecords(cfg *config.Config, root, fromIR string) ([]ir.ModuleRecord, map[string][]ir.Relationship, error) {
	if fromIR != "" {
		data, err := os.ReadFile(fromIR)
		if err != nil {
			return nil, nil, fmt.Errorf("reading IR file: %w", err)
		}
		records, err := ir.Deserialize(data)
		if err != nil {
			return nil, nil, err
		}
		output.Verbose(fmt.Sprintf("loaded %d record(s) from %s", len(records), fromIR))
		return records, nil, nil
	}

	a, err := pickAdapter(cfg, root)
	if err != nil {
		return nil, nil, err
	}
	output.Verbose(fmt.Sprintf("scanning with %s adapter", a.Name()))

	records, err := a.Extract(root)
	if err != nil {
		return nil, nil, err
	}
	if violations := ir.ValidateRecords(records); violations != nil {
		return nil, nil, violations
	}

	discovered, err := a.DiscoverRelationships(root, records)
	if err != nil {
		return nil, nil, err
	}
	return records, discovered, nil
}

// verifyPatterns promotes planned pattern claims backed by structural
// evidence. Mutates records in place.
func verifyPatterns(cfg *config.Config, records []ir.ModuleRecord) int {
	v := patterns.NewVerifier()
	v.SourceExts = cfg.Source.Extensions
	return v.Promote(records)
}

// buildTree assembles and resolves the compiled tree.
func buildTree(records []ir.ModuleRecord, discovered map[string][]ir.Relationship) (*tree.Compiled, error) {
	t, err := tree.Assemble(records)
	if err != nil {
		return nil, err
	}
	if discovered != nil {
		t.Resolve(discovered)
	}
	return t, nil
}

// resolveOut anchors a relative output directory at the project root.
func resolveOut(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// writeArtifact writes one artifact, creating parent directories.
func writeArtifact(outDir, name, content string) error {
	path := filepath.Join(outDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
