package golang

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GitSmart86/archidoc/pkg/ir"
)

// DiscoverRelationships derives relationships from import statements
// between the project's own packages. Each edge is labeled "imports"
// over the "go" protocol; only targets that exist as records are kept.
func (a *Adapter) DiscoverRelationships(root string, records []ir.ModuleRecord) (map[string][]ir.Relationship, error) {
	modPath, err := moduleImportPath(root)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(records))
	for _, rec := range records {
		known[rec.ModulePath] = true
	}

	discovered := make(map[string][]ir.Relationship)

	for _, rec := range records {
		if rec.ModulePath == ir.RootSentinel {
			continue
		}
		dir := filepath.Dir(rec.SourceFile)

		imports, err := dirImports(dir)
		if err != nil {
			continue
		}

		seen := make(map[string]bool)
		for _, imp := range imports {
			target, ok := importToModulePath(imp, modPath)
			if !ok || target == rec.ModulePath || !known[target] || seen[target] {
				continue
			}
			seen[target] = true
			discovered[rec.ModulePath] = append(discovered[rec.ModulePath], ir.Relationship{
				Target:   target,
				Label:    "imports",
				Protocol: "go",
			})
		}
		sort.Slice(discovered[rec.ModulePath], func(i, j int) bool {
			return discovered[rec.ModulePath][i].Target < discovered[rec.ModulePath][j].Target
		})
	}

	return discovered, nil
}

// dirImports collects the import paths of every Go file directly in
// dir, ignoring test files.
func dirImports(dir string) ([]string, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		name := fi.Name()
		return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") && name[0] != '.'
	}, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	var imports []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			for _, imp := range file.Imports {
				imports = append(imports, strings.Trim(imp.Path.Value, `"`))
			}
		}
	}
	sort.Strings(imports)
	return imports, nil
}

// importToModulePath maps an internal import path to dot notation.
// External imports report false.
func importToModulePath(imp, modPath string) (string, bool) {
	if imp == modPath {
		return ir.RootSentinel, true
	}
	rel, ok := strings.CutPrefix(imp, modPath+"/")
	if !ok {
		return "", false
	}
	return strings.ReplaceAll(rel, "/", "."), true
}

// moduleImportPath reads the module directive from go.mod.
func moduleImportPath(root string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("reading go.mod: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			return strings.TrimSpace(rest), nil
		}
	}
	return "", fmt.Errorf("no module directive in %s", filepath.Join(root, "go.mod"))
}
