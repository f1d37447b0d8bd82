// Package golang scans Go projects: package doc comments carry the
// annotations, import statements carry the discovered relationships.
package golang

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/GitSmart86/archidoc/pkg/adapter"
	"github.com/GitSmart86/archidoc/pkg/ir"
)

// Adapter extracts module records from a Go source tree.
type Adapter struct {
	// Exclude lists directory names skipped during the walk.
	Exclude []string

	// Concurrency bounds the parallel directory parses.
	Concurrency int
}

var defaultExclude = []string{"vendor", "node_modules", "testdata", ".git"}

// New returns a Go adapter with default settings.
func New() *Adapter {
	return &Adapter{Exclude: defaultExclude, Concurrency: 8}
}

func (a *Adapter) Name() string { return "go" }

// Detect reports whether root holds a Go module.
func (a *Adapter) Detect(root string) bool {
	_, err := os.Stat(filepath.Join(root, "go.mod"))
	return err == nil
}

// Extract parses every package directory under root and builds one
// record per package with a doc comment. The record's module path is
// the directory path relative to root in dot notation; the root
// package itself maps to the narrative sentinel.
func (a *Adapter) Extract(root string) ([]ir.ModuleRecord, error) {
	dirs, err := a.packageDirs(root)
	if err != nil {
		return nil, err
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	p := pool.New().WithMaxGoroutines(concurrency)
	var mu sync.Mutex
	var records []ir.ModuleRecord
	var errs []error

	for _, dir := range dirs {
		dir := dir
		p.Go(func() {
			rec, ok, err := a.extractDir(root, dir)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if ok {
				records = append(records, rec)
			}
		})
	}
	p.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ModulePath < records[j].ModulePath
	})
	return records, nil
}

// extractDir parses one directory and returns its record, if the
// package carries a doc comment.
func (a *Adapter) extractDir(root, dir string) (ir.ModuleRecord, bool, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		name := fi.Name()
		return strings.HasSuffix(name, ".go") &&
			!strings.HasSuffix(name, "_test.go") &&
			name[0] != '.'
	}, parser.ParseComments)
	if err != nil {
		return ir.ModuleRecord{}, false, fmt.Errorf("parsing %s: %w", dir, err)
	}

	// Pick the doc comment deterministically: lowest file path wins.
	var docFile, docText string
	for _, pkg := range pkgs {
		var paths []string
		for path := range pkg.Files {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			if doc := pkg.Files[path].Doc; doc != nil && strings.TrimSpace(doc.Text()) != "" {
				if docFile == "" || path < docFile {
					docFile = path
					docText = doc.Text()
				}
				break
			}
		}
	}

	if docFile == "" {
		return ir.ModuleRecord{}, false, nil
	}

	rec := adapter.ParseAnnotation(strings.TrimRight(docText, "\n"))
	rec.ModulePath = modulePathFor(root, dir)
	rec.SourceFile = docFile
	if parent := rec.DerivedParent(); parent != "" {
		rec.Parent = parent
	}
	return rec, true, nil
}

// packageDirs walks root and returns every directory containing Go
// files, excluding the configured directory names.
func (a *Adapter) packageDirs(root string) ([]string, error) {
	exclude := a.Exclude
	if len(exclude) == 0 {
		exclude = defaultExclude
	}
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	seen := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (skip[name] || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".go") && !strings.HasSuffix(d.Name(), "_test.go") {
			seen[filepath.Dir(path)] = true
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// modulePathFor converts a package directory to a dot-notation module
// path relative to root. The root directory itself is the narrative
// sentinel.
func modulePathFor(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return ir.RootSentinel
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
}
