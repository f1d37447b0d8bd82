package patterns

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/GitSmart86/archidoc/pkg/ir"
)

// defaultSourceExts mirrors the extensions the adapters emit source
// file references for.
var defaultSourceExts = []string{".go", ".rs", ".ts", ".js", ".py"}

// Verifier promotes planned pattern claims to verified when structural
// evidence is found in the module's source directory.
type Verifier struct {
	Registry    *Registry
	SourceExts  []string
	Concurrency int
}

// NewVerifier returns a verifier over the default registry.
func NewVerifier() *Verifier {
	return &Verifier{Registry: DefaultRegistry(), Concurrency: 8}
}

// Promote scans every record with a planned pattern claim and promotes
// it to verified when the registered predicate passes against any
// source file in the record's directory. Verified claims are left
// untouched, so a second run over the same records is a no-op.
//
// Records are mutated in place. Returns the number promoted.
func (v *Verifier) Promote(records []ir.ModuleRecord) int {
	exts := v.SourceExts
	if len(exts) == 0 {
		exts = defaultSourceExts
	}
	concurrency := v.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	p := pool.New().WithMaxGoroutines(concurrency)
	var mu sync.Mutex
	promoted := 0

	for i := range records {
		rec := &records[i]
		if rec.PatternStatus != ir.PatternPlanned {
			continue
		}
		pred, ok := v.Registry.Lookup(rec.Pattern)
		if !ok {
			continue
		}
		p.Go(func() {
			dir := filepath.Dir(rec.SourceFile)
			if !anySourceMatches(dir, exts, pred) {
				return
			}
			mu.Lock()
			rec.PatternStatus = ir.PatternVerified
			promoted++
			mu.Unlock()
		})
	}
	p.Wait()

	return promoted
}

// anySourceMatches reads every source file directly inside dir and
// reports whether the predicate passes for any of them.
func anySourceMatches(dir string, exts []string, pred StructuralPredicate) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, ext := range exts {
			if strings.HasSuffix(entry.Name(), ext) {
				names = append(names, entry.Name())
				break
			}
		}
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if pred(string(data)) {
			return true
		}
	}
	return false
}
