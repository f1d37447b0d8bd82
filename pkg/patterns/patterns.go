// Package patterns verifies design-pattern claims against source code.
//
// Each predicate checks for structural evidence of a pattern, not
// proof. Predicates are intentionally permissive: it is better to
// verify a module that loosely matches than to miss one that clearly
// does. Verification is one-way; a verified claim is never demoted.
package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// StructuralPredicate reports whether the source text of a single file
// carries structural evidence for a pattern.
type StructuralPredicate func(source string) bool

// Registry maps pattern names to their predicates.
type Registry struct {
	predicates map[string]StructuralPredicate
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{predicates: make(map[string]StructuralPredicate)}
}

// Register adds or replaces the predicate for a pattern name.
func (r *Registry) Register(name string, pred StructuralPredicate) {
	r.predicates[name] = pred
}

// Lookup returns the predicate for a pattern, if one is registered.
func (r *Registry) Lookup(name string) (StructuralPredicate, bool) {
	pred, ok := r.predicates[name]
	return pred, ok
}

// Names returns the registered pattern names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.predicates))
	for name := range r.predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with predicates for the nine
// recognized GoF patterns. The predicates are textual and span the
// supported ecosystems (Go, Rust, TypeScript, Python) rather than
// parsing any single language.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("Observer", checkObserver)
	r.Register("Strategy", checkStrategy)
	r.Register("Facade", checkFacade)
	r.Register("Builder", checkBuilder)
	r.Register("Factory", checkFactory)
	r.Register("Adapter", checkAdapter)
	r.Register("Decorator", checkDecorator)
	r.Register("Singleton", checkSingleton)
	r.Register("Command", checkCommand)
	return r
}

func containsAny(source string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(source, ind) {
			return true
		}
	}
	return false
}

var (
	goInterfaceRe   = regexp.MustCompile(`(?m)^\s*type\s+\w+\s+interface\s*\{`)
	rustTraitRe     = regexp.MustCompile(`(?m)^\s*(pub\s+)?trait\s+\w+`)
	tsInterfaceRe   = regexp.MustCompile(`(?m)^\s*(export\s+)?(abstract\s+class|interface)\s+\w+`)
	pyAbstractRe    = regexp.MustCompile(`(?m)(ABC\)|abstractmethod|Protocol\))`)
	observerNameRe  = regexp.MustCompile(`(?i)\b(subscribe|unsubscribe|notify|on_event|onEvent|on_update|onUpdate|on_change|onChange|emit|publish|add_listener|addListener|remove_listener|removeListener)\s*\(`)
	builderMethodRe = regexp.MustCompile(`(?i)\b(fn|func|def)\s+(\(\w+\s+\*?\w+\)\s+)?build\w*\s*\(`)
	factoryNameRe   = regexp.MustCompile(`(?i)\b(fn|func|def)\s+(new|create|make)_?\w*\s*\(`)
	commandNameRe   = regexp.MustCompile(`(?i)\b(execute|exec|invoke|perform|undo|redo)\s*\(`)
)

// hasAbstraction reports a behavior contract in any supported language:
// a Go interface, a Rust trait, a TS interface or abstract class, or a
// Python ABC/Protocol.
func hasAbstraction(source string) bool {
	return goInterfaceRe.MatchString(source) ||
		rustTraitRe.MatchString(source) ||
		tsInterfaceRe.MatchString(source) ||
		pyAbstractRe.MatchString(source)
}

// checkObserver looks for channel types, callback parameters, or
// event-related method names.
func checkObserver(source string) bool {
	indicators := []string{
		"chan ", "chan<-", "<-chan",
		"mpsc::", "broadcast::Sender", "watch::Sender", "crossbeam_channel",
		"Box<dyn Fn", "Arc<dyn Fn", "impl Fn(", "impl FnMut(", "impl FnOnce(",
		"EventEmitter", "addEventListener",
		"Callable[",
	}
	if containsAny(source, indicators) {
		return true
	}
	return observerNameRe.MatchString(source)
}

// checkStrategy looks for an interchangeable behavior contract.
func checkStrategy(source string) bool {
	return hasAbstraction(source)
}

// checkFacade looks for re-exports or a simplified entry point over
// submodules.
func checkFacade(source string) bool {
	indicators := []string{
		"pub use ", "pub mod ",
		"export * from", "export {", "export default",
		"__all__",
	}
	if containsAny(source, indicators) {
		return true
	}
	// A Go facade file typically wraps subpackages behind one type.
	return strings.Count(source, "\nimport (") > 0 &&
		strings.Contains(source, "// Facade")
}

// checkBuilder looks for chained setters returning the receiver type
// or a build method.
func checkBuilder(source string) bool {
	indicators := []string{
		"fn build(self)", "fn build(&self)", "fn build(&mut self)",
		") *Builder", "return b\n", "return self\n", "return this;",
	}
	if containsAny(source, indicators) {
		return true
	}
	return builderMethodRe.MatchString(source)
}

// checkFactory looks for constructor-style functions or functions
// returning abstractions.
func checkFactory(source string) bool {
	indicators := []string{
		"-> Box<dyn", "-> Arc<dyn", "-> Rc<dyn", "-> impl ",
	}
	if containsAny(source, indicators) {
		return true
	}
	return factoryNameRe.MatchString(source) && hasAbstraction(source)
}

// checkAdapter looks for a wrapper type alongside a contract
// implementation.
func checkAdapter(source string) bool {
	wrapped := containsAny(source, []string{
		"struct ", "class ",
	})
	return wrapped && hasAbstraction(source)
}

// checkDecorator looks for a type holding an instance of the same
// abstraction it implements.
func checkDecorator(source string) bool {
	indicators := []string{
		"Box<dyn", "Arc<dyn",
	}
	if containsAny(source, indicators) && hasAbstraction(source) {
		return true
	}
	// A Go decorator embeds or holds the interface it satisfies.
	return goInterfaceRe.MatchString(source) && strings.Contains(source, "next ")
}

// checkSingleton looks for lazy static initialization or instance
// accessors.
func checkSingleton(source string) bool {
	indicators := []string{
		"sync.Once", "OnceLock", "OnceCell", "once_cell::sync::Lazy",
		"lazy_static!", "static ref ",
		"fn instance()", "fn get_instance()", "func Instance()", "getInstance(",
		"_instance",
	}
	return containsAny(source, indicators)
}

// checkCommand looks for execute-style contracts or dispatch enums.
func checkCommand(source string) bool {
	return hasAbstraction(source) && commandNameRe.MatchString(source)
}
