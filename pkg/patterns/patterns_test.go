package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyDetectsContracts(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{
			"go interface",
			"package calc\n\ntype Calculator interface {\n\tCalculate(prices []float64) float64\n}\n",
			true,
		},
		{
			"rust trait",
			"pub trait Calculator {\n    fn calculate(&self, prices: &[f64]) -> f64;\n}\n",
			true,
		},
		{
			"typescript interface",
			"export interface Calculator {\n  calculate(prices: number[]): number;\n}\n",
			true,
		},
		{
			"python protocol",
			"class Calculator(Protocol):\n    def calculate(self, prices): ...\n",
			true,
		},
		{
			"plain struct",
			"package calc\n\ntype SimpleCalc struct{}\n",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkStrategy(tt.source))
		})
	}
}

func TestObserverDetection(t *testing.T) {
	assert.True(t, checkObserver("func Events() <-chan Event { return e.ch }"))
	assert.True(t, checkObserver("use std::sync::mpsc::Sender;\npub fn bus() -> mpsc::Sender<Event> {}"))
	assert.True(t, checkObserver("type Bus interface {\n\tSubscribe(fn Handler)\n}"))
	assert.False(t, checkObserver("type Logger struct { path string }"))
}

func TestFacadeDetection(t *testing.T) {
	assert.True(t, checkFacade("pub use crate::calc::Calculator;"))
	assert.True(t, checkFacade("pub mod calc;\npub mod store;"))
	assert.True(t, checkFacade("export * from './calc';"))
	assert.True(t, checkFacade("__all__ = ['Calculator']"))
	assert.False(t, checkFacade("mod calc;\nmod store;"))
}

func TestBuilderDetection(t *testing.T) {
	assert.True(t, checkBuilder("func (b *Builder) WithName(n string) *Builder {\n\tb.name = n\n\treturn b\n}"))
	assert.True(t, checkBuilder("fn build(self) -> Config { self.cfg }"))
	assert.False(t, checkBuilder("func Sum(a, b int) int { return a + b }"))
}

func TestSingletonDetection(t *testing.T) {
	assert.True(t, checkSingleton("var once sync.Once\nfunc Instance() *Pool {}"))
	assert.True(t, checkSingleton("static CONFIG: OnceLock<Config> = OnceLock::new();"))
	assert.False(t, checkSingleton("type Pool struct{}"))
}

func TestCommandDetection(t *testing.T) {
	assert.True(t, checkCommand("type Command interface {\n\tExecute() error\n\tUndo() error\n}"))
	assert.False(t, checkCommand("type Point struct{ X, Y int }"))
}

func TestRegistryDispatch(t *testing.T) {
	r := DefaultRegistry()

	strategy := "pub trait Algo { fn run(&self); }"

	pred, ok := r.Lookup("Strategy")
	require.True(t, ok)
	assert.True(t, pred(strategy))

	pred, ok = r.Lookup("Observer")
	require.True(t, ok)
	assert.False(t, pred("type Point struct{ X int }"))

	_, ok = r.Lookup("UnknownPattern")
	assert.False(t, ok)
}

func TestRegistryNames(t *testing.T) {
	names := DefaultRegistry().Names()

	assert.Len(t, names, 9)
	assert.Contains(t, names, "Observer")
	assert.Contains(t, names, "Singleton")
	// Sorted.
	assert.Equal(t, "Adapter", names[0])
}
