package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"bigocheck/internal/models"
)

type failingProvider struct{}

func (failingProvider) ParseTree(ctx context.Context, source []byte, tag string) (*sitter.Tree, error) {
	return nil, errors.New("grammar fetch failed")
}

func TestAnalyzeStructuralFallsBackOnProviderFailure(t *testing.T) {
	src := "for i in range(n): print(i)"
	engine := NewEngineWithProvider(failingProvider{})

	structural := engine.AnalyzeStructural(context.Background(), src, "python")
	lexical := engine.Analyze(src, "python")

	require.NotEmpty(t, structural.Why)
	assert.Contains(t, structural.Why[0], "fell back to lexical analysis")

	// apart from the fallback disclosure, the result is the lexical one
	assert.Equal(t, lexical.Loops, structural.Loops)
	assert.Equal(t, lexical.Tags, structural.Tags)
	assert.Equal(t, lexical.Time, structural.Time)
	assert.Equal(t, lexical.Why, structural.Why[1:])
}

func TestAnalyzeStructuralPythonLoop(t *testing.T) {
	result := NewEngine().AnalyzeStructural(context.Background(), "for i in range(n): print(i)", "python")
	assert.Equal(t, 1, result.Loops.Count)
	assert.Equal(t, 1, result.Loops.MaxDepth)
	assert.Equal(t, "O(n)", result.Time.BigO)
}

func TestAnalyzeStructuralNestedCLoops(t *testing.T) {
	src := `int sum(int n) {
    int total = 0;
    for (int i = 0; i < n; i++) {
        for (int j = 0; j < n; j++) {
            total += i * j;
        }
    }
    return total;
}`
	result := NewEngine().AnalyzeStructural(context.Background(), src, "c")
	assert.Equal(t, 2, result.Loops.MaxDepth)
	assert.Equal(t, "O(n^2)", result.Time.BigO)
}

func TestStructuralAndLexicalAgreeOnClass(t *testing.T) {
	// both paths must land on the same class when they see the same
	// nesting and recursion signals
	snippets := []struct {
		src string
		tag string
	}{
		{"for i in range(n):\n    for j in range(n):\n        pass", "python"},
		{"function fib(n) {\n  if (n < 2) { return n; }\n  return fib(n - 1) + fib(n - 2);\n}", "javascript"},
		{"int f(void) {\n    int s = 0;\n    for (int i = 0; i < 10; i++) {\n        s += i;\n    }\n    return s;\n}", "c"},
		{"for i in range(10):\n    pass", "python"},
	}
	engine := NewEngine()
	for _, s := range snippets {
		structural := engine.AnalyzeStructural(context.Background(), s.src, s.tag)
		lexical := engine.Analyze(s.src, s.tag)
		assert.Equal(t, lexical.Time.BigO, structural.Time.BigO, "snippet %q", s.src)
	}
}

func TestAnalyzeStructuralDeterministic(t *testing.T) {
	engine := NewEngine()
	src := "for i in range(n):\n    xs.sort()"
	first, err := json.Marshal(engine.AnalyzeStructural(context.Background(), src, "python"))
	require.NoError(t, err)
	second, err := json.Marshal(engine.AnalyzeStructural(context.Background(), src, "python"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassifyIRSortAndLoop(t *testing.T) {
	ir := &models.NormalizedIR{
		Language: "java",
		Loops: []models.LoopObservation{
			{Kind: "for", Depth: 1, Bound: models.ClassLinear},
		},
		SortCalls: []string{"Arrays.sort(arr)"},
	}
	result := classifyIR(ir)
	assert.Equal(t, []string{"sort"}, result.Tags)
	assert.Equal(t, "O(n log n)", result.Time.BigO)
	assert.Equal(t, 1, result.Loops.Count)
}

func TestClassifyIREmpty(t *testing.T) {
	result := classifyIR(&models.NormalizedIR{Language: "python"})
	assert.Equal(t, "O(1)", result.Time.BigO)
	assert.Equal(t, confNoSignal, result.Time.Confidence)
}

func TestDeepestChainTakesFirstMaxBranch(t *testing.T) {
	loops := []models.LoopObservation{
		{Kind: "for", Depth: 1, Bound: models.ClassConstant},
		{Kind: "for", Depth: 2, Bound: models.ClassConstant},
		{Kind: "for", Depth: 1, Bound: models.ClassLinear},
		{Kind: "for", Depth: 2, Bound: models.ClassLinear},
	}
	chain := deepestChain(loops, 2)
	assert.Equal(t, []models.ComplexityClass{models.ClassConstant, models.ClassConstant}, chain)
}
