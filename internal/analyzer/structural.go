package analyzer

import (
	"context"
	"fmt"
	"strings"

	"bigocheck/internal/analyzer/detectors"
	"bigocheck/internal/cst"
	"bigocheck/internal/lang"
	"bigocheck/internal/models"
)

// AnalyzeStructural runs the fallback-controller protocol: obtain a parse
// tree from the external provider, classify over it, and on any failure run
// the full lexical path instead, disclosing the fallback in the rationale.
// Both paths produce the same result shape.
func (e *Engine) AnalyzeStructural(ctx context.Context, source, languageTag string) *models.AnalysisResult {
	profile := lang.ProfileFor(languageTag)

	tree, err := e.provider.ParseTree(ctx, []byte(source), profile.Tag)
	if err != nil {
		result := e.Analyze(source, languageTag)
		result.PrependWhy(fmt.Sprintf("structural parse unavailable (%v); fell back to lexical analysis", err))
		return result
	}
	defer tree.Close()

	adapter := cst.AdapterFor(profile)
	ir := cst.Walk(tree.RootNode(), []byte(source), profile.Tag, adapter)
	return classifyIR(ir)
}

// classifyIR feeds a Normalized IR through the same candidate pool and
// dominance rules as the lexical path. Loop count and max depth come straight
// from the IR's loop list.
func classifyIR(ir *models.NormalizedIR) *models.AnalysisResult {
	result := models.NewAnalysisResult()
	var pool []models.Complexity

	if len(ir.SortCalls) > 0 {
		result.AddTag("sort")
		result.AddWhy(fmt.Sprintf("sort call detected (%s), typically O(n log n)", strings.Join(ir.SortCalls, "; ")))
		pool = append(pool, models.Complexity{Class: models.ClassLinearithmic, Confidence: confSort})
	}

	if len(ir.LibraryCalls) > 0 {
		result.AddTag("library-ops")
		result.AddWhy(fmt.Sprintf("library operations detected: %s", strings.Join(ir.LibraryCalls, "; ")))
	}

	for _, sig := range ir.Recursion {
		result.AddTag("recursion")
		result.AddWhy(describeRecursion(sig))
		pool = append(pool, models.Complexity{Class: sig.Hint, Confidence: confRecursion})
	}

	maxDepth := 0
	for _, loop := range ir.Loops {
		if loop.Depth > maxDepth {
			maxDepth = loop.Depth
		}
	}
	result.Loops = models.LoopStats{Count: len(ir.Loops), MaxDepth: maxDepth}

	if len(ir.Loops) > 0 {
		class := detectors.NormalizeChain(deepestChain(ir.Loops, maxDepth))
		result.AddWhy(fmt.Sprintf("%d loop node(s), max nesting depth %d, dominant chain %s",
			len(ir.Loops), maxDepth, class))
		pool = append(pool, models.Complexity{Class: class, Confidence: confLoops})
	}

	if len(ir.SortCalls) > 0 && len(ir.Loops) > 0 {
		result.AddWhy("sort combined with loops: keeping the dominant O(n log n) term")
		pool = append(pool, models.Complexity{Class: models.ClassLinearithmic, Confidence: confSortLoop})
	}

	if len(pool) == 0 {
		result.AddWhy("no loops, recursion, or sort calls detected; assuming constant time")
	}

	winner := Resolve(pool)
	result.Time = models.TimeEstimate{BigO: winner.Class.String(), Confidence: winner.Confidence}
	return result
}

// deepestChain reconstructs the bound chain of the branch that first reached
// the maximum nesting depth. Observations arrive in traversal preorder, so
// the most recent observation per depth is that branch's ancestor at the
// moment the maximum is first seen.
func deepestChain(loops []models.LoopObservation, maxDepth int) []models.ComplexityClass {
	current := make([]models.ComplexityClass, maxDepth+1)
	for _, loop := range loops {
		current[loop.Depth] = loop.Bound
		if loop.Depth == maxDepth {
			return current[1 : maxDepth+1]
		}
	}
	return nil
}
