package analyzer

import (
	"fmt"
	"strings"

	"bigocheck/internal/analyzer/detectors"
	"bigocheck/internal/cst"
	"bigocheck/internal/lang"
	"bigocheck/internal/models"
)

// Engine estimates the asymptotic time complexity of a source snippet. It is
// stateless across calls; the only shared state lives in the grammar cache of
// the structural provider.
type Engine struct {
	provider cst.Provider
}

func NewEngine() *Engine {
	return &Engine{provider: cst.NewTreeSitterProvider()}
}

// NewEngineWithProvider lets callers substitute the parse-tree collaborator.
func NewEngineWithProvider(p cst.Provider) *Engine {
	return &Engine{provider: p}
}

// Analyze runs the lexical path: strip comments, then pattern-match loops,
// recursion, and sort calls, and resolve the dominant class. It never fails
// for string inputs; a snippet with no signal yields a constant-leaning
// low-confidence result.
func (e *Engine) Analyze(source, languageTag string) *models.AnalysisResult {
	profile := lang.ProfileFor(languageTag)
	text := profile.Strip(source)

	result := models.NewAnalysisResult()
	var pool []models.Complexity

	sorts := detectors.FindSortCalls(text, profile)
	if len(sorts) > 0 {
		result.AddTag("sort")
		result.AddWhy(fmt.Sprintf("sort call detected (%s), typically O(n log n)", strings.Join(sorts, ", ")))
		pool = append(pool, models.Complexity{Class: models.ClassLinearithmic, Confidence: confSort})
	}

	libs := detectors.FindLibraryCalls(text, profile)
	if len(libs) > 0 {
		result.AddTag("library-ops")
		result.AddWhy(fmt.Sprintf("library operations detected: %s", strings.Join(libs, ", ")))
	}

	for _, sig := range detectors.DetectRecursion(text, profile) {
		result.AddTag("recursion")
		result.AddWhy(describeRecursion(sig))
		pool = append(pool, models.Complexity{Class: sig.Hint, Confidence: confRecursion})
	}

	scan := detectors.TrackLoops(text, profile)
	result.Loops = models.LoopStats{Count: scan.Count, MaxDepth: scan.MaxDepth}
	if scan.Count > 0 {
		class := detectors.NormalizeChain(scan.Chain)
		result.AddWhy(fmt.Sprintf("%d loop(s), max nesting depth %d, dominant chain %s",
			scan.Count, scan.MaxDepth, class))
		pool = append(pool, models.Complexity{Class: class, Confidence: confLoops})
	}

	if len(sorts) > 0 && scan.Count > 0 {
		// the dominant term is retained rather than composed with the
		// loop's own class
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

func describeRecursion(sig models.RecursionSignal) string {
	switch sig.Hint {
	case models.ClassFactorial:
		return fmt.Sprintf("recursive function '%s' multiplies its own result, suggesting O(n!)", sig.Name)
	case models.ClassExponential:
		return fmt.Sprintf("recursive function '%s' has %d call sites, suggesting branching recursion O(2^n)", sig.Name, sig.ExtraCalls)
	default:
		return fmt.Sprintf("recursive function '%s' detected, single-branch recursion O(n)", sig.Name)
	}
}
