package models

type ComplexityClass int

const (
	ClassUnknown ComplexityClass = iota
	ClassConstant
	ClassLogarithmic
	ClassLinear
	ClassLinearithmic
	ClassQuadratic
	ClassCubic
	ClassExponential
	ClassFactorial
)

func (c ComplexityClass) String() string {
	switch c {
	case ClassConstant:
		return "O(1)"
	case ClassLogarithmic:
		return "O(log n)"
	case ClassLinear:
		return "O(n)"
	case ClassLinearithmic:
		return "O(n log n)"
	case ClassQuadratic:
		return "O(n^2)"
	case ClassCubic:
		return "O(n^3)"
	case ClassExponential:
		return "O(2^n)"
	case ClassFactorial:
		return "O(n!)"
	default:
		return "O(?)"
	}
}

// Complexity pairs a class with an advisory confidence. Only the class rank
// participates in dominance resolution; confidence is informational.
type Complexity struct {
	Class      ComplexityClass
	Confidence float64
}

type LoopStats struct {
	Count    int `json:"count"`
	MaxDepth int `json:"maxDepth"`
}

type TimeEstimate struct {
	BigO       string  `json:"bigO"`
	Confidence float64 `json:"confidence"`
}

// AnalysisResult is the single output shape of every analysis call, whichever
// path produced it.
type AnalysisResult struct {
	Loops LoopStats    `json:"loops"`
	Tags  []string     `json:"tags"`
	Time  TimeEstimate `json:"time"`
	Why   []string     `json:"why"`
}

func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Tags: make([]string, 0),
		Why:  make([]string, 0),
	}
}

// AddTag appends a tag unless it is already present, preserving first-seen order.
func (ar *AnalysisResult) AddTag(tag string) {
	for _, t := range ar.Tags {
		if t == tag {
			return
		}
	}
	ar.Tags = append(ar.Tags, tag)
}

func (ar *AnalysisResult) AddWhy(reason string) {
	ar.Why = append(ar.Why, reason)
}

// PrependWhy puts a rationale entry ahead of everything already recorded.
// Used by the fallback controller to disclose that the structural path failed.
func (ar *AnalysisResult) PrependWhy(reason string) {
	ar.Why = append([]string{reason}, ar.Why...)
}

// RecursionSignal describes one self-recursive function found in the input.
// ExtraCalls is the number of references beyond the first (the definition).
type RecursionSignal struct {
	Name       string
	ExtraCalls int
	Hint       ComplexityClass
}

// LoopObservation is one loop seen during a syntax-tree walk.
type LoopObservation struct {
	Kind  string
	Depth int
	Bound ComplexityClass
}

// NormalizedIR is the language-agnostic structure the CST adapter produces.
// It carries everything the classifier needs so the structural path and the
// lexical path can share the same downstream logic.
type NormalizedIR struct {
	Language     string
	Loops        []LoopObservation
	Recursion    []RecursionSignal
	SortCalls    []string
	LibraryCalls []string
}
