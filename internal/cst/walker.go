package cst

import (
	"regexp"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"bigocheck/internal/analyzer/detectors"
	"bigocheck/internal/models"
)

// snippetLen bounds recorded call snippets for display.
const snippetLen = 48

// Walk performs one depth-first traversal of a parse tree, producing the
// Normalized IR: loop observations with nesting depth and a bound-class
// hint, recursion signals, and deduplicated sort/library call snippets.
func Walk(root *sitter.Node, source []byte, tag string, adapter *Adapter) *models.NormalizedIR {
	w := &walker{
		source:  source,
		adapter: adapter,
		ir: &models.NormalizedIR{
			Language: tag,
		},
		seenCalls: make(map[string]bool),
		seenFuncs: make(map[string]bool),
	}
	w.visit(root, 0)
	return w.ir
}

type walker struct {
	source    []byte
	adapter   *Adapter
	ir        *models.NormalizedIR
	seenCalls map[string]bool
	seenFuncs map[string]bool
}

func (w *walker) visit(node *sitter.Node, depth int) {
	kind := node.Kind()

	if loopKind, ok := w.adapter.LoopKinds[kind]; ok {
		depth++
		bound := detectors.ClassifyLoopLine(headerLine(w.text(node)), w.adapter.Profile)
		w.ir.Loops = append(w.ir.Loops, models.LoopObservation{
			Kind:  loopKind,
			Depth: depth,
			Bound: bound,
		})
	}

	if w.adapter.CallKinds[kind] {
		w.recordCall(w.text(node))
	}

	if w.adapter.FuncKinds[kind] {
		w.recordRecursion(node)
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		w.visit(node.Child(i), depth)
	}
}

func (w *walker) recordCall(text string) {
	snippet := truncate(text, snippetLen)
	if w.seenCalls[snippet] {
		return
	}
	for _, p := range w.adapter.SortCalls {
		if strings.Contains(text, p) {
			w.seenCalls[snippet] = true
			w.ir.SortCalls = append(w.ir.SortCalls, snippet)
			return
		}
	}
	for _, p := range w.adapter.LibraryCalls {
		if strings.Contains(text, p) {
			w.seenCalls[snippet] = true
			w.ir.LibraryCalls = append(w.ir.LibraryCalls, snippet)
			return
		}
	}
}

// recordRecursion applies the lexical self-call counting rules to one
// function definition's subtree text.
func (w *walker) recordRecursion(node *sitter.Node) {
	name := functionName(node, w.source)
	if name == "" || w.seenFuncs[name] {
		return
	}
	w.seenFuncs[name] = true

	subtree := w.text(node)
	callRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*\(`)
	occurrences := len(callRe.FindAllStringIndex(subtree, -1))
	if occurrences <= 1 {
		return
	}

	hint := models.ClassLinear
	switch {
	case multipliesSelf(subtree, callRe):
		hint = models.ClassFactorial
	case occurrences-1 >= 2:
		hint = models.ClassExponential
	}

	w.ir.Recursion = append(w.ir.Recursion, models.RecursionSignal{
		Name:       name,
		ExtraCalls: occurrences - 1,
		Hint:       hint,
	})
}

func multipliesSelf(subtree string, callRe *regexp.Regexp) bool {
	for _, line := range strings.Split(subtree, "\n") {
		if strings.Contains(line, "return") && strings.Contains(line, "*") && callRe.MatchString(line) {
			return true
		}
	}
	return false
}

func (w *walker) text(node *sitter.Node) string {
	return string(w.source[node.StartByte():node.EndByte()])
}

// functionName pulls the defined name out of a function node: the "name"
// field where the grammar has one, otherwise down the declarator chain
// (C-family definitions).
func functionName(node *sitter.Node, source []byte) string {
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return string(source[nameNode.StartByte():nameNode.EndByte()])
	}
	decl := node.ChildByFieldName("declarator")
	for decl != nil {
		if decl.Kind() == "identifier" || decl.Kind() == "field_identifier" {
			return string(source[decl.StartByte():decl.EndByte()])
		}
		next := decl.ChildByFieldName("declarator")
		if next == nil {
			break
		}
		decl = next
	}
	return ""
}

func headerLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= n {
		return s
	}
	return s[:n]
}
