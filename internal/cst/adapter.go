package cst

import "bigocheck/internal/lang"

// Adapter maps one language's tree-sitter node types onto the loop, function,
// and call shapes the walker understands. Sort and library patterns come from
// the language profile so both analysis paths share one vocabulary.
type Adapter struct {
	Profile      *lang.Profile
	LoopKinds    map[string]string
	FuncKinds    map[string]bool
	CallKinds    map[string]bool
	SortCalls    []string
	LibraryCalls []string
}

// AdapterFor returns the node-type table for a profile's language.
func AdapterFor(profile *lang.Profile) *Adapter {
	a := &Adapter{
		Profile:      profile,
		SortCalls:    profile.SortCalls,
		LibraryCalls: profile.LibraryCalls,
	}

	switch profile.Tag {
	case "python":
		a.LoopKinds = map[string]string{"for_statement": "for", "while_statement": "while"}
		a.FuncKinds = kinds("function_definition")
		a.CallKinds = kinds("call")
	case "javascript", "typescript":
		a.LoopKinds = map[string]string{
			"for_statement":    "for",
			"for_in_statement": "for-in",
			"while_statement":  "while",
			"do_statement":     "do-while",
		}
		a.FuncKinds = kinds("function_declaration", "generator_function_declaration",
			"method_definition", "function_expression")
		a.CallKinds = kinds("call_expression")
	case "java":
		a.LoopKinds = map[string]string{
			"for_statement":          "for",
			"enhanced_for_statement": "for-each",
			"while_statement":        "while",
			"do_statement":           "do-while",
		}
		a.FuncKinds = kinds("method_declaration", "constructor_declaration")
		a.CallKinds = kinds("method_invocation")
	case "c", "cpp":
		a.LoopKinds = map[string]string{
			"for_statement":   "for",
			"while_statement": "while",
			"do_statement":    "do-while",
		}
		a.FuncKinds = kinds("function_definition")
		a.CallKinds = kinds("call_expression")
	case "go":
		a.LoopKinds = map[string]string{"for_statement": "for"}
		a.FuncKinds = kinds("function_declaration", "method_declaration")
		a.CallKinds = kinds("call_expression")
	default:
		a.LoopKinds = map[string]string{}
		a.FuncKinds = map[string]bool{}
		a.CallKinds = map[string]bool{}
	}

	return a
}

func kinds(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
