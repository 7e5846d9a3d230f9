package lang

import "regexp"

type BlockStyle int

const (
	BlockBraces BlockStyle = iota
	BlockIndent
)

// BoundKind tells the loop tracker how to pull a bound expression out of a
// loop pattern's single capture group.
type BoundKind int

const (
	// BoundRange: the capture holds range-style arguments; the iteration
	// limit is the stop argument.
	BoundRange BoundKind = iota
	// BoundCondition: the capture holds a continuation condition; the bound
	// is the right-hand operand of its comparison.
	BoundCondition
	// BoundExpr: the capture is the bound expression itself (iterables in
	// for-each loops).
	BoundExpr
	// BoundNone: no capture; the bound defaults to "n".
	BoundNone
)

type LoopPattern struct {
	Regex *regexp.Regexp
	Kind  string // loop kind label used in rationale and IR ("for", "while", ...)
	Bound BoundKind
}

// Profile is the complete per-language knowledge record. Languages are data,
// not types: adding one means adding an entry to the registry table below.
type Profile struct {
	Tag            string
	Blocks         BlockStyle
	LineComments   []string
	BlockComments  [][2]string
	TripleQuoted   bool
	Loops          []LoopPattern
	SortCalls      []string
	LibraryCalls   []string
	FuncSignatures []*regexp.Regexp // capture group 1 = function name
	Reserved       map[string]bool  // keywords excluded from signature matches
}

// DefaultTag is what "auto" (and any unrecognized tag) resolves to. The
// resolution is a fixed documented choice, never content inference.
const DefaultTag = "python"

var registry = map[string]*Profile{
	"python":     pythonProfile(),
	"javascript": cLikeProfile("javascript"),
	"typescript": cLikeProfile("typescript"),
	"java":       cLikeProfile("java"),
	"c":          cLikeProfile("c"),
	"cpp":        cLikeProfile("cpp"),
	"go":         goProfile(),
}

// ProfileFor returns the profile for a supported tag. "auto" and unsupported
// tags deterministically yield the default profile.
func ProfileFor(tag string) *Profile {
	if p, ok := registry[tag]; ok {
		return p
	}
	return registry[DefaultTag]
}

// Tags lists the supported language tags in a stable order.
func Tags() []string {
	return []string{"auto", "python", "javascript", "typescript", "java", "c", "cpp", "go"}
}

func pythonProfile() *Profile {
	return &Profile{
		Tag:          "python",
		Blocks:       BlockIndent,
		LineComments: []string{"#"},
		TripleQuoted: true,
		Loops: []LoopPattern{
			{Regex: regexp.MustCompile(`^\s*for\s+[\w,\s]+\s+in\s+range\s*\(([^)]*)\)`), Kind: "for-range", Bound: BoundRange},
			{Regex: regexp.MustCompile(`^\s*for\s+[\w,\s]+\s+in\s+(.+?)\s*:`), Kind: "for-in", Bound: BoundExpr},
			{Regex: regexp.MustCompile(`^\s*while\s+(.+?)\s*:`), Kind: "while", Bound: BoundCondition},
		},
		SortCalls:    []string{"sorted(", ".sort("},
		LibraryCalls: []string{"map(", "filter(", "max(", "min(", "sum(", "zip(", "reversed("},
		FuncSignatures: []*regexp.Regexp{
			regexp.MustCompile(`^\s*def\s+([A-Za-z_]\w*)\s*\(`),
		},
		Reserved: map[string]bool{},
	}
}

// cLikeProfile covers the brace-delimited languages that share C loop syntax.
// Tag-specific patterns are appended after the shared core so ordering stays
// deterministic.
func cLikeProfile(tag string) *Profile {
	p := &Profile{
		Tag:           tag,
		Blocks:        BlockBraces,
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Loops: []LoopPattern{
			{Regex: regexp.MustCompile(`\bfor\s*\(\s*[\w<>\[\].$]+\s+[\w$]+\s*:\s*([^)]+)\)`), Kind: "for-each", Bound: BoundExpr},
			{Regex: regexp.MustCompile(`\bfor\s*(?:await\s*)?\(\s*(?:const|let|var)?\s*[\w$\[\]{},\s]+\s+(?:of|in)\s+([^)]+)\)`), Kind: "for-of", Bound: BoundExpr},
			{Regex: regexp.MustCompile(`\bfor\s*\([^;)]*;([^;)]*);`), Kind: "for", Bound: BoundCondition},
			{Regex: regexp.MustCompile(`\bwhile\s*\(([^)]*)\)`), Kind: "while", Bound: BoundCondition},
		},
		Reserved: map[string]bool{
			"if": true, "for": true, "while": true, "switch": true, "catch": true,
			"return": true, "new": true, "do": true, "else": true, "sizeof": true,
			"synchronized": true, "function": true, "typeof": true, "delete": true,
		},
	}

	switch tag {
	case "java":
		p.SortCalls = []string{"Arrays.sort", "Collections.sort", ".sort("}
		p.LibraryCalls = []string{".stream(", ".forEach(", "Collections.", "Arrays."}
		p.FuncSignatures = []*regexp.Regexp{
			regexp.MustCompile(`(?:public|private|protected|static|final|\s)+[\w<>\[\],\s]+\s+([A-Za-z_]\w*)\s*\([^)]*\)\s*\{`),
		}
	case "c", "cpp":
		p.SortCalls = []string{"qsort(", "std::sort", "sort("}
		p.LibraryCalls = []string{"memcpy(", "memset(", "strlen(", "strcmp(", "std::"}
		p.FuncSignatures = []*regexp.Regexp{
			regexp.MustCompile(`^[\w:<>\*&\s]+\b([A-Za-z_]\w*)\s*\([^;]*\)\s*\{?\s*$`),
		}
	default: // javascript, typescript
		p.SortCalls = []string{".sort("}
		p.LibraryCalls = []string{".map(", ".filter(", ".reduce(", ".forEach(", ".find(", ".includes(", ".indexOf("}
		p.FuncSignatures = []*regexp.Regexp{
			regexp.MustCompile(`\bfunction\s+([A-Za-z_$][\w$]*)\s*\(`),
			regexp.MustCompile(`\b(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?(?:function\b|\()`),
		}
	}

	return p
}

func goProfile() *Profile {
	return &Profile{
		Tag:           "go",
		Blocks:        BlockBraces,
		LineComments:  []string{"//"},
		BlockComments: [][2]string{{"/*", "*/"}},
		Loops: []LoopPattern{
			{Regex: regexp.MustCompile(`^\s*for\s+.*\brange\s+(\S+)`), Kind: "for-range", Bound: BoundExpr},
			{Regex: regexp.MustCompile(`^\s*for\s+(.+?)\s*\{`), Kind: "for", Bound: BoundCondition},
			{Regex: regexp.MustCompile(`^\s*for\s*\{`), Kind: "for", Bound: BoundNone},
		},
		SortCalls:    []string{"sort.Slice", "sort.Sort", "sort.Ints", "sort.Strings", "slices.Sort"},
		LibraryCalls: []string{"append(", "copy(", "strings.", "maps.", "slices."},
		FuncSignatures: []*regexp.Regexp{
			regexp.MustCompile(`^\s*func\s+(?:\([^)]*\)\s*)?([A-Za-z_]\w*)\s*\(`),
		},
		Reserved: map[string]bool{"if": true, "for": true, "switch": true, "select": true, "return": true},
	}
}
