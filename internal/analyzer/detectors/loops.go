package detectors

import (
	"strings"

	"bigocheck/internal/lang"
	"bigocheck/internal/models"
)

// LoopScan is the nesting tracker's output for one preprocessed snippet.
// Chain holds the bound factors of whichever branch reached the maximum
// nesting depth first.
type LoopScan struct {
	Count    int
	MaxDepth int
	Chain    []models.ComplexityClass
	Bounds   []string // raw bound text per counted loop, in detection order
}

type loopScope struct {
	level int
	bound models.ComplexityClass
}

// TrackLoops runs the one-pass nesting state machine over preprocessed text.
// Brace languages scope by unmatched open-brace count; indentation languages
// scope by leading whitespace. Braces are counted textually, so multi-line
// loop headers can be misjudged; that is a known heuristic limit.
func TrackLoops(text string, profile *lang.Profile) LoopScan {
	scan := LoopScan{Bounds: make([]string, 0, 4)}
	var stack []loopScope
	braceDepth := 0

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		opens := 0
		if profile.Blocks == lang.BlockBraces {
			braceDepth -= strings.Count(line, "}")
			if braceDepth < 0 {
				braceDepth = 0
			}
			for len(stack) > 0 && stack[len(stack)-1].level > braceDepth {
				stack = stack[:len(stack)-1]
			}
			opens = strings.Count(line, "{")
		} else {
			indent := leadingWhitespace(line)
			for len(stack) > 0 && stack[len(stack)-1].level >= indent {
				stack = stack[:len(stack)-1]
			}
		}

		if pat, capture, ok := matchLoop(line, profile); ok {
			scan.Count++
			bound := ExtractBound(pat.Bound, capture)
			scan.Bounds = append(scan.Bounds, bound)

			class := ClassifyBound(bound)
			if LooksLogarithmic(line) {
				class = models.ClassLogarithmic
			}

			level := braceDepth + opens
			if profile.Blocks == lang.BlockIndent {
				level = leadingWhitespace(line)
			}
			stack = append(stack, loopScope{level: level, bound: class})

			if len(stack) > scan.MaxDepth {
				scan.MaxDepth = len(stack)
				scan.Chain = make([]models.ComplexityClass, len(stack))
				for i, s := range stack {
					scan.Chain[i] = s.bound
				}
			}
		}

		braceDepth += opens
	}

	return scan
}

func matchLoop(line string, profile *lang.Profile) (lang.LoopPattern, string, bool) {
	for _, pat := range profile.Loops {
		m := pat.Regex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		capture := ""
		if len(m) > 1 {
			capture = m[1]
		}
		return pat, capture, true
	}
	return lang.LoopPattern{}, "", false
}

func leadingWhitespace(line string) int {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(line)
}
