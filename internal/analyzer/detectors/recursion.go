package detectors

import (
	"regexp"
	"strings"

	"bigocheck/internal/lang"
	"bigocheck/internal/models"
)

type definition struct {
	name  string
	start int // byte offset of the signature match
}

// DetectRecursion scans preprocessed text for self-recursive functions.
// A candidate name with at most one occurrence (its own definition) is not
// flagged. For flagged names the hint is: factorial when the body multiplies
// a recursive call in a return expression, exponential when two or more call
// sites suggest branching recursion, linear otherwise.
func DetectRecursion(text string, profile *lang.Profile) []models.RecursionSignal {
	defs := collectDefinitions(text, profile)
	signals := make([]models.RecursionSignal, 0, 2)

	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.name)
	}

	for i, def := range defs {
		callRe := callPattern(def.name)
		occurrences := len(callRe.FindAllStringIndex(text, -1))
		if occurrences <= 1 {
			continue
		}

		body := text[def.start:]
		if i+1 < len(defs) {
			body = text[def.start:defs[i+1].start]
		}

		hint := models.ClassLinear
		switch {
		case multipliesRecursiveCall(body, names):
			hint = models.ClassFactorial
		case occurrences-1 >= 2:
			hint = models.ClassExponential
		}

		signals = append(signals, models.RecursionSignal{
			Name:       def.name,
			ExtraCalls: occurrences - 1,
			Hint:       hint,
		})
	}

	return signals
}

func collectDefinitions(text string, profile *lang.Profile) []definition {
	var defs []definition
	seen := map[string]bool{}

	for _, line := range splitWithOffsets(text) {
		for _, re := range profile.FuncSignatures {
			m := re.FindStringSubmatch(line.text)
			if m == nil {
				continue
			}
			name := m[1]
			if profile.Reserved[name] || seen[name] {
				break
			}
			seen[name] = true
			defs = append(defs, definition{name: name, start: line.offset})
			break
		}
	}
	return defs
}

// multipliesRecursiveCall looks for a return expression that multiplies its
// result by a call to the function itself or a sibling candidate, the shape
// of factorial-style recursion.
func multipliesRecursiveCall(body string, names []string) bool {
	for _, line := range strings.Split(body, "\n") {
		if !strings.Contains(line, "return") || !strings.Contains(line, "*") {
			continue
		}
		for _, name := range names {
			if callPattern(name).MatchString(line) {
				return true
			}
		}
	}
	return false
}

func callPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*\(`)
}

type offsetLine struct {
	text   string
	offset int
}

func splitWithOffsets(text string) []offsetLine {
	lines := strings.Split(text, "\n")
	out := make([]offsetLine, len(lines))
	offset := 0
	for i, l := range lines {
		out[i] = offsetLine{text: l, offset: offset}
		offset += len(l) + 1
	}
	return out
}
