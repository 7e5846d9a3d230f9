package detectors

import (
	"strings"

	"bigocheck/internal/lang"
)

// FindSortCalls returns the profile's sort-call patterns present in the text,
// in pattern order, deduplicated.
func FindSortCalls(text string, profile *lang.Profile) []string {
	return matchPatterns(text, profile.SortCalls)
}

// FindLibraryCalls returns the library-operation patterns present in the
// text. Library calls contribute a tag and rationale only, never a
// complexity candidate.
func FindLibraryCalls(text string, profile *lang.Profile) []string {
	return matchPatterns(text, profile.LibraryCalls)
}

// matchPatterns reports which patterns occur in the text, in pattern order. A
// shorter pattern is subsumed when its every occurrence starts inside a match
// of an earlier pattern (".sort(" inside "Arrays.sort"), so one call site is
// never reported twice.
func matchPatterns(text string, patterns []string) []string {
	var found []string
	var spans [][2]int
	for _, p := range patterns {
		starts := occurrences(text, p)
		if len(starts) == 0 {
			continue
		}
		subsumed := true
		for _, s := range starts {
			if !covered(s, spans) {
				subsumed = false
				break
			}
		}
		if subsumed {
			continue
		}
		for _, s := range starts {
			spans = append(spans, [2]int{s, s + len(p)})
		}
		found = append(found, strings.TrimSuffix(p, "("))
	}
	return found
}

func occurrences(text, pattern string) []int {
	var starts []int
	for from := 0; ; {
		i := strings.Index(text[from:], pattern)
		if i < 0 {
			return starts
		}
		starts = append(starts, from+i)
		from += i + 1
	}
}

func covered(pos int, spans [][2]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}
