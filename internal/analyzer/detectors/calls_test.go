package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bigocheck/internal/lang"
)

func TestFindSortCallsJava(t *testing.T) {
	found := FindSortCalls("Arrays.sort(arr);", lang.ProfileFor("java"))
	assert.Equal(t, []string{"Arrays.sort"}, found)
}

func TestFindSortCallsPython(t *testing.T) {
	found := FindSortCalls("items = sorted(items)", lang.ProfileFor("python"))
	assert.Equal(t, []string{"sorted"}, found)

	assert.Empty(t, FindSortCalls("total = sum(items)", lang.ProfileFor("python")))
}

func TestFindLibraryCalls(t *testing.T) {
	found := FindLibraryCalls("xs.map(f).filter(g)", lang.ProfileFor("javascript"))
	assert.Equal(t, []string{".map", ".filter"}, found)
}

func TestFindSortCallsSubsumesOverlappingPatterns(t *testing.T) {
	// ".sort(" occurs inside "Arrays.sort(" at the same call site and must
	// not be reported as a second finding
	found := FindSortCalls("Arrays.sort(arr); Arrays.sort(brr);", lang.ProfileFor("java"))
	assert.Equal(t, []string{"Arrays.sort"}, found)

	found = FindSortCalls("qsort(xs, n, sizeof(int), cmp);", lang.ProfileFor("c"))
	assert.Equal(t, []string{"qsort"}, found)

	found = FindSortCalls("std::sort(v.begin(), v.end());", lang.ProfileFor("cpp"))
	assert.Equal(t, []string{"std::sort"}, found)
}

func TestFindCallsDeterministicOrder(t *testing.T) {
	// results follow pattern order, not text order; the bare b.sort() call
	// keeps ".sort" alive even though the other two occurrences are covered
	text := "b.sort(); Collections.sort(a); Arrays.sort(c);"
	found := FindSortCalls(text, lang.ProfileFor("java"))
	assert.Equal(t, []string{"Arrays.sort", "Collections.sort", ".sort"}, found)
}
