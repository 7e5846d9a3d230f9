package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bigocheck/internal/lang"
)

func TestAdapterForKnownLanguages(t *testing.T) {
	for _, tag := range []string{"python", "javascript", "typescript", "java", "c", "cpp", "go"} {
		a := AdapterFor(lang.ProfileFor(tag))
		assert.NotEmpty(t, a.LoopKinds, "loop kinds for %s", tag)
		assert.NotEmpty(t, a.FuncKinds, "function kinds for %s", tag)
		assert.NotEmpty(t, a.CallKinds, "call kinds for %s", tag)
	}
}

func TestAdapterSharesProfilePatterns(t *testing.T) {
	p := lang.ProfileFor("java")
	a := AdapterFor(p)
	assert.Equal(t, p.SortCalls, a.SortCalls)
	assert.Equal(t, p.LibraryCalls, a.LibraryCalls)
}

func TestAdapterJavaEnhancedFor(t *testing.T) {
	a := AdapterFor(lang.ProfileFor("java"))
	assert.Equal(t, "for-each", a.LoopKinds["enhanced_for_statement"])
	assert.True(t, a.FuncKinds["method_declaration"])
	assert.True(t, a.CallKinds["method_invocation"])
}
