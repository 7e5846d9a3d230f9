package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileForSupportedTags(t *testing.T) {
	for _, tag := range []string{"python", "javascript", "typescript", "java", "c", "cpp", "go"} {
		p := ProfileFor(tag)
		require.NotNil(t, p, "profile for %s", tag)
		assert.Equal(t, tag, p.Tag)
		assert.NotEmpty(t, p.Loops, "loop patterns for %s", tag)
		assert.NotEmpty(t, p.FuncSignatures, "function signatures for %s", tag)
	}
}

func TestProfileForAutoResolvesToDefault(t *testing.T) {
	auto := ProfileFor("auto")
	assert.Equal(t, DefaultTag, auto.Tag)

	// resolution is a fixed choice, identical on every call
	assert.Same(t, auto, ProfileFor("auto"))
	assert.Same(t, auto, ProfileFor(DefaultTag))
}

func TestProfileForUnknownTagResolvesToDefault(t *testing.T) {
	assert.Equal(t, DefaultTag, ProfileFor("cobol").Tag)
	assert.Equal(t, DefaultTag, ProfileFor("").Tag)
}

func TestTagsCoverRegistry(t *testing.T) {
	tags := Tags()
	assert.Contains(t, tags, "auto")
	for tag := range registry {
		assert.Contains(t, tags, tag)
	}
}

func TestBlockStyles(t *testing.T) {
	assert.Equal(t, BlockIndent, ProfileFor("python").Blocks)
	assert.Equal(t, BlockBraces, ProfileFor("c").Blocks)
	assert.Equal(t, BlockBraces, ProfileFor("go").Blocks)
}
