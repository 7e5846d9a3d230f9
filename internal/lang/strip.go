package lang

import (
	"regexp"
	"strings"
)

var tripleQuoted = regexp.MustCompile(`(?s)(""".*?"""|'''.*?''')`)

// Strip removes comments from text using the profile's own syntax: block
// comments, line comments, and (for the triple-quoted languages) docstring
// blocks. It does not track lexical context, so a comment opener inside a
// string literal is stripped as if it were a real comment. Idempotent.
func (p *Profile) Strip(text string) string {
	if p.TripleQuoted {
		text = tripleQuoted.ReplaceAllString(text, "")
	}

	for _, delims := range p.BlockComments {
		text = stripBlocks(text, delims[0], delims[1])
	}

	if len(p.LineComments) == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, prefix := range p.LineComments {
			if idx := strings.Index(line, prefix); idx >= 0 {
				line = line[:idx]
			}
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func stripBlocks(text, open, close string) string {
	for {
		start := strings.Index(text, open)
		if start < 0 {
			return text
		}
		end := strings.Index(text[start+len(open):], close)
		if end < 0 {
			// unterminated block comment swallows the rest
			return text[:start]
		}
		text = text[:start] + text[start+len(open)+end+len(close):]
	}
}
