package cst

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
	"golang.org/x/sync/singleflight"
)

// Provider is the external parsing collaborator. Its failures are inputs to
// the fallback controller, never repaired here.
type Provider interface {
	ParseTree(ctx context.Context, source []byte, tag string) (*sitter.Tree, error)
}

// TreeSitterProvider parses through tree-sitter grammars loaded lazily per
// language tag. Loads are memoized: concurrent or repeated requests for the
// same tag share one in-flight load.
type TreeSitterProvider struct {
	mu        sync.RWMutex
	languages map[string]*sitter.Language
	group     singleflight.Group
}

func NewTreeSitterProvider() *TreeSitterProvider {
	return &TreeSitterProvider{languages: make(map[string]*sitter.Language)}
}

func (p *TreeSitterProvider) ParseTree(ctx context.Context, source []byte, tag string) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	language, err := p.language(tag)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("set language %q: %w", tag, err)
	}

	// tree-sitter mutates input buffers through CGO; parse a copy
	buffer := make([]byte, len(source))
	copy(buffer, source)

	tree := parser.Parse(buffer, nil)
	if tree == nil {
		return nil, errors.New("parser returned no tree")
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, fmt.Errorf("parse tree for %q contains errors", tag)
	}
	return tree, nil
}

func (p *TreeSitterProvider) language(tag string) (*sitter.Language, error) {
	p.mu.RLock()
	language, ok := p.languages[tag]
	p.mu.RUnlock()
	if ok {
		return language, nil
	}

	v, err, _ := p.group.Do(tag, func() (interface{}, error) {
		language := grammarFor(tag)
		if language == nil {
			return nil, fmt.Errorf("no grammar for language %q", tag)
		}
		p.mu.Lock()
		p.languages[tag] = language
		p.mu.Unlock()
		return language, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*sitter.Language), nil
}

func grammarFor(tag string) *sitter.Language {
	switch tag {
	case "python":
		return sitter.NewLanguage(tree_sitter_python.Language())
	case "javascript":
		return sitter.NewLanguage(tree_sitter_javascript.Language())
	case "typescript":
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	case "java":
		return sitter.NewLanguage(tree_sitter_java.Language())
	case "c":
		return sitter.NewLanguage(tree_sitter_c.Language())
	case "cpp":
		return sitter.NewLanguage(tree_sitter_cpp.Language())
	case "go":
		return sitter.NewLanguage(tree_sitter_go.Language())
	default:
		return nil
	}
}
