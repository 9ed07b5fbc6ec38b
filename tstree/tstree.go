// Package tstree adapts tree-sitter syntax trees to graft's Node
// abstraction.
package tstree

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/graft"
)

// Node wraps a tree-sitter node as a graft.Node. The wrapper is a
// comparable value with stable identity: the owning sitter.Tree caches
// node pointers, so wrapping the same underlying node twice yields
// equal values.
type Node struct {
	n *sitter.Node
}

// Wrap adapts a tree-sitter node.
func Wrap(n *sitter.Node) Node {
	return Node{n: n}
}

// Unwrap returns the underlying tree-sitter node.
func (n Node) Unwrap() *sitter.Node {
	return n.n
}

// Children returns all direct children in document order, anonymous
// tokens included. Coarse matchers only see named nodes, so the
// anonymous ones are exactly what completion has left to match.
func (n Node) Children() []graft.Node {
	count := int(n.n.ChildCount())
	children := make([]graft.Node, count)
	for i := 0; i < count; i++ {
		children[i] = Node{n: n.n.Child(i)}
	}
	return children
}

// Kind returns the tree-sitter node type.
func (n Node) Kind() string {
	return n.n.Type()
}

// Elidable is the stock elision predicate for syntax trees: anonymous
// tokens (punctuation, keywords) and comments, the node kinds
// similarity-based matchers skip because they carry no identity of
// their own.
func Elidable(n graft.Node) bool {
	tn, ok := n.(Node)
	if !ok {
		return false
	}
	return !tn.n.IsNamed() || tn.n.Type() == "comment"
}

// Tree owns a parsed tree-sitter tree together with its source bytes,
// keeping both alive for the lifetime of any wrapped node.
type Tree struct {
	ts  *sitter.Tree
	src []byte
}

// Parse parses src with the given grammar.
func Parse(ctx context.Context, src []byte, lang *sitter.Language) (*Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	ts, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tstree: parse: %w", err)
	}
	return &Tree{ts: ts, src: src}, nil
}

// Root returns the tree's root node.
func (t *Tree) Root() graft.Node {
	return Wrap(t.ts.RootNode())
}

// Text returns the source text a node of this tree covers.
func (t *Tree) Text(n graft.Node) string {
	tn, ok := n.(Node)
	if !ok {
		return ""
	}
	return tn.n.Content(t.src)
}
