package tstree

import (
	"context"
	"testing"

	"github.com/smacker/go-tree-sitter/golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseGo(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := Parse(context.Background(), []byte(src), golang.GetLanguage())
	require.NoError(t, err)
	return tree
}

func TestWrap_StableIdentity(t *testing.T) {
	tree := parseGo(t, "package main\n")
	root := tree.Root()

	// The sitter tree caches node pointers, so wrapping twice yields
	// equal comparable values.
	again := tree.Root()
	assert.Equal(t, root, again)

	a := root.Children()
	b := root.Children()
	require.NotEmpty(t, a)
	assert.Equal(t, a[0], b[0])
}

func TestNode_ChildrenAndKind(t *testing.T) {
	tree := parseGo(t, "package main\n\nfunc f() {}\n")
	root := tree.Root()

	assert.Equal(t, "source_file", root.Kind())

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "package_clause", kids[0].Kind())
	assert.Equal(t, "function_declaration", kids[1].Kind())

	// The function's children include the anonymous func keyword.
	fn := kids[1].Children()
	require.NotEmpty(t, fn)
	assert.Equal(t, "func", fn[0].Kind())
}

func TestElidable(t *testing.T) {
	tree := parseGo(t, "package main\n\n// c\nfunc f() {}\n")
	root := tree.Root()
	kids := root.Children()
	require.Len(t, kids, 3)

	pkg, comment, fn := kids[0], kids[1], kids[2]

	assert.False(t, Elidable(pkg), "package clause carries identity")
	assert.True(t, Elidable(comment), "comments are skipped by matchers")
	assert.False(t, Elidable(fn))
	assert.True(t, Elidable(fn.Children()[0]), "anonymous func keyword")
}

func TestTree_Text(t *testing.T) {
	tree := parseGo(t, "package main\n")
	kids := tree.Root().Children()
	require.Len(t, kids, 1)
	assert.Equal(t, "package main", tree.Text(kids[0]))
}
