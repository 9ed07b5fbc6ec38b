package matchfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smacker/go-tree-sitter/golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/graft/tstree"
)

func parseGo(t *testing.T, src string) *tstree.Tree {
	t.Helper()
	tree, err := tstree.Parse(context.Background(), []byte(src), golang.GetLanguage())
	require.NoError(t, err)
	return tree
}

func writeMatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matches.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeMatchFile(t, `matches:
  - root: true
  - src: {start: 0, end: 12, kind: package_clause}
    dst: {start: 0, end: 12, kind: package_clause}
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Matches, 2)

	assert.True(t, f.Matches[0].Root)
	assert.Nil(t, f.Matches[0].Src)

	require.NotNil(t, f.Matches[1].Src)
	assert.Equal(t, uint32(0), f.Matches[1].Src.Start)
	assert.Equal(t, uint32(12), f.Matches[1].Src.End)
	assert.Equal(t, "package_clause", f.Matches[1].Src.Kind)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	// "package main" occupies bytes 0-12 in both versions.
	before := parseGo(t, "package main\n")
	after := parseGo(t, "package main\n")

	f := &File{Matches: []Record{
		{Root: true},
		{
			Src: &Span{Start: 0, End: 12, Kind: "package_clause"},
			Dst: &Span{Start: 0, End: 12, Kind: "package_clause"},
		},
	}}

	records, err := Resolve(f, before.Root(), after.Root())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].Root)
	assert.Nil(t, records[0].Src)

	require.NotNil(t, records[1].Src)
	assert.Equal(t, "package_clause", records[1].Src.Kind())
	require.NotNil(t, records[1].Dst)
	assert.Equal(t, "package_clause", records[1].Dst.Kind())
}

func TestResolve_KindDisambiguates(t *testing.T) {
	// package_identifier "main" shares no span with package_clause, but
	// the clause and the whole file disagree only by kind when the file
	// has a single declaration. Ask for the inner node explicitly.
	tree := parseGo(t, "package main\n")

	f := &File{Matches: []Record{{
		Src: &Span{Start: 8, End: 12, Kind: "package_identifier"},
		Dst: &Span{Start: 8, End: 12, Kind: "package_identifier"},
	}}}

	records, err := Resolve(f, tree.Root(), tree.Root())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "package_identifier", records[0].Src.Kind())
}

func TestResolve_OneSidedRecordPassesThrough(t *testing.T) {
	// Consistency rules belong to the builder; the resolver keeps the
	// absent side nil.
	tree := parseGo(t, "package main\n")

	f := &File{Matches: []Record{{
		Src: &Span{Start: 0, End: 12, Kind: "package_clause"},
	}}}

	records, err := Resolve(f, tree.Root(), tree.Root())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotNil(t, records[0].Src)
	assert.Nil(t, records[0].Dst)
}

func TestResolve_UnknownSpanFails(t *testing.T) {
	tree := parseGo(t, "package main\n")

	f := &File{Matches: []Record{{
		Src: &Span{Start: 3, End: 7},
		Dst: &Span{Start: 0, End: 12},
	}}}

	_, err := Resolve(f, tree.Root(), tree.Root())
	assert.ErrorContains(t, err, "no such node")
}
