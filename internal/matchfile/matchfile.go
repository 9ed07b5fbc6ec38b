// Package matchfile reads coarse matcher output from a YAML file and
// resolves it against two parsed trees.
//
// The format lists match records in matcher order. Each record either
// acknowledges the synthetic roots or names one node per side by its
// byte span and kind:
//
//	matches:
//	  - root: true
//	  - src: {start: 0, end: 120, kind: function_declaration}
//	    dst: {start: 0, end: 131, kind: function_declaration}
package matchfile

import (
	"fmt"
	"os"

	yaml "github.com/goccy/go-yaml"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/graft"
	"github.com/jward/graft/tstree"
)

// Span identifies a node by its byte range and kind within one tree.
// Kind may be empty, in which case the outermost node with the range
// wins.
type Span struct {
	Start uint32 `yaml:"start"`
	End   uint32 `yaml:"end"`
	Kind  string `yaml:"kind,omitempty"`
}

func (s Span) String() string {
	if s.Kind == "" {
		return fmt.Sprintf("[%d,%d)", s.Start, s.End)
	}
	return fmt.Sprintf("[%d,%d) %s", s.Start, s.End, s.Kind)
}

// Record is one coarse match entry. Root records carry no spans.
type Record struct {
	Root bool  `yaml:"root,omitempty"`
	Src  *Span `yaml:"src,omitempty"`
	Dst  *Span `yaml:"dst,omitempty"`
}

// File is a decoded match file.
type File struct {
	Matches []Record `yaml:"matches"`
}

// Load reads and decodes a YAML match file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("matchfile: read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("matchfile: decode %s: %w", path, err)
	}
	return &f, nil
}

// Resolve maps the file's spans to nodes of the two parsed trees,
// producing records ready for graft.BuildMapping. Every span must name
// an existing node exactly. Absent sides stay nil so the builder can
// apply its own consistency rules.
func Resolve(f *File, srcRoot, dstRoot graft.Node) ([]graft.MatchRecord, error) {
	records := make([]graft.MatchRecord, 0, len(f.Matches))
	for i, rec := range f.Matches {
		out := graft.MatchRecord{Root: rec.Root}
		if rec.Src != nil {
			n, err := findSpan(srcRoot, *rec.Src)
			if err != nil {
				return nil, fmt.Errorf("matchfile: match %d: source %w", i, err)
			}
			out.Src = n
		}
		if rec.Dst != nil {
			n, err := findSpan(dstRoot, *rec.Dst)
			if err != nil {
				return nil, fmt.Errorf("matchfile: match %d: destination %w", i, err)
			}
			out.Dst = n
		}
		records = append(records, out)
	}
	return records, nil
}

// findSpan descends from root to the node covering the span exactly.
// At each level it follows the unique child whose range contains the
// span; node ranges at one level are disjoint, so the walk is a single
// root-to-leaf path.
func findSpan(root graft.Node, s Span) (graft.Node, error) {
	tn, ok := root.(tstree.Node)
	if !ok {
		return nil, fmt.Errorf("span %s: tree is not a tree-sitter tree", s)
	}

	for n := tn.Unwrap(); n != nil; {
		if n.StartByte() == s.Start && n.EndByte() == s.End && (s.Kind == "" || n.Type() == s.Kind) {
			return tstree.Wrap(n), nil
		}
		var next *sitter.Node
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			if c.StartByte() <= s.Start && c.EndByte() >= s.End {
				next = c
				break
			}
		}
		n = next
	}
	return nil, fmt.Errorf("span %s: no such node", s)
}
