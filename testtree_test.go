package graft

// testNode is a minimal in-memory tree for exercising the mapping and
// the completer without a parser. Pointer identity gives each node a
// distinct key even when kinds and shapes coincide.
type testNode struct {
	kind     string
	children []*testNode
}

func tn(kind string, children ...*testNode) *testNode {
	return &testNode{kind: kind, children: children}
}

func (n *testNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) Kind() string { return n.kind }

// elideKinds builds an Elider from an explicit kind set.
func elideKinds(kinds ...string) Elider {
	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return func(n Node) bool { return set[n.Kind()] }
}

// collectPairs drains Pairs into a slice for order-sensitive asserts.
func collectPairs(m *Mapping) []Pair {
	var out []Pair
	for src, dst := range m.Pairs() {
		out = append(out, Pair{Src: src, Dst: dst})
	}
	return out
}
