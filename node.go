package graft

// Node is the minimal tree capability graft needs: an ordered sequence
// of direct children and a discrete kind tag used for coarse equality
// checks. graft never mutates the tree behind a Node.
//
// Implementations must be comparable values with reference identity —
// a pointer, or a small struct wrapping a stable pointer — because
// graft keys identity maps on Node values. Two structurally identical
// nodes at different tree positions must compare unequal.
type Node interface {
	Children() []Node
	Kind() string
}

// side tags which of the two trees an identity belongs to.
type side int

const (
	sourceSide side = iota
	destSide
)

func (s side) String() string {
	if s == sourceSide {
		return "source"
	}
	return "destination"
}

// ident is an opaque identity handle for one node within one tree.
// Identity is positional (assigned on first reference), never derived
// from node content.
type ident struct {
	side side
	ord  int
}

// registry assigns stable idents to the nodes of one tree. Each Mapping
// owns two registries, one per side, so source and destination idents
// can never be confused for one another.
type registry struct {
	side  side
	ids   map[Node]ident
	nodes []Node
}

func newRegistry(s side) *registry {
	return &registry{side: s, ids: make(map[Node]ident)}
}

// wrap returns the node's ident, assigning one on first reference.
func (r *registry) wrap(n Node) ident {
	if id, ok := r.ids[n]; ok {
		return id
	}
	id := ident{side: r.side, ord: len(r.nodes)}
	r.ids[n] = id
	r.nodes = append(r.nodes, n)
	return id
}

// lookup returns the node's ident without assigning one.
func (r *registry) lookup(n Node) (ident, bool) {
	id, ok := r.ids[n]
	return id, ok
}

// node resolves an ident back to its Node. The ident must have been
// issued by this registry.
func (r *registry) node(id ident) Node {
	if id.side != r.side {
		panic("graft: " + id.side.String() + " identity used on " + r.side.String() + " tree")
	}
	return r.nodes[id.ord]
}
