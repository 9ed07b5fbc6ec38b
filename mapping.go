package graft

import "iter"

// Mapping is a bidirectional, injective correspondence between nodes of
// a source tree and nodes of a destination tree. It is created empty,
// seeded once from coarse matcher output (BuildMapping), grown to a
// fixpoint by a Completer, and then treated as read-only by consumers.
//
// One Mapping serves exactly one (source tree, destination tree) pair.
// It is not safe for concurrent use; a pipeline processing many file
// pairs gives each pair its own Mapping.
type Mapping struct {
	src *registry
	dst *registry

	srcToDst map[ident]ident
	dstToSrc map[ident]ident

	// order records source idents in first-Put order so Pairs iterates
	// deterministically across calls; ordered guards against duplicate
	// entries when a displaced source is mapped again.
	order   []ident
	ordered map[ident]bool
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{
		src:      newRegistry(sourceSide),
		dst:      newRegistry(destSide),
		srcToDst: make(map[ident]ident),
		dstToSrc: make(map[ident]ident),
		ordered:  make(map[ident]bool),
	}
}

// HasSource reports whether the source-tree node has a mapped partner.
func (m *Mapping) HasSource(n Node) bool {
	id, ok := m.src.lookup(n)
	if !ok {
		return false
	}
	_, mapped := m.srcToDst[id]
	return mapped
}

// HasDestination reports whether the destination-tree node has a mapped
// partner.
func (m *Mapping) HasDestination(n Node) bool {
	id, ok := m.dst.lookup(n)
	if !ok {
		return false
	}
	_, mapped := m.dstToSrc[id]
	return mapped
}

// DestinationOf returns the destination-tree partner of a source-tree
// node, or ErrNotMapped if none is recorded.
func (m *Mapping) DestinationOf(n Node) (Node, error) {
	if id, ok := m.src.lookup(n); ok {
		if d, mapped := m.srcToDst[id]; mapped {
			return m.dst.node(d), nil
		}
	}
	return nil, ErrNotMapped
}

// SourceOf returns the source-tree partner of a destination-tree node,
// or ErrNotMapped if none is recorded.
func (m *Mapping) SourceOf(n Node) (Node, error) {
	if id, ok := m.dst.lookup(n); ok {
		if s, mapped := m.dstToSrc[id]; mapped {
			return m.src.node(s), nil
		}
	}
	return nil, ErrNotMapped
}

// Put installs the correspondence src ↔ dst. If either node already had
// a partner, the old partner is displaced and becomes unmapped. Callers
// that must not displace (the completer, for one) check membership
// before calling.
func (m *Mapping) Put(src, dst Node) {
	s := m.src.wrap(src)
	d := m.dst.wrap(dst)

	if old, ok := m.srcToDst[s]; ok {
		delete(m.dstToSrc, old)
	}
	if !m.ordered[s] {
		m.ordered[s] = true
		m.order = append(m.order, s)
	}
	if old, ok := m.dstToSrc[d]; ok {
		delete(m.srcToDst, old)
	}

	m.srcToDst[s] = d
	m.dstToSrc[d] = s
}

// Len returns the number of mapped pairs.
func (m *Mapping) Len() int {
	return len(m.srcToDst)
}

// Pairs returns all current (source, destination) pairs as a lazy,
// restartable sequence. Iteration order is first-mapped order and is
// stable across calls on an unmodified Mapping. Sources displaced by a
// later Put are skipped.
func (m *Mapping) Pairs() iter.Seq2[Node, Node] {
	return func(yield func(Node, Node) bool) {
		for _, s := range m.order {
			d, ok := m.srcToDst[s]
			if !ok {
				continue
			}
			if !yield(m.src.node(s), m.dst.node(d)) {
				return
			}
		}
	}
}
