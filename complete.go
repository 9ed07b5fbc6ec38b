package graft

import "fmt"

// Elider reports whether a node is of a kind the coarse matcher never
// matches independently. Elidable nodes lack identity of their own and
// are interchangeable except for position and kind, which is what makes
// positional completion sound.
type Elider func(Node) bool

// Completer extends a coarse mapping to the node kinds the coarse
// matcher skips, by positionally aligning the children of matched
// parents until no new pairs appear.
type Completer struct {
	elide          Elider
	skipMismatched bool
}

// CompleterOption configures a Completer.
type CompleterOption func(*Completer)

// SkipMismatchedSubtrees makes a kind disagreement abandon alignment of
// the affected sibling list instead of failing the whole completion.
// The subtree below the disagreement stays uncompleted. Default is off:
// a disagreement fails with ErrKindMismatch.
func SkipMismatchedSubtrees() CompleterOption {
	return func(c *Completer) {
		c.skipMismatched = true
	}
}

// NewCompleter creates a Completer using the given elision predicate.
func NewCompleter(elide Elider, opts ...CompleterOption) *Completer {
	c := &Completer{elide: elide}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete grows the mapping to its fixpoint. Starting from the seed
// worklist (the pairs BuildMapping installed), each round aligns the
// children of every pair discovered in the previous round and collects
// the newly matched pairs as the next worklist. Rounds descend one tree
// level at a time; completion stops when a round finds nothing new.
//
// The mapping only ever grows, every node is matched at most once, and
// each sibling list is scanned once, so the total cost is linear in
// tree size and the round count is bounded by tree depth.
func (c *Completer) Complete(m *Mapping, seed []Pair) error {
	worklist := seed
	for len(worklist) > 0 {
		var next []Pair
		for _, p := range worklist {
			found, err := c.alignChildren(m, p.Src, p.Dst)
			if err != nil {
				return err
			}
			next = append(next, found...)
		}
		worklist = next
	}
	return nil
}

// alignChildren runs one two-pointer scan over the ordered children of
// a matched pair. A source child that is already mapped, or that the
// coarse matcher could have matched itself, is skipped; then likewise
// for the destination child. When both cursors rest on unmapped
// elidable children, sibling order alone decides: the kinds must agree,
// and the two are matched. Children past an exhausted cursor are left
// for a later round to reach, or stay unmapped if the lists genuinely
// differ in length.
func (c *Completer) alignChildren(m *Mapping, src, dst Node) ([]Pair, error) {
	sc := src.Children()
	dc := dst.Children()

	var found []Pair
	i, j := 0, 0
	for i < len(sc) && j < len(dc) {
		switch {
		case m.HasSource(sc[i]) || !c.elide(sc[i]):
			i++
		case m.HasDestination(dc[j]) || !c.elide(dc[j]):
			j++
		case sc[i].Kind() != dc[j].Kind():
			if c.skipMismatched {
				return found, nil
			}
			return nil, fmt.Errorf("graft: aligned children %d and %d have kinds %q and %q: %w",
				i, j, sc[i].Kind(), dc[j].Kind(), ErrKindMismatch)
		default:
			m.Put(sc[i], dc[j])
			found = append(found, Pair{Src: sc[i], Dst: dc[j]})
			i++
			j++
		}
	}
	return found, nil
}

// CompleteMatches builds a mapping from coarse matcher output and runs
// it to its fixpoint in one step.
func CompleteMatches(records []MatchRecord, elide Elider, opts ...CompleterOption) (*Mapping, error) {
	m, seed, err := BuildMapping(records)
	if err != nil {
		return nil, err
	}
	if err := NewCompleter(elide, opts...).Complete(m, seed); err != nil {
		return nil, err
	}
	return m, nil
}
