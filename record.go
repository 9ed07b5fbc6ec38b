package graft

import "fmt"

// MatchRecord is one entry of a coarse matcher's output: a matched
// (source, destination) node pair, or the acknowledgment of the trees'
// synthetic roots, which carries no nodes and is flagged Root.
type MatchRecord struct {
	Src  Node
	Dst  Node
	Root bool
}

// Pair couples a source-tree node with its matched destination-tree
// node. Pairs drive completion rounds; they are not retained beyond the
// round that produced them.
type Pair struct {
	Src Node
	Dst Node
}

// BuildMapping validates coarse matcher output and loads it into a
// fresh Mapping. Records are applied in order: a record with both nodes
// is installed with Put; the Root acknowledgment is skipped; anything
// else wraps ErrCoarseMatching and aborts construction with no partial
// mapping returned.
//
// The returned pairs are the records just installed, in input order,
// ready to seed a Completer's first round.
func BuildMapping(records []MatchRecord) (*Mapping, []Pair, error) {
	m := NewMapping()
	pairs := make([]Pair, 0, len(records))

	for i, rec := range records {
		switch {
		case rec.Src != nil && rec.Dst != nil:
			m.Put(rec.Src, rec.Dst)
			pairs = append(pairs, Pair{Src: rec.Src, Dst: rec.Dst})
		case rec.Src == nil && rec.Dst == nil && rec.Root:
			// Root acknowledgment: the synthetic roots exist only on the
			// matcher's side of the fence. Nothing to record.
		case rec.Src == nil && rec.Dst == nil:
			return nil, nil, fmt.Errorf("graft: record %d is empty but not flagged as root: %w", i, ErrCoarseMatching)
		case rec.Dst == nil:
			return nil, nil, fmt.Errorf("graft: record %d has a source node but no destination: %w", i, ErrCoarseMatching)
		default:
			return nil, nil, fmt.Errorf("graft: record %d has a destination node but no source: %w", i, ErrCoarseMatching)
		}
	}
	return m, pairs, nil
}
