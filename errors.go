package graft

import "errors"

// Sentinel errors returned by graft. Call sites wrap them with context;
// callers distinguish them with errors.Is.
var (
	// ErrNotMapped reports a partner lookup on a node with no recorded
	// correspondence. Recoverable: check HasSource/HasDestination first,
	// or treat as "no mapping yet".
	ErrNotMapped = errors.New("node has no mapped partner")

	// ErrCoarseMatching reports internally inconsistent coarse matcher
	// output: a record mapping one side only, or a both-empty record
	// that is not the root acknowledgment. Fatal for the tree pair; no
	// baseline correspondence can be established.
	ErrCoarseMatching = errors.New("cannot establish baseline correspondence")

	// ErrKindMismatch reports that two positionally aligned, unmapped,
	// elidable children disagree on kind: the coarse matcher and the
	// completer see different tree shapes. Fatal unless the caller opts
	// into SkipMismatchedSubtrees.
	ErrKindMismatch = errors.New("aligned nodes disagree on kind")
)
