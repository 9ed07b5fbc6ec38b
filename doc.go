// Package graft completes partial node correspondences between two
// versions of an ordered syntax tree. A coarse tree matcher supplies an
// incomplete mapping; graft extends it to the node kinds the matcher
// skips, so structural-merge tooling can reason about "the same node in
// both versions" everywhere it matters.
package graft
