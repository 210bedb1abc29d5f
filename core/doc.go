// Package core defines PreparedTree: the rooted binary tree shape the
// p-median dynamic program operates on, plus the sentinel errors raised
// while building or walking one.
//
// A PreparedTree is produced by package prep from an arbitrary rawtree.Tree.
// It is immutable once built: every node carries a post-order Index, and
// every internal node has exactly two children. Nodes are stored in a flat,
// arena-style slice indexed by post-order position, so the bottom-up dynamic
// program (package pmedian) never needs pointer chasing or a visited set —
// it simply iterates indices 0..RootIndex.
//
// Node kinds:
//
//	Leaf     - a tip: Label, Allowed, PriorCovered.
//	Internal - always exactly two children, Left/Right with edge weights.
//
// Errors:
//
//	ErrNilTree          - a PreparedTree method was called on a nil tree.
//	ErrIndexOutOfRange  - a node index is outside [0, len(Nodes)).
//	ErrNotBinary        - an internal node does not have exactly two children,
//	                      or a child index does not precede its parent's.
//	ErrDanglingChild    - a child index does not refer to a valid node.
//	ErrNegativeWeight   - an edge weight is negative.
package core
