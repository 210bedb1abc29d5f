package core

import "errors"

// Sentinel errors for PreparedTree construction and traversal.
var (
	// ErrNilTree indicates a method was invoked on a nil *PreparedTree.
	ErrNilTree = errors.New("core: nil tree")

	// ErrIndexOutOfRange indicates a node index outside [0, len(Nodes)).
	ErrIndexOutOfRange = errors.New("core: node index out of range")

	// ErrNotBinary indicates an internal node does not have exactly two
	// children, or (from PreparedTree.Validate) that a child index does not
	// precede its parent's index.
	ErrNotBinary = errors.New("core: internal node is not binary")

	// ErrDanglingChild indicates a child index does not refer to a valid node.
	ErrDanglingChild = errors.New("core: dangling child index")

	// ErrNegativeWeight indicates a negative edge weight reached the core model.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// NodeKind tags a Node as either a Leaf or an Internal node.
type NodeKind uint8

const (
	// KindLeaf marks a tip of the tree.
	KindLeaf NodeKind = iota
	// KindInternal marks a two-child internal node.
	KindInternal
)

// Node is a tagged variant: exactly one of the Leaf or Internal fields is
// meaningful, selected by Kind. Index is the node's position in
// PreparedTree.Nodes, assigned in post-order by package prep.
type Node struct {
	// Kind selects which of Leaf/Internal is populated.
	Kind NodeKind

	// Index is this node's post-order position; Nodes[Index] == this node.
	Index int

	// Leaf fields (meaningful when Kind == KindLeaf).
	Label        string // unique tip label
	Allowed      bool   // may this leaf be chosen as a medoid
	PriorCovered bool   // is this leaf already covered by a prior center

	// Internal fields (meaningful when Kind == KindInternal).
	Left, Right             int     // child indices, both < Index
	LeftWeight, RightWeight float64 // non-negative edge weights to each child
}

// IsLeaf reports whether n is a tip.
func (n Node) IsLeaf() bool { return n.Kind == KindLeaf }

// PreparedTree is the rooted, binary, post-order-indexed tree the p-median
// dynamic program (package pmedian) consumes. It is built once by
// prep.Prepare and never mutated afterward.
//
// Invariants (see package prep for the construction that guarantees them):
//   - Nodes is ordered by post-order position: Nodes[i].Index == i.
//   - Every Internal node's Left and Right indices are strictly less than
//     its own Index (children precede parents).
//   - RootIndex == len(Nodes)-1.
//   - All edge weights are finite and >= 0.
type PreparedTree struct {
	// Nodes holds every node in the tree, indexed by post-order position.
	Nodes []Node

	// RootIndex is the index of the root node (always len(Nodes)-1 for a
	// tree built by prep.Prepare, but callers should not assume this and
	// should use RootIndex explicitly).
	RootIndex int
}

// NumLeaves returns the number of leaves in t.
func (t *PreparedTree) NumLeaves() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, nd := range t.Nodes {
		if nd.IsLeaf() {
			n++
		}
	}

	return n
}
