package rawtree

import "errors"

// Sentinel errors for rawtree construction and validation.
var (
	// ErrEmptyTree indicates a tree with no nodes.
	ErrEmptyTree = errors.New("rawtree: tree has no nodes")

	// ErrNilNode indicates a nil *Node was used where one was required.
	ErrNilNode = errors.New("rawtree: nil node")

	// ErrDuplicateLabel indicates two leaves share the same label.
	ErrDuplicateLabel = errors.New("rawtree: duplicate leaf label")

	// ErrCycle indicates the edge set contains a cycle (not a tree).
	ErrCycle = errors.New("rawtree: cycle detected")

	// ErrDisconnected indicates the graph is not a single connected tree.
	ErrDisconnected = errors.New("rawtree: disconnected components")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("rawtree: negative edge weight")

	// ErrTooFewLeaves indicates fewer than two leaves remain.
	ErrTooFewLeaves = errors.New("rawtree: fewer than two leaves")
)

// Node is one vertex of a rawtree.Tree. A Node with no Children is a leaf;
// any label may be set regardless of degree, but only leaf labels are
// meaningful to the rest of the pipeline.
type Node struct {
	// Label is the node's name; unique and non-empty for leaves, may be
	// empty for internal nodes parsed from an unlabeled Newick subtree.
	Label string

	// Children holds this node's child edges.
	Children []Edge
}

// Edge is a parent->child edge with non-negative weight.
type Edge struct {
	Weight float64
	Node   *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n != nil && len(n.Children) == 0 }

// Tree is a rooted, arbitrary-arity tree: a root Node plus the edges
// reachable from it. A Tree with Root == nil is invalid.
type Tree struct {
	Root *Node
}

// NewTree wraps root into a Tree.
func NewTree(root *Node) *Tree { return &Tree{Root: root} }
