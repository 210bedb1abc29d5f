package prep

import "github.com/evobio-go/parnas/rawtree"

// resolve binarises the subtree rooted at n: any internal node with k>2
// children is rewritten with k-2 zero-weight internal nodes so every
// internal node has exactly two children, and any unifurcation left over
// (k==1, e.g. from an unrooted Newick's degree-2 root) is contracted by
// folding its single edge's weight upward, exactly like prune's
// contraction. It returns the resolved subtree and the extra weight to
// fold into the caller's edge (non-zero only when n itself contracted
// away).
func resolve(n *rawtree.Node) (result *rawtree.Node, extraWeight float64) {
	if n.IsLeaf() {
		return n, 0
	}

	children := make([]rawtree.Edge, 0, len(n.Children))
	for _, e := range n.Children {
		child, extra := resolve(e.Node)
		children = append(children, rawtree.Edge{Weight: e.Weight + extra, Node: child})
	}

	switch len(children) {
	case 1:
		return children[0].Node, children[0].Weight
	case 2:
		return &rawtree.Node{Label: n.Label, Children: children}, 0
	default:
		// Fold children[0..k-2] into a left-leaning chain of zero-weight
		// internal nodes, then attach the last child at the top.
		acc := children[0]
		for i := 1; i < len(children)-1; i++ {
			acc = rawtree.Edge{Weight: 0, Node: &rawtree.Node{Children: []rawtree.Edge{acc, children[i]}}}
		}

		return &rawtree.Node{Label: n.Label, Children: []rawtree.Edge{acc, children[len(children)-1]}}, 0
	}
}
