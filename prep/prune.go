package prep

import "github.com/evobio-go/parnas/rawtree"

// prune removes every leaf named in fullyExcluded from the subtree rooted
// at n. It returns the replacement subtree, the extra edge weight that must
// be folded into whatever edge leads to it (non-zero only when n itself
// collapsed away because a single child survived), and whether n was
// removed entirely (all of its leaves were excluded).
func prune(n *rawtree.Node, fullyExcluded map[string]bool) (result *rawtree.Node, extraWeight float64, removed bool) {
	if n.IsLeaf() {
		if fullyExcluded[n.Label] {
			return nil, 0, true
		}

		return n, 0, false
	}

	survivors := make([]rawtree.Edge, 0, len(n.Children))
	for _, e := range n.Children {
		child, extra, gone := prune(e.Node, fullyExcluded)
		if gone {
			continue
		}
		survivors = append(survivors, rawtree.Edge{Weight: e.Weight + extra, Node: child})
	}

	switch len(survivors) {
	case 0:
		// Every leaf beneath n was excluded: n disappears too.
		return nil, 0, true
	case 1:
		// Contract n: fold its weight into the edge the caller attaches.
		return survivors[0].Node, survivors[0].Weight, false
	default:
		return &rawtree.Node{Label: n.Label, Children: survivors}, 0, false
	}
}
