package prep

import (
	"github.com/evobio-go/parnas/core"
	"github.com/evobio-go/parnas/rawtree"
)

// assignIndices walks the (already binary) subtree rooted at root in
// post-order, building the flat core.Node arena Prepare returns. allowed
// and priorCovered key by leaf label.
func assignIndices(root *rawtree.Node, allowed, priorCovered map[string]bool) (nodes []core.Node, rootIndex int, err error) {
	var visit func(n *rawtree.Node) (int, error)
	visit = func(n *rawtree.Node) (int, error) {
		if n.IsLeaf() {
			idx := len(nodes)
			nodes = append(nodes, core.Node{
				Kind:         core.KindLeaf,
				Index:        idx,
				Label:        n.Label,
				Allowed:      allowed[n.Label],
				PriorCovered: priorCovered[n.Label],
			})

			return idx, nil
		}
		if len(n.Children) != 2 {
			return 0, errInvalid("internal node is not binary after resolution")
		}

		li, err := visit(n.Children[0].Node)
		if err != nil {
			return 0, err
		}
		ri, err := visit(n.Children[1].Node)
		if err != nil {
			return 0, err
		}

		idx := len(nodes)
		nodes = append(nodes, core.Node{
			Kind:        core.KindInternal,
			Index:       idx,
			Left:        li,
			Right:       ri,
			LeftWeight:  n.Children[0].Weight,
			RightWeight: n.Children[1].Weight,
		})

		return idx, nil
	}

	rootIndex, err = visit(root)

	return nodes, rootIndex, err
}
