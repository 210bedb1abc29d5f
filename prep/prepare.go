package prep

import (
	"github.com/evobio-go/parnas/core"
	"github.com/evobio-go/parnas/rawtree"
)

// Prepare normalises raw into a core.PreparedTree, applying fullyExcluded
// pruning, excluded/priorCovered leaf tagging, binarisation, and post-order
// indexing (see package doc for the exact step order).
//
// p is the requested number of medoids; Prepare rejects it here (rather
// than deferring to the DP) so that an invalid request fails fast with a
// precise message, per spec.md §4.1's error conditions.
//
// Returns ErrInvalidInput if:
//   - raw fails rawtree.Tree.Validate (not a tree, negative weight, etc.)
//   - fewer than two leaves remain after pruning fullyExcluded
//   - p < 1 or p >= the number of remaining (non-ignored) leaves
func Prepare(raw *rawtree.Tree, p int, excluded, fullyExcluded, priorCovered map[string]bool) (*core.PreparedTree, error) {
	if err := raw.Validate(); err != nil {
		return nil, errInvalid(err.Error())
	}

	prunedRoot, _, removed := prune(raw.Root, fullyExcluded)
	if removed {
		return nil, errInvalid("all leaves were fully excluded")
	}

	resolvedRoot, _ := resolve(prunedRoot)
	if resolvedRoot.IsLeaf() {
		return nil, errInvalid("fewer than two leaves remain after exclusion")
	}

	remaining := (&rawtree.Tree{Root: resolvedRoot}).Leaves()
	if len(remaining) < 2 {
		return nil, errInvalid("fewer than two leaves remain after exclusion")
	}
	if p < 1 {
		return nil, errInvalid("p must be >= 1")
	}
	if p >= len(remaining) {
		return nil, errInvalid("p must be strictly less than the number of remaining leaves")
	}

	allowed := make(map[string]bool, len(remaining))
	for _, l := range remaining {
		allowed[l.Label] = !excluded[l.Label]
	}

	nodes, rootIndex, err := assignIndices(resolvedRoot, allowed, priorCovered)
	if err != nil {
		return nil, err
	}

	tree := core.NewPreparedTree(nodes, rootIndex)
	if err := tree.Validate(); err != nil {
		return nil, errInvalid(err.Error())
	}

	return tree, nil
}
