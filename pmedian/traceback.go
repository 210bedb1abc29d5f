package pmedian

import (
	"math"
	"sort"
)

// sortStrings sorts labels ascending in place; pulled out under its own
// name so call sites read as intent ("sort the result") rather than a bare
// sort.Strings.
func sortStrings(labels []string) { sort.Strings(labels) }

// traceback replays the same deterministic split chosen during table
// construction to recover which leaves carry the q medoids committed to
// the subtree rooted at nodeIndex, given that x is the best distance on
// offer from outside that subtree. It recomputes rather than looks up a
// stored table, since the offer a child is evaluated at during combine is
// rarely one of that child's own breakpoints.
func (s *solver) traceback(nodeIndex, q int, x float64) []string {
	n := s.tree.Nodes[nodeIndex]
	if n.IsLeaf() {
		if q == 1 {
			return []string{n.Label}
		}

		return nil
	}

	left := s.states[n.Left]
	right := s.states[n.Right]
	_, qa := s.bestSplit(n, left, right, q, x)
	if qa < 0 {
		return nil
	}
	qb := q - qa
	offerA := n.LeftWeight + math.Min(x, n.RightWeight+right.reach[qb])
	offerB := n.RightWeight + math.Min(x, n.LeftWeight+left.reach[qa])

	out := s.traceback(n.Left, qa, offerA)
	out = append(out, s.traceback(n.Right, qb, offerB)...)

	return out
}
