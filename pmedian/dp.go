package pmedian

import (
	"math"

	"github.com/evobio-go/parnas/core"
	"github.com/evobio-go/parnas/distpolicy"
)

// nodeState holds one tree node's DP tables. knots is shared by every q
// (0..p); each f[q] is parallel to knots, and reach holds one value per q.
type nodeState struct {
	knots []float64
	f     [][]float64
	reach []float64
}

// solver carries the read-only context threaded through table construction
// and traceback: the prepared tree, the medoid budget, the distance
// policy, and (once built) every node's table.
type solver struct {
	tree   *core.PreparedTree
	p      int
	policy distpolicy.Policy
	inf    float64
	states []nodeState
}

// Solve runs the p-median dynamic program over tree and returns the
// minimum achievable total cost together with the labels of the chosen
// medoids, sorted ascending. It returns ErrInvalidP if p is out of range
// for tree's leaf count, or ErrInfeasible if fewer than p leaves are
// Allowed.
func Solve(tree *core.PreparedTree, p int, policy distpolicy.Policy) (float64, []string, error) {
	if tree == nil {
		return 0, nil, core.ErrNilTree
	}
	leaves := tree.NumLeaves()
	if p < 1 || p >= leaves {
		return 0, nil, ErrInvalidP
	}

	s := &solver{tree: tree, p: p, policy: policy, inf: effectiveInfinity(policy.Radius(), totalEdgeWeight(tree))}
	s.states = make([]nodeState, len(tree.Nodes))
	for i, n := range tree.Nodes {
		if n.IsLeaf() {
			s.states[i] = s.leafState(n)
		} else {
			s.states[i] = s.combineState(n)
		}
	}

	root := s.states[tree.RootIndex]
	objective := evalAt(root.knots, root.f[p], s.inf)
	if math.IsInf(objective, 1) {
		return 0, nil, ErrInfeasible
	}

	labels := s.traceback(tree.RootIndex, p, s.inf)
	sortStrings(labels)

	return objective, labels, nil
}

// totalEdgeWeight sums every edge weight in tree, used to derive a finite
// stand-in for "no external help at all" when no coverage radius is set.
func totalEdgeWeight(tree *core.PreparedTree) float64 {
	var sum float64
	for _, n := range tree.Nodes {
		if !n.IsLeaf() {
			sum += n.LeftWeight + n.RightWeight
		}
	}

	return sum
}

// leafState builds the base-case table for a tip: q=0 costs the (possibly
// prior-covered) clamped distance to whatever external help is on offer,
// q=1 costs 0 iff the leaf is Allowed to be a medoid, and q>=2 is
// infeasible (a leaf cannot host two medoids).
func (s *solver) leafState(n core.Node) nodeState {
	knots := []float64{0}
	if s.inf > 0 {
		knots = append(knots, s.inf)
	}

	f := make([][]float64, s.p+1)
	reach := make([]float64, s.p+1)
	for q := 0; q <= s.p; q++ {
		f[q] = make([]float64, len(knots))
		switch q {
		case 0:
			for k, x := range knots {
				if n.PriorCovered {
					f[0][k] = distpolicy.CostCovered(x)
				} else {
					f[0][k] = s.policy.Cost(x)
				}
			}
			reach[0] = s.inf
		case 1:
			val := math.Inf(1)
			if n.Allowed {
				val = 0
			}
			for k := range knots {
				f[1][k] = val
			}
			if n.Allowed {
				reach[1] = 0
			} else {
				reach[1] = math.Inf(1)
			}
		default:
			for k := range knots {
				f[q][k] = math.Inf(1)
			}
			reach[q] = math.Inf(1)
		}
	}

	return nodeState{knots: knots, f: f, reach: reach}
}

// combineState folds two already-built child tables into v's own, per the
// package doc's sibling-reach construction.
func (s *solver) combineState(n core.Node) nodeState {
	left := s.states[n.Left]
	right := s.states[n.Right]
	knots := mergeKnots(left.knots, n.LeftWeight, right.knots, n.RightWeight, s.inf)

	f := make([][]float64, s.p+1)
	reach := make([]float64, s.p+1)
	last := len(knots) - 1
	for q := 0; q <= s.p; q++ {
		f[q] = make([]float64, len(knots))
		for k, x := range knots {
			val, qa := s.bestSplit(n, left, right, q, x)
			f[q][k] = val
			if k == last {
				qb := q - qa
				if qa < 0 {
					reach[q] = math.Inf(1)
				} else {
					reach[q] = math.Min(n.LeftWeight+left.reach[qa], n.RightWeight+right.reach[qb])
				}
			}
		}
	}

	return nodeState{knots: knots, f: f, reach: reach}
}

// bestSplit finds the minimum-cost way to divide q medoids between the two
// children given an external offer x, breaking ties toward the smallest
// q_a. It returns (-1) for qa when every split is infeasible.
func (s *solver) bestSplit(n core.Node, left, right nodeState, q int, x float64) (float64, int) {
	best := math.Inf(1)
	bestQA := -1
	for qa := 0; qa <= q && qa <= s.p; qa++ {
		qb := q - qa
		if qb > s.p {
			continue
		}
		offerA := n.LeftWeight + math.Min(x, n.RightWeight+right.reach[qb])
		offerB := n.RightWeight + math.Min(x, n.LeftWeight+left.reach[qa])
		val := evalAt(left.knots, left.f[qa], offerA) + evalAt(right.knots, right.f[qb], offerB)
		if val < best-tieEpsilon {
			best, bestQA = val, qa
		}
	}

	return best, bestQA
}
