package bruteforce

import (
	"errors"
	"sort"

	"github.com/evobio-go/parnas/core"
	"github.com/evobio-go/parnas/distpolicy"
)

// ErrInvalidP mirrors pmedian.ErrInvalidP (same condition, same wording).
// It is a separate value, so errors.Is against one package's sentinel does
// not match the other's; it is declared here rather than imported to keep
// this package free of a dependency on the package it exists to check.
var ErrInvalidP = errors.New("bruteforce: p must be >= 1 and less than the number of leaves")

// ErrInfeasible mirrors pmedian.ErrInfeasible.
var ErrInfeasible = errors.New("bruteforce: no feasible assignment of p medoids exists")

// Solve enumerates every size-p subset of tree's allowed leaves, scores
// each directly via policy, and returns the cheapest (ties broken by
// ascending sorted label list) together with its objective.
func Solve(tree *core.PreparedTree, p int, policy distpolicy.Policy) (float64, []string, error) {
	if tree == nil {
		return 0, nil, core.ErrNilTree
	}
	leaves := tree.NumLeaves()
	if p < 1 || p >= leaves {
		return 0, nil, ErrInvalidP
	}

	dist := allPairsLeafDistance(tree)

	var leafIdx []int
	var allowedIdx []int
	for i, n := range tree.Nodes {
		if n.IsLeaf() {
			leafIdx = append(leafIdx, i)
			if n.Allowed {
				allowedIdx = append(allowedIdx, i)
			}
		}
	}
	if len(allowedIdx) < p {
		return 0, nil, ErrInfeasible
	}

	bestCost := -1.0
	var bestCombo []int

	combos(allowedIdx, p, func(combo []int) {
		cost := 0.0
		for _, leaf := range leafIdx {
			if tree.Nodes[leaf].PriorCovered {
				continue
			}
			if contains(combo, leaf) {
				continue
			}
			best := policy.Radius()
			for _, m := range combo {
				d := dist[leaf][m]
				c := policy.Cost(d)
				if c < best {
					best = c
				}
			}
			cost += best
		}

		if bestCost < 0 || cost < bestCost || (cost == bestCost && lessLabels(tree, combo, bestCombo)) {
			bestCost = cost
			bestCombo = append([]int(nil), combo...)
		}
	})

	labels := make([]string, len(bestCombo))
	for i, idx := range bestCombo {
		labels[i] = tree.Nodes[idx].Label
	}
	sort.Strings(labels)

	return bestCost, labels, nil
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func lessLabels(tree *core.PreparedTree, a, b []int) bool {
	la := labelsOf(tree, a)
	lb := labelsOf(tree, b)
	for i := 0; i < len(la) && i < len(lb); i++ {
		if la[i] != lb[i] {
			return la[i] < lb[i]
		}
	}
	return false
}

func labelsOf(tree *core.PreparedTree, idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = tree.Nodes[v].Label
	}
	sort.Strings(out)
	return out
}

// combos invokes fn once for every k-element subset of items, in
// lexicographic index order, reusing a single backing slice (fn must not
// retain it past the call).
func combos(items []int, k int, fn func(combo []int)) {
	n := len(items)
	if k > n {
		return
	}
	chosen := make([]int, k)

	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			fn(chosen)
			return
		}
		for i := start; i < n; i++ {
			chosen[depth] = items[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}

// allPairsLeafDistance computes the tree-path distance between every pair
// of leaves via one breadth-first search per leaf (fine for the small trees this
// package is meant to check pmedian against).
func allPairsLeafDistance(tree *core.PreparedTree) map[int]map[int]float64 {
	adj := buildAdjacency(tree)

	dist := make(map[int]map[int]float64, len(tree.Nodes))
	for i, n := range tree.Nodes {
		if !n.IsLeaf() {
			continue
		}
		dist[i] = bfsDistances(tree, adj, i)
	}
	return dist
}

type weightedEdge struct {
	to     int
	weight float64
}

func buildAdjacency(tree *core.PreparedTree) map[int][]weightedEdge {
	adj := make(map[int][]weightedEdge, len(tree.Nodes))
	for i, n := range tree.Nodes {
		if n.IsLeaf() {
			continue
		}
		adj[i] = append(adj[i], weightedEdge{to: n.Left, weight: n.LeftWeight})
		adj[i] = append(adj[i], weightedEdge{to: n.Right, weight: n.RightWeight})
		adj[n.Left] = append(adj[n.Left], weightedEdge{to: i, weight: n.LeftWeight})
		adj[n.Right] = append(adj[n.Right], weightedEdge{to: i, weight: n.RightWeight})
	}
	return adj
}

func bfsDistances(tree *core.PreparedTree, adj map[int][]weightedEdge, source int) map[int]float64 {
	dist := make(map[int]float64, len(tree.Nodes))
	dist[source] = 0
	visited := make(map[int]bool, len(tree.Nodes))
	visited[source] = true

	queue := []int{source}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range adj[cur] {
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			dist[e.to] = dist[cur] + e.weight
			queue = append(queue, e.to)
		}
	}

	leafDist := make(map[int]float64, tree.NumLeaves())
	for i, n := range tree.Nodes {
		if n.IsLeaf() {
			leafDist[i] = dist[i]
		}
	}
	return leafDist
}
