package pmedian

import (
	"sort"
)

// clampDistance folds any value at or beyond inf down to inf, matching
// distpolicy.Policy.Cost's own clamp so that breakpoint lists never carry
// distinct values past the point where they'd behave identically.
func clampDistance(x, inf float64) float64 {
	if x >= inf {
		return inf
	}

	return x
}

// mergeKnots builds the sorted, de-duplicated breakpoint list for an
// internal node from its two children's own lists, each shifted by the
// edge weight leading to it — i.e. "distance from this node down to a leaf
// reachable via that child". 0 is always present (folded in directly, and
// also implied by each child's own list beginning at 0).
func mergeKnots(leftKnots []float64, leftWeight float64, rightKnots []float64, rightWeight float64, inf float64) []float64 {
	seen := make(map[float64]bool, len(leftKnots)+len(rightKnots)+1)
	seen[0] = true
	for _, x := range leftKnots {
		seen[clampDistance(x+leftWeight, inf)] = true
	}
	for _, x := range rightKnots {
		seen[clampDistance(x+rightWeight, inf)] = true
	}

	knots := make([]float64, 0, len(seen))
	for x := range seen {
		knots = append(knots, x)
	}
	sort.Float64s(knots)

	return knots
}

// evalAt reads the piecewise-linear function described by (knots, values)
// at an arbitrary x >= 0: knots is sorted ascending and values is
// non-decreasing in lockstep. x below the first knot (never happens since
// knots[0] is always 0 and x >= 0) clamps to values[0]; x beyond the last
// knot clamps to values[len-1] (the function has flattened — no further
// external distance buys anything more); otherwise the result is linearly
// interpolated between the bracketing pair.
func evalAt(knots []float64, values []float64, x float64) float64 {
	if x <= knots[0] {
		return values[0]
	}
	last := len(knots) - 1
	if x >= knots[last] {
		return values[last]
	}

	i := sort.SearchFloat64s(knots, x)
	if knots[i] == x {
		return values[i]
	}
	// i is the first knot strictly greater than x; bracket is (i-1, i).
	lo, hi := i-1, i
	span := knots[hi] - knots[lo]
	t := (x - knots[lo]) / span

	return values[lo] + t*(values[hi]-values[lo])
}
