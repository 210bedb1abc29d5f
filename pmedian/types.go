package pmedian

import (
	"errors"
	"math"
)

// ErrInvalidP indicates p fell outside [1, leaves), independent of whatever
// package prep already checked; Solve is a public entry point in its own
// right and validates defensively.
var ErrInvalidP = errors.New("pmedian: p must be >= 1 and less than the number of leaves")

// ErrInfeasible indicates no assignment of p medoids satisfies the Allowed
// constraints (e.g. fewer than p leaves are eligible to be chosen).
var ErrInfeasible = errors.New("pmedian: no feasible assignment of p medoids exists")

// tieEpsilon absorbs floating-point noise when comparing candidate costs so
// the deterministic tie-break (smallest q_a first) isn't defeated by
// rounding in accumulated edge-weight sums.
const tieEpsilon = 1e-9

// effectiveInfinity is the sentinel "no external help at all" distance: the
// configured radius when finite, since cost(d) already flattens at r for
// any d >= r, so r stands in for infinity on its own.
//
// When no radius is configured, a literal math.Inf(1) cannot serve as a
// breakpoint coordinate: every node's table would then need an arithmetic
// escape hatch for 0*Inf and Inf-Inf wherever interpolation brackets an
// infinite knot. Instead totalWeight picks a finite stand-in strictly
// larger than any path distance the tree can produce (twice the sum of
// every edge, which already bounds the longest root-to-leaf path many
// times over), so every table stays ordinary finite-float64 arithmetic.
func effectiveInfinity(radius, totalWeight float64) float64 {
	if math.IsInf(radius, 1) {
		return 2*totalWeight + 1
	}

	return radius
}
