package medoid

import "errors"

// ErrNilTree indicates a nil *rawtree.Tree was passed to one of this
// package's functions.
var ErrNilTree = errors.New("medoid: nil tree")

// Result is the outcome of a successful medoid selection.
type Result struct {
	// Objective is the total cost: the sum, over every non-medoid leaf, of
	// its (possibly clamped) distance to the nearest chosen medoid. Leaves
	// marked prior-covered contribute 0 regardless of distance.
	Objective float64

	// Labels holds the chosen medoid leaf labels, ascending.
	Labels []string
}
