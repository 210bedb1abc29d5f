package medoid

import (
	"github.com/evobio-go/parnas/distpolicy"
	"github.com/evobio-go/parnas/pmedian"
	"github.com/evobio-go/parnas/prep"
	"github.com/evobio-go/parnas/rawtree"
)

// FindMedoids selects p representative leaves from tree minimising the sum
// of distances from every other leaf to its nearest selection: no coverage
// radius, no prior centers, no exclusions.
func FindMedoids(tree *rawtree.Tree, p int) (Result, error) {
	return FindMedoidsFull(tree, p, distpolicy.Infinite(), nil, nil, nil)
}

// FindMedoidsFull is the fully parameterised selector: policy supplies the
// (optional) coverage radius, priorCovered names leaves already covered by
// an existing center, excluded names leaves that may not be chosen as
// medoids (but still count toward the objective), and fullyExcluded names
// leaves removed from the tree entirely before solving.
//
// It returns ErrNilTree for a nil tree, prep.ErrInvalidInput for a
// structurally invalid tree or out-of-range p, and pmedian.ErrInfeasible
// when fewer than p leaves are eligible to be chosen.
func FindMedoidsFull(
	tree *rawtree.Tree,
	p int,
	policy distpolicy.Policy,
	priorCovered, excluded, fullyExcluded map[string]bool,
) (Result, error) {
	if tree == nil {
		return Result{}, ErrNilTree
	}

	prepared, err := prep.Prepare(tree, p, excluded, fullyExcluded, priorCovered)
	if err != nil {
		return Result{}, err
	}

	objective, labels, err := pmedian.Solve(prepared, p, policy)
	if err != nil {
		return Result{}, err
	}

	return Result{Objective: objective, Labels: labels}, nil
}
