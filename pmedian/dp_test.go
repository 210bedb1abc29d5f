package pmedian_test

import (
	"testing"

	"github.com/evobio-go/parnas/distpolicy"
	"github.com/evobio-go/parnas/pmedian"
	"github.com/evobio-go/parnas/prep"
	"github.com/evobio-go/parnas/rawtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(label string) *rawtree.Node { return &rawtree.Node{Label: label} }

func edge(w float64, n *rawtree.Node) rawtree.Edge { return rawtree.Edge{Weight: w, Node: n} }

// s1Tree builds ((A:2,B:3):4,(C:5,(D:7,E:1):7):11);
func s1Tree() *rawtree.Tree {
	de := &rawtree.Node{Children: []rawtree.Edge{edge(7, leaf("D")), edge(1, leaf("E"))}}
	cde := &rawtree.Node{Children: []rawtree.Edge{edge(5, leaf("C")), edge(7, de)}}
	ab := &rawtree.Node{Children: []rawtree.Edge{edge(2, leaf("A")), edge(3, leaf("B"))}}
	root := &rawtree.Node{Children: []rawtree.Edge{edge(4, ab), edge(11, cde)}}

	return rawtree.NewTree(root)
}

// cherryTree builds the two-leaf tree (A:2,B:3);
func cherryTree() *rawtree.Tree {
	return rawtree.NewTree(&rawtree.Node{Children: []rawtree.Edge{edge(2, leaf("A")), edge(3, leaf("B"))}})
}

func TestSolve_S1Example(t *testing.T) {
	tr := s1Tree()
	pt, err := prep.Prepare(tr, 3, nil, nil, nil)
	require.NoError(t, err)

	objective, labels, err := pmedian.Solve(pt, 3, distpolicy.Infinite())
	require.NoError(t, err)
	assert.InDelta(t, 13.0, objective, 1e-9)
	assert.Len(t, labels, 3)

	// Every worked-out optimum for this tree includes C and exactly one of
	// the deepest leaves D and E (they are 8 apart, far from everything else).
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}
	assert.True(t, set["C"], "C is a medoid in every cost-13 solution for this tree")
}

func TestSolve_Cherry(t *testing.T) {
	tr := cherryTree()
	pt, err := prep.Prepare(tr, 1, nil, nil, nil)
	require.NoError(t, err)

	objective, labels, err := pmedian.Solve(pt, 1, distpolicy.Infinite())
	require.NoError(t, err)
	assert.InDelta(t, 5.0, objective, 1e-9)
	require.Len(t, labels, 1)
	assert.Contains(t, []string{"A", "B"}, labels[0])
}

func TestSolve_PriorCovered_PrefersUncoveredAsMedoid(t *testing.T) {
	tr := cherryTree()
	pt, err := prep.Prepare(tr, 1, nil, nil, map[string]bool{"A": true})
	require.NoError(t, err)

	objective, labels, err := pmedian.Solve(pt, 1, distpolicy.Infinite())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, objective, 1e-9)
	assert.Equal(t, []string{"B"}, labels)
}

func TestSolve_RadiusClamps(t *testing.T) {
	tr := cherryTree()
	pt, err := prep.Prepare(tr, 1, nil, nil, nil)
	require.NoError(t, err)

	policy, err := distpolicy.New(1)
	require.NoError(t, err)

	objective, labels, err := pmedian.Solve(pt, 1, policy)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, objective, 1e-9)
	assert.Len(t, labels, 1)
}

func TestSolve_InfeasibleWhenTooFewAllowed(t *testing.T) {
	tr := s1Tree()
	pt, err := prep.Prepare(tr, 2, map[string]bool{"A": true, "B": true, "C": true, "D": true}, nil, nil)
	require.NoError(t, err)

	_, _, err = pmedian.Solve(pt, 2, distpolicy.Infinite())
	assert.ErrorIs(t, err, pmedian.ErrInfeasible)
}

func TestSolve_InvalidP(t *testing.T) {
	tr := cherryTree()
	pt, err := prep.Prepare(tr, 1, nil, nil, nil)
	require.NoError(t, err)

	_, _, err = pmedian.Solve(pt, 0, distpolicy.Infinite())
	assert.ErrorIs(t, err, pmedian.ErrInvalidP)

	_, _, err = pmedian.Solve(pt, 2, distpolicy.Infinite())
	assert.ErrorIs(t, err, pmedian.ErrInvalidP)
}

func TestSolve_NilTree(t *testing.T) {
	_, _, err := pmedian.Solve(nil, 1, distpolicy.Infinite())
	assert.Error(t, err)
}
