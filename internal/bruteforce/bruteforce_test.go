package bruteforce_test

import (
	"testing"

	"github.com/evobio-go/parnas/distpolicy"
	"github.com/evobio-go/parnas/internal/bruteforce"
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

func TestSolve_S1Example(t *testing.T) {
	tr := s1Tree()
	pt, err := prep.Prepare(tr, 3, nil, nil, nil)
	require.NoError(t, err)

	objective, labels, err := bruteforce.Solve(pt, 3, distpolicy.Infinite())
	require.NoError(t, err)
	assert.InDelta(t, 13.0, objective, 1e-9)
	assert.Len(t, labels, 3)
}

func TestSolve_Infeasible(t *testing.T) {
	tr := s1Tree()
	pt, err := prep.Prepare(tr, 2, map[string]bool{"A": true, "B": true, "C": true, "D": true}, nil, nil)
	require.NoError(t, err)

	_, _, err = bruteforce.Solve(pt, 2, distpolicy.Infinite())
	assert.ErrorIs(t, err, bruteforce.ErrInfeasible)
}
