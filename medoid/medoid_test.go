package medoid_test

import (
	"testing"

	"github.com/evobio-go/parnas/distpolicy"
	"github.com/evobio-go/parnas/medoid"
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

func TestFindMedoids_S1Example(t *testing.T) {
	result, err := medoid.FindMedoids(s1Tree(), 3)
	require.NoError(t, err)
	assert.InDelta(t, 13.0, result.Objective, 1e-9)
	assert.Len(t, result.Labels, 3)
}

func TestFindMedoidsFull_ExcludedLeafNeverChosen(t *testing.T) {
	result, err := medoid.FindMedoidsFull(
		s1Tree(), 1, distpolicy.Infinite(),
		nil, map[string]bool{"D": true, "E": true}, nil,
	)
	require.NoError(t, err)
	assert.NotContains(t, result.Labels, "D")
	assert.NotContains(t, result.Labels, "E")
}

func TestFindMedoidsFull_FullyExcludedLeafDropsFromTree(t *testing.T) {
	result, err := medoid.FindMedoidsFull(
		s1Tree(), 2, distpolicy.Infinite(),
		nil, nil, map[string]bool{"E": true},
	)
	require.NoError(t, err)
	assert.NotContains(t, result.Labels, "E")
}

func TestFindMedoidsFull_RadiusClamps(t *testing.T) {
	policy, err := distpolicy.New(2)
	require.NoError(t, err)

	result, err := medoid.FindMedoidsFull(s1Tree(), 3, policy, nil, nil, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Objective, 13.0)
}

func TestFindMedoidsFull_NilTree(t *testing.T) {
	_, err := medoid.FindMedoids(nil, 1)
	assert.ErrorIs(t, err, medoid.ErrNilTree)
}

func TestFindMedoidsFull_InvalidInputPropagates(t *testing.T) {
	_, err := medoid.FindMedoids(s1Tree(), 5)
	assert.ErrorIs(t, err, prep.ErrInvalidInput)
}
