package align_test

import (
	"strings"
	"testing"

	"github.com/evobio-go/parnas/rawtree"
	"github.com/evobio-go/parnas/treeio/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFASTA_Basic(t *testing.T) {
	const data = `>A
ACGT
>B
AC
GT
>C desc text
TTTT
`
	aln, err := align.ReadFASTA(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, aln.Length())

	seqA, ok := aln.Sequence("A")
	require.True(t, ok)
	assert.Equal(t, "ACGT", seqA)

	seqC, ok := aln.Sequence("C")
	require.True(t, ok)
	assert.Equal(t, "TTTT", seqC)
}

func TestReadFASTA_NoHeader(t *testing.T) {
	_, err := align.ReadFASTA(strings.NewReader("ACGT\n>A\nACGT\n"))
	assert.ErrorIs(t, err, align.ErrNoHeader)
}

func TestNewAlignment_LengthMismatch(t *testing.T) {
	_, err := align.NewAlignment(map[string]string{"A": "ACGT", "B": "AC"})
	assert.ErrorIs(t, err, align.ErrLengthMismatch)
}

func leaf(label string) *rawtree.Node { return &rawtree.Node{Label: label} }

func edge(w float64, n *rawtree.Node) rawtree.Edge { return rawtree.Edge{Weight: w, Node: n} }

func TestAncestralWeights_SingleColumnCherryOfCherries(t *testing.T) {
	// ((A,B),(C,D)); with A=B="A" and C=D="G" at the one column: each
	// cherry is free (its children already agree), but the two clusters
	// disagree with each other, so exactly one substitution must be
	// charged somewhere between them.
	ab := &rawtree.Node{Children: []rawtree.Edge{edge(1, leaf("A")), edge(1, leaf("B"))}}
	cd := &rawtree.Node{Children: []rawtree.Edge{edge(1, leaf("C")), edge(1, leaf("D"))}}
	root := &rawtree.Node{Children: []rawtree.Edge{edge(1, ab), edge(1, cd)}}
	tree := rawtree.NewTree(root)

	aln, err := align.NewAlignment(map[string]string{"A": "A", "B": "A", "C": "G", "D": "G"})
	require.NoError(t, err)

	weights, err := align.AncestralWeights(tree, aln)
	require.NoError(t, err)

	var total float64
	for _, w := range weights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestAncestralWeights_MissingLeaf(t *testing.T) {
	root := &rawtree.Node{Children: []rawtree.Edge{edge(1, leaf("A")), edge(1, leaf("B"))}}
	tree := rawtree.NewTree(root)

	aln, err := align.NewAlignment(map[string]string{"A": "A"})
	require.NoError(t, err)

	_, err = align.AncestralWeights(tree, aln)
	assert.ErrorIs(t, err, align.ErrMissingLeaf)
}
