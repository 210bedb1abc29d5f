package align

import (
	"github.com/evobio-go/parnas/rawtree"
)

// charSet is a small set of the distinct residue characters observed
// in a single alignment column; at most a few dozen symbols ever appear
// (nucleotide or amino-acid alphabets), so a map is plenty fast and avoids
// committing to one alphabet.
type charSet map[byte]bool

func singleton(c byte) charSet { return charSet{c: true} }

// pick deterministically selects a representative character from s (the
// smallest byte value), so that resolving a tie between equally-parsimonious
// ancestral states doesn't depend on Go's randomised map iteration order.
func (s charSet) pick() byte {
	var best byte
	first := true
	for c := range s {
		if first || c < best {
			best = c
			first = false
		}
	}
	return best
}

func (s charSet) intersect(o charSet) charSet {
	out := make(charSet, len(s))
	for c := range s {
		if o[c] {
			out[c] = true
		}
	}
	return out
}

func (s charSet) union(o charSet) charSet {
	out := make(charSet, len(s)+len(o))
	for c := range s {
		out[c] = true
	}
	for c := range o {
		out[c] = true
	}
	return out
}

// AncestralWeights runs Fitch's small parsimony algorithm independently at
// every column of aln, mapped onto tree's topology, and returns the total
// Hamming substitution count attributed to each edge (keyed by its child
// node, per rawtree.Tree.Reweight's convention) summed over all columns.
// Every edge of tree has an entry, including edges with zero substitutions.
//
// It returns ErrMissingLeaf if some leaf of tree has no sequence in aln.
// Unequal sequence lengths are rejected earlier, by NewAlignment.
func AncestralWeights(tree *rawtree.Tree, aln *Alignment) (map[*rawtree.Node]float64, error) {
	if tree == nil || tree.Root == nil || aln == nil {
		return map[*rawtree.Node]float64{}, nil
	}

	for _, leaf := range tree.Leaves() {
		if _, ok := aln.Sequence(leaf.Label); !ok {
			return nil, ErrMissingLeaf
		}
	}

	weights := make(map[*rawtree.Node]float64)
	var initEdges func(n *rawtree.Node)
	initEdges = func(n *rawtree.Node) {
		for _, e := range n.Children {
			weights[e.Node] = 0
			initEdges(e.Node)
		}
	}
	initEdges(tree.Root)

	for col := 0; col < aln.Length(); col++ {
		fitchColumn(tree.Root, col, aln, weights)
	}

	return weights, nil
}

// fitchColumn runs Fitch's two-pass algorithm for one alignment column and
// accumulates the substitution it implies for every edge into weights.
//
// Pass one (bottom-up) computes each node's candidate character set: a
// leaf's set is its own residue; an internal node's set is the
// intersection of its children's sets when that intersection is
// non-empty, or their union when it is empty. No substitutions are counted
// in this pass.
//
// Pass two (top-down) resolves each node to a single character — its
// parent's resolved character if that lies in its own candidate set,
// otherwise the set's smallest byte (charSet.pick) — and charges 1 to the edge
// above any node whose resolved character differs from its parent's.
func fitchColumn(root *rawtree.Node, col int, aln *Alignment, weights map[*rawtree.Node]float64) {
	sets := make(map[*rawtree.Node]charSet)

	var bottomUp func(n *rawtree.Node) charSet
	bottomUp = func(n *rawtree.Node) charSet {
		if n.IsLeaf() {
			seq, _ := aln.Sequence(n.Label)
			set := singleton(seq[col])
			sets[n] = set
			return set
		}

		var combined charSet
		for i, e := range n.Children {
			child := bottomUp(e.Node)
			if i == 0 {
				combined = child
				continue
			}
			inter := combined.intersect(child)
			if len(inter) == 0 {
				combined = combined.union(child)
			} else {
				combined = inter
			}
		}
		sets[n] = combined
		return combined
	}
	bottomUp(root)

	resolved := sets[root].pick()

	var topDown func(n *rawtree.Node, parentChar byte)
	topDown = func(n *rawtree.Node, parentChar byte) {
		own := parentChar
		if !sets[n][parentChar] {
			own = sets[n].pick()
		}
		if own != parentChar {
			weights[n] += 1
		}
		for _, e := range n.Children {
			topDown(e.Node, own)
		}
	}
	for _, e := range root.Children {
		topDown(e.Node, resolved)
	}
}
