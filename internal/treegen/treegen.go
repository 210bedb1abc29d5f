package treegen

import (
	"fmt"
	"math/rand"

	"github.com/evobio-go/parnas/rawtree"
)

// Generate builds a random rooted binary tree with numLeaves leaves, named
// "L0".."L{n-1}", and edge weights drawn uniformly from [0, maxWeight).
// Internal topology is built by repeatedly merging two randomly chosen
// active subtrees under a new parent, so the shape ranges from balanced to
// caterpillar-like depending on rng's draws.
//
// numLeaves must be >= 2; Generate panics otherwise, since it is a test
// helper and a malformed call indicates a programming error, not bad
// external input.
func Generate(numLeaves int, rng *rand.Rand, maxWeight float64) *rawtree.Tree {
	if numLeaves < 2 {
		panic(fmt.Sprintf("treegen: numLeaves must be >= 2, got %d", numLeaves))
	}

	active := make([]*rawtree.Node, numLeaves)
	for i := range active {
		active[i] = &rawtree.Node{Label: fmt.Sprintf("L%d", i)}
	}

	for len(active) > 1 {
		i := rng.Intn(len(active))
		j := rng.Intn(len(active) - 1)
		if j >= i {
			j++
		}

		parent := &rawtree.Node{
			Children: []rawtree.Edge{
				{Weight: rng.Float64() * maxWeight, Node: active[i]},
				{Weight: rng.Float64() * maxWeight, Node: active[j]},
			},
		}

		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		active[lo] = parent
		active = append(active[:hi], active[hi+1:]...)
	}

	return rawtree.NewTree(active[0])
}
