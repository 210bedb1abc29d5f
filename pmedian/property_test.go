package pmedian_test

import (
	"math/rand"
	"testing"

	"github.com/evobio-go/parnas/distpolicy"
	"github.com/evobio-go/parnas/internal/bruteforce"
	"github.com/evobio-go/parnas/internal/treegen"
	"github.com/evobio-go/parnas/pmedian"
	"github.com/evobio-go/parnas/prep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_MatchesBruteForceOnRandomTrees cross-checks the DP against
// exhaustive enumeration on small randomly generated trees, for every p
// the tree admits. Any DP/brute-force disagreement here means the DP's
// combine step has drifted from its specification, not that this
// particular seed is unlucky: the oracle is exact for trees this small.
func TestSolve_MatchesBruteForceOnRandomTrees(t *testing.T) {
	for seed := int64(0); seed < 12; seed++ {
		rng := rand.New(rand.NewSource(seed))
		numLeaves := 4 + rng.Intn(5) // 4..8 leaves
		raw := treegen.Generate(numLeaves, rng, 9)

		for p := 1; p < numLeaves; p++ {
			pt, err := prep.Prepare(raw, p, nil, nil, nil)
			require.NoError(t, err)

			dpObjective, _, err := pmedian.Solve(pt, p, distpolicy.Infinite())
			require.NoError(t, err)

			bfObjective, _, err := bruteforce.Solve(pt, p, distpolicy.Infinite())
			require.NoError(t, err)

			assert.InDelta(t, bfObjective, dpObjective, 1e-6,
				"seed=%d leaves=%d p=%d", seed, numLeaves, p)
		}
	}
}

func TestSolve_MatchesBruteForceWithRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	raw := treegen.Generate(6, rng, 10)

	policy, err := distpolicy.New(4)
	require.NoError(t, err)

	for p := 1; p < 6; p++ {
		pt, err := prep.Prepare(raw, p, nil, nil, nil)
		require.NoError(t, err)

		dpObjective, _, err := pmedian.Solve(pt, p, policy)
		require.NoError(t, err)

		bfObjective, _, err := bruteforce.Solve(pt, p, policy)
		require.NoError(t, err)

		assert.InDelta(t, bfObjective, dpObjective, 1e-6, "p=%d", p)
	}
}
