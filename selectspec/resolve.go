package selectspec

import (
	"fmt"
	"math"
	"regexp"

	"github.com/evobio-go/parnas/rawtree"
)

// Resolve matches spec's regex patterns against every leaf label in tree
// and converts its radius/similarity setting into a concrete radius,
// producing the inputs prep.Prepare and distpolicy.New require.
func Resolve(spec Spec, tree *rawtree.Tree) (Resolved, error) {
	radius, err := resolveRadius(spec)
	if err != nil {
		return Resolved{}, err
	}

	excludeRe, err := compileAll(spec.Exclude)
	if err != nil {
		return Resolved{}, err
	}
	fullyExcludeRe, err := compileAll(spec.FullyExclude)
	if err != nil {
		return Resolved{}, err
	}
	priorCoveredRe, err := compileAll(spec.PriorCovered)
	if err != nil {
		return Resolved{}, err
	}

	resolved := Resolved{
		Excluded:      make(map[string]bool),
		FullyExcluded: make(map[string]bool),
		PriorCovered:  make(map[string]bool),
		Radius:        radius,
	}

	if tree == nil {
		return resolved, nil
	}

	for _, leaf := range tree.Leaves() {
		if matchesAny(excludeRe, leaf.Label) {
			resolved.Excluded[leaf.Label] = true
		}
		if matchesAny(fullyExcludeRe, leaf.Label) {
			resolved.FullyExcluded[leaf.Label] = true
		}
		if matchesAny(priorCoveredRe, leaf.Label) {
			resolved.PriorCovered[leaf.Label] = true
		}
	}

	if len(resolved.PriorCovered) > 0 && math.IsInf(resolved.Radius, 1) {
		resolved.Warnings = append(resolved.Warnings,
			"prior-covered leaves contribute 0 regardless of assignment even though no radius is set; "+
				"this is the spec's literal semantics, but there is no coverage radius for it to represent")
	}

	return resolved, nil
}

// RadiusFromSimilarity converts a similarity percentage s (the fraction of
// alignment columns two sequences are expected to agree on, as a percent
// in (0, 100]) and an alignment length L into a substitution-count radius
// via floor((1 - s/100) * L): the number of differing columns that still
// counts as "close enough".
func RadiusFromSimilarity(similarityPercent float64, alignmentLength int) (float64, error) {
	if similarityPercent <= 0 || similarityPercent > 100 {
		return 0, ErrInvalidSimilarity
	}

	return math.Floor((1 - similarityPercent/100) * float64(alignmentLength)), nil
}

func resolveRadius(spec Spec) (float64, error) {
	if spec.Radius != nil && spec.SimilarityPercent != nil {
		return 0, ErrBothRadiusAndSimilarity
	}
	if spec.Radius != nil {
		return *spec.Radius, nil
	}
	if spec.SimilarityPercent != nil {
		return RadiusFromSimilarity(*spec.SimilarityPercent, spec.AlignmentLength)
	}

	return math.Inf(1), nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func matchesAny(patterns []*regexp.Regexp, label string) bool {
	for _, re := range patterns {
		if re.MatchString(label) {
			return true
		}
	}
	return false
}
