package selectspec

import "errors"

// ErrInvalidPattern indicates one of Spec's regex fields failed to compile.
var ErrInvalidPattern = errors.New("selectspec: invalid regular expression")

// ErrInvalidSimilarity indicates a similarity percentage outside (0, 100].
var ErrInvalidSimilarity = errors.New("selectspec: similarity percent must be in (0, 100]")

// ErrBothRadiusAndSimilarity indicates Spec set both Radius and
// SimilarityPercent, which are mutually exclusive ways to pick a coverage
// radius.
var ErrBothRadiusAndSimilarity = errors.New("selectspec: radius and similarity percent are mutually exclusive")

// Spec is the raw, user-facing selection request: regex patterns matched
// against leaf labels, and a coverage radius expressed either directly or
// as a similarity percentage against an alignment length.
type Spec struct {
	// P is the number of medoids requested.
	P int

	// Exclude lists regex patterns; a leaf matching any of them may not be
	// chosen as a medoid (but still contributes to the objective).
	Exclude []string

	// FullyExclude lists regex patterns; a matching leaf is removed from
	// the tree entirely before solving.
	FullyExclude []string

	// PriorCovered lists regex patterns; a matching leaf is treated as
	// already covered by an existing center and contributes 0 regardless
	// of its assignment.
	PriorCovered []string

	// Radius is an explicit coverage radius. Mutually exclusive with
	// SimilarityPercent. Nil means "no radius" unless SimilarityPercent is
	// set.
	Radius *float64

	// SimilarityPercent, together with AlignmentLength, derives a radius
	// as floor((1 - s/100) * AlignmentLength). Mutually exclusive with
	// Radius.
	SimilarityPercent *float64

	// AlignmentLength is the alignment length used to convert
	// SimilarityPercent into a radius; required whenever SimilarityPercent
	// is set.
	AlignmentLength int
}

// Resolved is the output of Resolve: the three leaf-label sets
// prep.Prepare needs, plus the effective radius (math.Inf(1) if none).
type Resolved struct {
	Excluded      map[string]bool
	FullyExcluded map[string]bool
	PriorCovered  map[string]bool
	Radius        float64

	// Warnings holds non-fatal observations about the resolved request,
	// e.g. a prior-covered set that can't actually cover anything because
	// no radius was given. Callers decide whether to surface these (the
	// CLI logs them); Resolve itself never errors for them.
	Warnings []string
}
