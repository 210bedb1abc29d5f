package distpolicy

import (
	"errors"
	"math"
)

// ErrNegativeRadius indicates a radius < 0 was supplied to New.
var ErrNegativeRadius = errors.New("distpolicy: radius must be non-negative")

// Policy clamps a raw distance into an objective contribution. Policy is
// immutable once constructed and safe for concurrent use.
type Policy struct {
	radius float64 // math.Inf(1) when no radius is configured
}

// Infinite returns a Policy with no coverage radius: cost(d) = d.
func Infinite() Policy { return Policy{radius: math.Inf(1)} }

// New returns a Policy that clamps every distance at r. r must be >= 0;
// pass math.Inf(1) (or use Infinite) to disable clamping.
func New(r float64) (Policy, error) {
	if r < 0 {
		return Policy{}, ErrNegativeRadius
	}

	return Policy{radius: r}, nil
}

// Radius returns the configured coverage radius (math.Inf(1) if none).
func (p Policy) Radius() float64 { return p.radius }

// Finite reports whether p has a finite coverage radius.
func (p Policy) Finite() bool { return !math.IsInf(p.radius, 1) }

// Cost maps a raw distance d to its objective contribution: d when no
// radius is set, min(d, r) otherwise. The strict >= comparison below
// ensures a distance that has already reached r via earlier clamping
// (accumulated across several edges) stays pinned at r instead of drifting
// upward from further additions.
func (p Policy) Cost(d float64) float64 {
	if d >= p.radius {
		return p.radius
	}

	return d
}

// CostCovered is the contribution of a leaf already covered by a prior
// center: always 0, independent of d and of the configured radius.
func CostCovered(float64) float64 { return 0 }
