// Package prep normalises an arbitrary rawtree.Tree into the rooted binary
// core.PreparedTree the p-median dynamic program (package pmedian)
// operates on.
//
// Preparation proceeds in four steps, mirroring the order edges and nodes
// are actually removed/introduced:
//
//  1. Prune every leaf named in fullyExcluded, contracting any internal
//     node left with a single child by summing its two incident edge
//     weights.
//  2. Tag every surviving leaf: Allowed = not in excluded, PriorCovered =
//     in priorCovered.
//  3. Binarise: any internal node with k>2 children gets k-2 zero-weight
//     internal nodes inserted so every internal node ends up with exactly
//     two children; any remaining unifurcation is contracted the same way
//     as step 1.
//  4. Assign post-order integer indices and emit a core.PreparedTree.
//
// Rooting: the spec allows rooting at an arbitrary internal node, since the
// DP's result is root-invariant (see core.PreparedTree doc and DESIGN.md).
// This package roots at the raw tree's existing root rather than picking a
// different one, since the existing root already satisfies "an arbitrary
// internal node" and avoids needless restructuring.
package prep
