// Package pmedian implements the tree p-median dynamic program: given a
// core.PreparedTree and a target count p, it computes the minimum possible
// sum, over every leaf, of the clamped distance to its nearest chosen
// medoid, and the set of leaves that achieves it.
//
// The algorithm is a variant of Tamir's O(n·p)-style DP for p-median on
// trees, adapted for the clamped (coverage-radius) distance policy and for
// leaves that are pre-covered by a prior center. Every node v carries a
// sorted breakpoint list (its "D_v", see types.go) of candidate distances
// from v down to a leaf in its own subtree, and two tables indexed by
// (q, breakpoint):
//
//	F_v[q][k]     - minimum achievable cost of v's subtree's leaves when q
//	                medoids are committed inside the subtree and the best
//	                distance available from outside the subtree (through
//	                v's parent, or reflected back through a sibling) is
//	                exactly D_v[k].
//	reach_v[q]    - the best distance from v down to a medoid chosen among
//	                v's own q, used to offer help to v's sibling when the
//	                parent combines the two (this is what §3's "G_v"
//	                degenerates to once the optimal split for x=∞ is
//	                fixed — see DESIGN.md for the derivation).
//
// Combining two children folds in exactly this sibling contribution: the
// effective distance offered to child a is the better of (the parent's own
// external offer, once shifted across edge w_a) and (the sibling's best
// internal reach, shifted across both edges) — this is what lets, e.g., a
// leaf correctly use its cherry-mate as its nearest medoid with no help
// from anywhere above. Values between two stored breakpoints are read via
// linear interpolation (evalAt in breakpoints.go): F_v(q, ·) is piecewise
// linear and non-decreasing in the external distance, by construction.
//
// Traceback (traceback.go) replays the same deterministic combine decision
// down from the root to recover which leaves were chosen, without needing
// a separately stored traceback table.
package pmedian
