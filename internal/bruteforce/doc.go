// Package bruteforce exhaustively enumerates every size-p subset of a
// PreparedTree's allowed leaves and scores it directly against
// distpolicy.Policy, serving as a correctness oracle for package pmedian
// on the small trees used in property-based tests. It shares pmedian's
// public signature so a test can call both and compare.
package bruteforce
