// Package treegen generates randomized weighted binary rawtree.Tree values
// for property-based testing of the p-median pipeline: every call is
// driven by a caller-supplied *rand.Rand so a fixed seed reproduces an
// identical tree.
package treegen
