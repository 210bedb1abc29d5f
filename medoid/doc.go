// Package medoid is the public entry point of the p-median pipeline: it
// wires rawtree → prep → distpolicy → pmedian behind two functions,
// FindMedoids and FindMedoidsFull, so callers never construct a
// core.PreparedTree or a distpolicy.Policy by hand.
package medoid
