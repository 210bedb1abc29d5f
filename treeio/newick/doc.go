// Package newick reads and writes the Newick tree text format into and out
// of package rawtree's arbitrary-arity tree model. It is the "reading a
// tree from a standard serialised form" collaborator the core solver
// deliberately leaves external.
//
// The grammar accepted by Parse is the common phylogenetics dialect:
// nested parenthesised subtrees, optional quoted or bare labels, optional
// ":branch-length", a trailing semicolon, and "[...]" comments (including
// NHX-style annotations) skipped wherever whitespace would be allowed.
package newick
