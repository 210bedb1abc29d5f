// Package rawtree is the general, arbitrary-arity tree model that feeds the
// p-median pipeline: it is what a Newick parse (package treeio/newick)
// produces, and what package prep consumes to build a core.PreparedTree.
//
// Unlike core.PreparedTree, a rawtree.Tree is mutable while it is being
// assembled (by a parser, a builder, or a re-weighting pass) and may have
// internal nodes of any degree and an arbitrary root. Validate reports
// whether the tree is connected, acyclic, and non-negatively weighted —
// the preconditions package prep requires before it may binarise and index
// the tree.
package rawtree
