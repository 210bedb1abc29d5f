// Package align provides minimal FASTA alignment I/O and a Fitch-parsimony
// ancestral-substitution counter, used to derive alternative tree edge
// weights from sequence data (see rawtree.Tree.Reweight).
package align
