package newick

import (
	"strconv"
	"strings"

	"github.com/evobio-go/parnas/rawtree"
)

// Write renders tree as a Newick string, terminated by a semicolon. Labels
// containing a Newick structural character other than a space are
// single-quoted; in any other label, spaces are written as underscores;
// edge weights are formatted with strconv.FormatFloat's shortest
// round-trippable representation.
func Write(tree *rawtree.Tree) string {
	if tree == nil || tree.Root == nil {
		return ";"
	}

	var b strings.Builder
	writeNode(&b, tree.Root)
	b.WriteByte(';')

	return b.String()
}

func writeNode(b *strings.Builder, n *rawtree.Node) {
	if len(n.Children) > 0 {
		b.WriteByte('(')
		for i, e := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, e.Node)
			b.WriteByte(':')
			b.WriteString(strconv.FormatFloat(e.Weight, 'g', -1, 64))
		}
		b.WriteByte(')')
	}

	b.WriteString(quoteLabel(n.Label))
}

func quoteLabel(label string) string {
	if label == "" {
		return ""
	}
	if !needsQuoting(label) {
		return strings.ReplaceAll(label, " ", "_")
	}

	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(label); i++ {
		if label[i] == '\'' {
			b.WriteByte('\'')
		}
		b.WriteByte(label[i])
	}
	b.WriteByte('\'')

	return b.String()
}

func needsQuoting(label string) bool {
	for i := 0; i < len(label); i++ {
		if isStructural(label[i]) && label[i] != ' ' {
			return true
		}
	}
	return false
}
