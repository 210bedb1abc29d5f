package render

import (
	"strconv"
	"strings"

	"github.com/evobio-go/parnas/rawtree"
)

// marker wraps a chosen medoid's label in the rendered Newick output, e.g.
// "A" becomes "*A*". Downstream tooling that doesn't care about medoids can
// simply strip '*' characters from labels.
const marker = "*"

// Highlight renders tree as Newick (see treeio/newick.Write), wrapping every
// leaf label present in medoids with marker so the chosen set is visible
// directly in the text form.
func Highlight(tree *rawtree.Tree, medoids []string) string {
	if tree == nil || tree.Root == nil {
		return ";"
	}

	chosen := make(map[string]bool, len(medoids))
	for _, label := range medoids {
		chosen[label] = true
	}

	var b strings.Builder
	writeHighlighted(&b, tree.Root, chosen)
	b.WriteByte(';')

	return b.String()
}

func writeHighlighted(b *strings.Builder, n *rawtree.Node, chosen map[string]bool) {
	if len(n.Children) > 0 {
		b.WriteByte('(')
		for i, e := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeHighlighted(b, e.Node, chosen)
			b.WriteByte(':')
			b.WriteString(strconv.FormatFloat(e.Weight, 'g', -1, 64))
		}
		b.WriteByte(')')
	}

	label := n.Label
	if chosen[label] {
		label = marker + label + marker
	}
	b.WriteString(strings.ReplaceAll(label, " ", "_"))
}
