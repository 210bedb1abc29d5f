package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/evobio-go/parnas/rawtree"
)

// ANSI color codes for tip rendering; kept minimal (no external color
// library appears anywhere in the pipeline's dependency surface) since this
// is the one place the CLI touches a terminal directly.
const (
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// ANSI writes tree to w as an indented listing, one line per node, with
// every leaf whose label is in medoids printed in green and suffixed with
// " (medoid)". Internal nodes are printed with their edge weight to their
// parent (root has none).
func ANSI(w io.Writer, tree *rawtree.Tree, medoids []string) error {
	if tree == nil || tree.Root == nil {
		return nil
	}

	chosen := make(map[string]bool, len(medoids))
	for _, label := range medoids {
		chosen[label] = true
	}

	return writeANSINode(w, tree.Root, 0, -1, chosen)
}

func writeANSINode(w io.Writer, n *rawtree.Node, depth int, weightFromParent float64, chosen map[string]bool) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	label := n.Label
	if label == "" {
		label = "(unnamed)"
	}

	suffix := ""
	prefix := ""
	if n.IsLeaf() && chosen[n.Label] {
		prefix, suffix = ansiGreen, " (medoid)"+ansiReset
	}

	edgeText := ""
	if weightFromParent >= 0 {
		edgeText = " :" + strconv.FormatFloat(weightFromParent, 'g', -1, 64)
	}

	if _, err := fmt.Fprintf(w, "%s%s%s%s%s\n", indent, prefix, label, edgeText, suffix); err != nil {
		return err
	}

	for _, e := range n.Children {
		if err := writeANSINode(w, e.Node, depth+1, e.Weight, chosen); err != nil {
			return err
		}
	}

	return nil
}
