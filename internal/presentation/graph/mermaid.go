package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/tree"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a tree.
// Root nodes are drawn as circles, other nodes as rectangles. Each edge is
// labelled with the space and option that produced the child; chance edges
// also carry the option probability.
func GenerateMermaid(t *tree.Tree) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, n := range t.Nodes() {
		opener, closer := "[", "]"
		if n.IsRoot() {
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", n.ID, opener, escape(nodeLabel(n)), closer))

		parent, ok := n.Parent()
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", parent.ID, escape(edgeLabel(n)), n.ID))
	}

	return sb.String()
}

func nodeLabel(n *tree.Node) string {
	label, err := n.OptionLabel()
	if err != nil {
		return "?"
	}
	return label
}

// edgeLabel renders "space: option", plus the probability for chance spaces.
func edgeLabel(n *tree.Node) string {
	space, _ := n.ParentSpace()
	label := fmt.Sprintf("%s: %s", space.Label(), nodeLabel(n))
	if p, ok := probability(n); ok {
		label += fmt.Sprintf(" (%.2f)", p)
	}
	return label
}

func probability(n *tree.Node) (float64, bool) {
	space, ok := n.ParentSpace()
	if !ok {
		return 0, false
	}
	chance, ok := space.(*tree.ChanceSpace)
	if !ok {
		return 0, false
	}
	id, _ := n.OptionID()
	p, err := chance.Probability(id)
	if err != nil {
		return 0, false
	}
	return p, true
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
