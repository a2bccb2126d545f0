package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/arbor/pkg/tree"
	"github.com/muesli/termenv"
)

// Outline writes an indented view of every root and its descendants.
// Pass termenv.Ascii for plain output.
func Outline(w io.Writer, t *tree.Tree, p termenv.Profile) error {
	for _, root := range t.Roots() {
		if err := outlineNode(w, root, 0, p); err != nil {
			return err
		}
	}
	return nil
}

func outlineNode(w io.Writer, n *tree.Node, depth int, p termenv.Profile) error {
	line := strings.Repeat("  ", depth) + termenv.String(n.String()).Foreground(p.Color("#a78bfa")).String()
	if prob, ok := probability(n); ok {
		line += fmt.Sprintf(" p=%.2f", prob)
	}
	if s, ok := n.ChildSpace(); ok {
		line += " " + termenv.String(s.String()).Foreground(p.Color("#f472b6")).String()
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := outlineNode(w, c, depth+1, p); err != nil {
			return err
		}
	}
	return nil
}
