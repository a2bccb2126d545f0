package tree

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's subtree.
// Only the children of each node's latest expansion are followed; nodes from an
// earlier expansion stay registered with the tree but are not reached.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
}

// CountNodes returns the number of nodes reachable from root, root included.
// After a re-expansion it is lower than Tree.NodeCount, see Walk.
func CountNodes(root *Node) int {
	total := 0
	Walk(root, func(*Node) bool {
		total++
		return true
	})
	return total
}

// Depth returns the number of expansions between the tree's root and n.
func Depth(n *Node) int {
	d := 0
	for p, ok := n.Parent(); ok; p, ok = p.Parent() {
		d++
	}
	return d
}

// Path returns the option labels from the root down to n, root label first.
func Path(n *Node) ([]string, error) {
	var labels []string
	for cur := n; cur != nil; cur = cur.parentNode {
		label, err := cur.OptionLabel()
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return labels, nil
}

// Leaves returns the registered nodes that have no children, in creation order.
// It scans the whole registry, so children superseded by a later expansion are included.
func (t *Tree) Leaves() []*Node {
	var leaves []*Node
	for _, n := range t.nodes {
		if len(n.children) == 0 {
			leaves = append(leaves, n)
		}
	}
	return leaves
}
