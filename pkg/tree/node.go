package tree

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/google/uuid"
)

// Node is a decision point. A non-root node remembers which option of which space produced it.
type Node struct {
	ID   domain.NodeID
	UUID uuid.UUID

	// Placeholders for analysis; the tree never reads or writes them.
	Utility float64
	Prob    float64
	EV      float64

	tree        *Tree
	parentSpace Space
	parentNode  *Node
	optionID    int
	childSpace  Space
	children    []*Node
}

// IsRoot reports whether the node has no parent space.
func (n *Node) IsRoot() bool { return n.parentSpace == nil }

// ParentSpace returns the space whose expansion produced this node.
func (n *Node) ParentSpace() (Space, bool) {
	return n.parentSpace, n.parentSpace != nil
}

// OptionID returns the zero-based option index this node was created for.
// It is unset for a root node.
func (n *Node) OptionID() (int, bool) {
	if n.parentSpace == nil {
		return 0, false
	}
	return n.optionID, true
}

// Parent returns the owning node that was expanded to produce this node.
func (n *Node) Parent() (*Node, bool) {
	return n.parentNode, n.parentNode != nil
}

// ChildSpace returns the node's outgoing space.
func (n *Node) ChildSpace() (Space, bool) {
	return n.childSpace, n.childSpace != nil
}

// Children returns the nodes created for this node by the most recent expansion of its child space.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AttachChildSpace makes s the node's outgoing space and registers the node as an owner of s.
// Reattaching a different space also drops the node from the previous space's owners.
func (n *Node) AttachChildSpace(s Space) error {
	if s == nil {
		return fmt.Errorf("attach to %s: %w", n.ID, domain.ErrSpaceNotFound)
	}
	b := s.base()
	if b == nil {
		return fmt.Errorf("attach nil %T to %s: %w", s, n.ID, domain.ErrSpaceNotFound)
	}
	if b.tree != n.tree {
		return fmt.Errorf("attach %s to %s: %w", b.id, n.ID, domain.ErrForeignSpace)
	}
	if n.childSpace == s {
		return nil
	}

	previous := domain.NoSpace
	if n.childSpace != nil {
		old := n.childSpace.base()
		old.removeOwner(n)
		previous = old.id
	}
	n.childSpace = s
	b.registerOwner(n)

	n.tree.logger.Debug("space attached", "node_id", n.ID, "space_id", b.id, "previous_space", previous)
	if n.tree.hooks.OnAttach != nil {
		n.tree.hooks.OnAttach(&domain.AttachEvent{
			EventBase:     domain.NewEventBase(domain.EventAttach),
			NodeID:        n.ID,
			SpaceID:       b.id,
			PreviousSpace: previous,
		})
	}
	return nil
}

// OptionLabel returns domain.RootLabel for a root node, otherwise the label of the
// option that produced it. An index outside the parent space's options returns
// domain.ErrInvalidOption.
func (n *Node) OptionLabel() (string, error) {
	if n.parentSpace == nil {
		return domain.RootLabel, nil
	}
	opts := n.parentSpace.base().options
	if n.optionID < 0 || n.optionID >= len(opts) {
		return "", fmt.Errorf("%s option %d of %s (%d options): %w",
			n.ID, n.optionID, n.parentSpace.ID(), len(opts), domain.ErrInvalidOption)
	}
	return opts[n.optionID], nil
}

// String wraps the option label in parentheses, e.g. "(Root)".
func (n *Node) String() string {
	label, err := n.OptionLabel()
	if err != nil {
		return "(?)"
	}
	return "(" + label + ")"
}
