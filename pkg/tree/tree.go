package tree

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/google/uuid"
)

// Tree owns every node and space created within one model.
// Membership is by handle; members are never removed.
type Tree struct {
	nodes   []*Node
	spaces  []Space
	factory *Factory
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	newUUID func() uuid.UUID
}

// New creates an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{
		factory: DefaultFactory(),
		newUUID: uuid.New,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	return t
}

// NewRoot creates a node with no parent link and registers it with the tree.
// It is the only way to create a node directly; every other node comes from an expansion.
func (t *Tree) NewRoot() *Node {
	n := &Node{UUID: t.newUUID(), tree: t}
	t.registerNode(n)
	return n
}

// NewSpace builds a space of the given kind through the tree's factory.
// An unknown kind returns domain.ErrUnknownKind and registers nothing.
func (t *Tree) NewSpace(kind domain.Kind, label string) (Space, error) {
	return t.factory.Build(t, kind, label)
}

// NewActionSpace creates and registers an action space.
func (t *Tree) NewActionSpace(label string) *ActionSpace {
	s := &ActionSpace{Base: &Base{kind: domain.KindAction, label: label, tree: t}}
	t.registerSpace(s)
	return s
}

// NewChanceSpace creates and registers a chance space.
func (t *Tree) NewChanceSpace(label string) *ChanceSpace {
	s := &ChanceSpace{Base: &Base{kind: domain.KindChance, label: label, tree: t}}
	t.registerSpace(s)
	return s
}

// Node returns the node addressed by id.
func (t *Tree) Node(id domain.NodeID) (*Node, bool) {
	if !id.Valid() || int(id) > len(t.nodes) {
		return nil, false
	}
	return t.nodes[id-1], true
}

// Space returns the space addressed by id.
func (t *Tree) Space(id domain.SpaceID) (Space, bool) {
	if !id.Valid() || int(id) > len(t.spaces) {
		return nil, false
	}
	return t.spaces[id-1], true
}

// Nodes returns every registered node in creation order.
func (t *Tree) Nodes() []*Node {
	out := make([]*Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Spaces returns every registered space in creation order.
func (t *Tree) Spaces() []Space {
	out := make([]Space, len(t.spaces))
	copy(out, t.spaces)
	return out
}

// NodeCount returns the number of registered nodes.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// SpaceCount returns the number of registered spaces.
func (t *Tree) SpaceCount() int { return len(t.spaces) }

// Roots returns the nodes that have no parent space, in creation order.
func (t *Tree) Roots() []*Node {
	var roots []*Node
	for _, n := range t.nodes {
		if n.IsRoot() {
			roots = append(roots, n)
		}
	}
	return roots
}

// Attach links the node addressed by nodeID to the space addressed by spaceID.
func (t *Tree) Attach(nodeID domain.NodeID, spaceID domain.SpaceID) error {
	n, ok := t.Node(nodeID)
	if !ok {
		return fmt.Errorf("attach %s: %w", nodeID, domain.ErrNodeNotFound)
	}
	s, ok := t.Space(spaceID)
	if !ok {
		return fmt.Errorf("attach %s: %w", spaceID, domain.ErrSpaceNotFound)
	}
	return n.AttachChildSpace(s)
}

// Expand expands the space addressed by id. See Base.Expand.
func (t *Tree) Expand(id domain.SpaceID) ([]Expansion, error) {
	s, ok := t.Space(id)
	if !ok {
		return nil, fmt.Errorf("expand %s: %w", id, domain.ErrSpaceNotFound)
	}
	return s.Expand(), nil
}

// registerNode assigns a handle to n. Registering the same node again is a no-op.
func (t *Tree) registerNode(n *Node) {
	if existing, ok := t.Node(n.ID); ok && existing == n {
		return
	}
	t.nodes = append(t.nodes, n)
	n.ID = domain.NodeID(len(t.nodes))

	ev := &domain.NodeEvent{
		EventBase: domain.NewEventBase(domain.EventNodeCreated),
		NodeID:    n.ID,
		UUID:      n.UUID.String(),
	}
	if n.parentSpace != nil {
		ev.ParentSpaceID = n.parentSpace.ID()
		ev.OptionID = n.optionID
	}
	t.logger.Debug("node created", "node_id", n.ID, "uuid", ev.UUID, "parent_space", ev.ParentSpaceID, "option_id", ev.OptionID)
	if t.hooks.OnNodeCreated != nil {
		t.hooks.OnNodeCreated(ev)
	}
}

// registerSpace assigns a handle to s. Registering the same space again is a no-op.
func (t *Tree) registerSpace(s Space) {
	b := s.base()
	if existing, ok := t.Space(b.id); ok && existing == s {
		return
	}
	t.spaces = append(t.spaces, s)
	b.id = domain.SpaceID(len(t.spaces))

	t.logger.Debug("space created", "space_id", b.id, "kind", b.kind, "label", b.label)
	if t.hooks.OnSpaceCreated != nil {
		t.hooks.OnSpaceCreated(&domain.SpaceEvent{
			EventBase: domain.NewEventBase(domain.EventSpaceCreated),
			SpaceID:   b.id,
			Kind:      b.kind,
			Label:     b.label,
		})
	}
}

// expand materializes one child per option for every owner of s, owners in attach order.
func (t *Tree) expand(s Space) []Expansion {
	b := s.base()
	owners := make([]*Node, len(b.owners))
	copy(owners, b.owners)

	created := 0
	result := make([]Expansion, 0, len(owners))
	for _, owner := range owners {
		children := make([]*Node, 0, len(b.options))
		for i := range b.options {
			child := &Node{
				UUID:        t.newUUID(),
				tree:        t,
				parentSpace: s,
				parentNode:  owner,
				optionID:    i,
			}
			t.registerNode(child)
			children = append(children, child)
		}
		owner.children = children
		created += len(children)
		result = append(result, Expansion{Owner: owner, Children: children})
	}

	t.logger.Debug("space expanded", "space_id", b.id, "kind", b.kind, "owners", len(owners), "options", len(b.options), "created", created)
	if t.hooks.OnExpand != nil {
		t.hooks.OnExpand(&domain.ExpandEvent{
			EventBase: domain.NewEventBase(domain.EventExpand),
			SpaceID:   b.id,
			Kind:      b.kind,
			Owners:    len(owners),
			Options:   len(b.options),
			Created:   created,
		})
	}
	return result
}
