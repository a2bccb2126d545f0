package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

type branchKey struct {
	space  string
	option string
}

// Builder manages the tree declaration.
type Builder struct {
	spaces      map[string]*SpaceBuilder
	order       []string
	root        string
	branches    map[branchKey]string
	branchOrder []branchKey
	errs        []error
}

// New creates a new tree builder.
func New() *Builder {
	return &Builder{
		spaces:   make(map[string]*SpaceBuilder),
		branches: make(map[branchKey]string),
	}
}

// Action declares an action space.
// If the label is already declared, it returns the existing builder.
func (b *Builder) Action(label string) *SpaceBuilder {
	return b.declare(domain.KindAction, label)
}

// Chance declares a chance space.
// If the label is already declared, it returns the existing builder.
func (b *Builder) Chance(label string) *SpaceBuilder {
	return b.declare(domain.KindChance, label)
}

// Root names the space attached to the root node.
func (b *Builder) Root(space string) *Builder {
	b.root = space
	return b
}

// Under selects the nodes produced by option of space, to be completed with Then.
func (b *Builder) Under(space, option string) *Branch {
	return &Branch{space: space, option: option, builder: b}
}

// Build creates the tree, registers every declared space and expands from the root.
// Spaces are expanded once each, in topological order of the branches, so a space
// reached from several depths is expanded after all of its owners exist.
func (b *Builder) Build(opts ...tree.Option) (*tree.Tree, error) {
	order, err := b.validate()
	if err != nil {
		return nil, err
	}

	t := tree.New(opts...)
	spaces := make(map[string]tree.Space, len(b.order))
	for _, label := range b.order {
		s, err := b.spaces[label].build(t)
		if err != nil {
			return nil, err
		}
		spaces[label] = s
	}

	root := t.NewRoot()
	if err := root.AttachChildSpace(spaces[b.root]); err != nil {
		return nil, err
	}

	for _, label := range order {
		s := spaces[label]
		for _, child := range tree.Children(s.Expand()) {
			option, err := child.OptionLabel()
			if err != nil {
				return nil, err
			}
			target, ok := b.branches[branchKey{space: label, option: option}]
			if !ok {
				continue
			}
			if err := child.AttachChildSpace(spaces[target]); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func (b *Builder) declare(kind domain.Kind, label string) *SpaceBuilder {
	if sb, ok := b.spaces[label]; ok {
		if sb.kind != kind {
			b.fail(fmt.Errorf("space %q declared as %s and %s: %w", label, sb.kind, kind, ErrKindMismatch))
		}
		return sb
	}
	sb := &SpaceBuilder{kind: kind, label: label, builder: b}
	b.spaces[label] = sb
	b.order = append(b.order, label)
	return sb
}

func (b *Builder) fail(err error) {
	b.errs = append(b.errs, err)
}

func (b *Builder) validate() ([]string, error) {
	errs := append([]error(nil), b.errs...)
	if b.root == "" {
		errs = append(errs, ErrNoRoot)
	} else if _, ok := b.spaces[b.root]; !ok {
		errs = append(errs, fmt.Errorf("root %q: %w", b.root, ErrUndeclaredSpace))
	}
	for _, key := range b.branchOrder {
		from, ok := b.spaces[key.space]
		if !ok {
			errs = append(errs, fmt.Errorf("branch from %q: %w", key.space, ErrUndeclaredSpace))
			continue
		}
		if !from.hasOption(key.option) {
			errs = append(errs, fmt.Errorf("branch from %q/%q: %w", key.space, key.option, ErrUndeclaredOption))
		}
		if target := b.branches[key]; b.spaces[target] == nil {
			errs = append(errs, fmt.Errorf("branch to %q: %w", target, ErrUndeclaredSpace))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b.expansionOrder()
}

// expansionOrder sorts the spaces reachable from the root so every space comes
// after the spaces branching into it (Kahn's algorithm). A cycle returns ErrSpaceReused.
func (b *Builder) expansionOrder() ([]string, error) {
	edges := make(map[string][]string)
	for _, key := range b.branchOrder {
		edges[key.space] = append(edges[key.space], b.branches[key])
	}

	reachable := map[string]bool{b.root: true}
	stack := []string{b.root}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, target := range edges[s] {
			if !reachable[target] {
				reachable[target] = true
				stack = append(stack, target)
			}
		}
	}

	indegree := make(map[string]int, len(reachable))
	for s := range reachable {
		for _, target := range edges[s] {
			indegree[target]++
		}
	}
	var queue []string
	for _, label := range b.order {
		if reachable[label] && indegree[label] == 0 {
			queue = append(queue, label)
		}
	}

	order := make([]string, 0, len(reachable))
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		order = append(order, s)
		for _, target := range edges[s] {
			indegree[target]--
			if indegree[target] == 0 {
				queue = append(queue, target)
			}
		}
	}
	if len(order) != len(reachable) {
		for _, label := range b.order {
			if reachable[label] && indegree[label] > 0 {
				return nil, fmt.Errorf("space %q is part of a cycle: %w", label, ErrSpaceReused)
			}
		}
	}
	return order, nil
}

func (s *SpaceBuilder) build(t *tree.Tree) (tree.Space, error) {
	space, err := t.NewSpace(s.kind, s.label)
	if err != nil {
		return nil, fmt.Errorf("space %q: %w", s.label, err)
	}
	switch v := space.(type) {
	case *tree.ActionSpace:
		for _, o := range s.options {
			v.AddOption(o)
		}
	case *tree.ChanceSpace:
		for i, o := range s.options {
			v.AddOption(o, s.probs[i])
		}
	default:
		return nil, fmt.Errorf("space %q: unsupported variant %T: %w", s.label, space, ErrKindMismatch)
	}
	return space, nil
}
