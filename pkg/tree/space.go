package tree

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// Space is a set of mutually exclusive options following a node.
// Every implementation embeds the *Base handed to it by a Factory constructor.
type Space interface {
	ID() domain.SpaceID
	Kind() domain.Kind
	Label() string
	Options() []string
	Len() int
	Owners() []*Node
	Expand() []Expansion
	String() string

	base() *Base
}

// Expansion holds the children created for one owning node.
type Expansion struct {
	Owner    *Node
	Children []*Node
}

// Children flattens an expansion result, owners in attach order.
// For a space with a single owner it is the owner's children.
func Children(result []Expansion) []*Node {
	var out []*Node
	for _, e := range result {
		out = append(out, e.Children...)
	}
	return out
}

// Base carries the state shared by every space variant.
type Base struct {
	id      domain.SpaceID
	kind    domain.Kind
	label   string
	options []string
	owners  []*Node
	tree    *Tree
}

func (b *Base) base() *Base { return b }

// ID returns the space handle.
func (b *Base) ID() domain.SpaceID { return b.id }

// Kind returns the tag the space was built with.
func (b *Base) Kind() domain.Kind { return b.kind }

// Label returns the display label.
func (b *Base) Label() string { return b.label }

// Options returns a copy of the option labels in insertion order.
func (b *Base) Options() []string {
	out := make([]string, len(b.options))
	copy(out, b.options)
	return out
}

// Len returns the number of options.
func (b *Base) Len() int { return len(b.options) }

// Owners returns the nodes that currently use this space as their outgoing space, in attach order.
func (b *Base) Owners() []*Node {
	out := make([]*Node, len(b.owners))
	copy(out, b.owners)
	return out
}

// Expand creates one child node per option for every owning node, independently.
// Children follow option order. Calling it again creates a fresh set of children;
// earlier children are left untouched.
func (b *Base) Expand() []Expansion {
	s, ok := b.tree.Space(b.id)
	if !ok || s.base() != b {
		return nil
	}
	return b.tree.expand(s)
}

func (b *Base) String() string { return fmt.Sprintf("--[%s]--", b.label) }

func (b *Base) appendOption(label string) int {
	b.options = append(b.options, label)
	return len(b.options) - 1
}

func (b *Base) registerOwner(n *Node) {
	for _, o := range b.owners {
		if o == n {
			return
		}
	}
	b.owners = append(b.owners, n)
}

func (b *Base) removeOwner(n *Node) {
	for i, o := range b.owners {
		if o == n {
			b.owners = append(b.owners[:i], b.owners[i+1:]...)
			return
		}
	}
}

// ActionSpace is a discrete space following a decision node. Options carry only a label.
type ActionSpace struct {
	*Base
}

// base is nil-safe so a typed nil space can be rejected instead of dereferenced.
func (s *ActionSpace) base() *Base {
	if s == nil {
		return nil
	}
	return s.Base
}

// AddOption appends an option and returns its index. Duplicate labels are allowed.
func (s *ActionSpace) AddOption(label string) int {
	return s.appendOption(label)
}

// ChanceSpace is a discrete space following a chance node. Every option carries a probability.
// Probabilities are stored as given; their range and sum are never checked.
type ChanceSpace struct {
	*Base
	probs []float64
}

func (s *ChanceSpace) base() *Base {
	if s == nil {
		return nil
	}
	return s.Base
}

// AddOption appends an option with its probability and returns its index.
func (s *ChanceSpace) AddOption(label string, prob float64) int {
	s.probs = append(s.probs, prob)
	return s.appendOption(label)
}

// Probabilities returns a copy of the option probabilities, parallel to Options.
func (s *ChanceSpace) Probabilities() []float64 {
	out := make([]float64, len(s.probs))
	copy(out, s.probs)
	return out
}

// Probability returns the probability of option i.
func (s *ChanceSpace) Probability(i int) (float64, error) {
	if i < 0 || i >= len(s.probs) {
		return 0, fmt.Errorf("option %d of %s: %w", i, s.id, domain.ErrInvalidOption)
	}
	return s.probs[i], nil
}

// TotalProbability sums the option probabilities. It is informational only.
func (s *ChanceSpace) TotalProbability() float64 {
	var total float64
	for _, p := range s.probs {
		total += p
	}
	return total
}
