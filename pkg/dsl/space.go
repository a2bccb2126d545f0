package dsl

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
)

// SpaceBuilder provides a fluent API for declaring the options of a space.
type SpaceBuilder struct {
	kind    domain.Kind
	label   string
	options []string
	probs   []float64
	builder *Builder
}

// Option appends an action option.
func (s *SpaceBuilder) Option(label string) *SpaceBuilder {
	if s.kind != domain.KindAction {
		s.builder.fail(fmt.Errorf("option %q on %s space %q: %w", label, s.kind, s.label, ErrKindMismatch))
		return s
	}
	s.options = append(s.options, label)
	return s
}

// Outcome appends a chance option with its probability.
func (s *SpaceBuilder) Outcome(label string, prob float64) *SpaceBuilder {
	if s.kind != domain.KindChance {
		s.builder.fail(fmt.Errorf("outcome %q on %s space %q: %w", label, s.kind, s.label, ErrKindMismatch))
		return s
	}
	s.options = append(s.options, label)
	s.probs = append(s.probs, prob)
	return s
}

func (s *SpaceBuilder) hasOption(label string) bool {
	for _, o := range s.options {
		if o == label {
			return true
		}
	}
	return false
}

// Branch is a pending attachment created by Builder.Under.
type Branch struct {
	space   string
	option  string
	builder *Builder
}

// Then attaches the named space to every node produced by the branch's option.
func (br *Branch) Then(space string) *Builder {
	b := br.builder
	key := branchKey{space: br.space, option: br.option}
	if prev, ok := b.branches[key]; ok && prev != space {
		b.fail(fmt.Errorf("%q/%q -> %q and %q: %w", br.space, br.option, prev, space, ErrDuplicateBranch))
		return b
	}
	if _, ok := b.branches[key]; !ok {
		b.branchOrder = append(b.branchOrder, key)
	}
	b.branches[key] = space
	return b
}
