// Package demo assembles the sample scenario used by the arbor command:
// choose a country, then a job type, with a chance space for an outside reaction.
package demo

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

// Scenario exposes the pieces of the sample tree.
type Scenario struct {
	Tree      *tree.Tree
	Root      *tree.Node
	Countries []*tree.Node

	Country  *tree.ActionSpace
	Job      *tree.ActionSpace
	Reaction *tree.ChanceSpace
}

// Build assembles the sample tree.
// The job space is shared by the first two countries; the reaction space is
// registered but never attached.
func Build(opts ...tree.Option) (*Scenario, error) {
	t := tree.New(opts...)
	sc := &Scenario{Tree: t, Root: t.NewRoot()}

	country, err := actionSpace(t, "country choice")
	if err != nil {
		return nil, err
	}
	sc.Country = country
	if err := sc.Root.AttachChildSpace(country); err != nil {
		return nil, err
	}
	country.AddOption("Italy")
	country.AddOption("Edinburgh")
	country.AddOption("Colombia")
	sc.Countries = tree.Children(country.Expand())

	sc.Job = t.NewActionSpace("job type")
	sc.Job.AddOption("Freelance")
	sc.Job.AddOption("Employed")

	sc.Reaction = t.NewChanceSpace("reaction")
	sc.Reaction.AddOption("problem continues", 0.7)
	sc.Reaction.AddOption("problem stops", 0.3)

	for _, n := range sc.Countries[:2] {
		if err := n.AttachChildSpace(sc.Job); err != nil {
			return nil, err
		}
	}
	sc.Job.Expand()

	return sc, nil
}

func actionSpace(t *tree.Tree, label string) (*tree.ActionSpace, error) {
	s, err := t.NewSpace(domain.KindAction, label)
	if err != nil {
		return nil, err
	}
	a, ok := s.(*tree.ActionSpace)
	if !ok {
		return nil, fmt.Errorf("space %q: factory returned %T", label, s)
	}
	return a, nil
}
