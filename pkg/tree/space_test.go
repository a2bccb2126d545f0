package tree_test

import (
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionSpace_AddOptionPreservesOrder(t *testing.T) {
	tr := tree.New()
	s := tr.NewActionSpace("country choice")
	for i, l := range []string{"Italy", "Edinburgh", "Colombia", "Italy"} {
		assert.Equal(t, i, s.AddOption(l))
	}
	assert.Equal(t, []string{"Italy", "Edinburgh", "Colombia", "Italy"}, s.Options())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, domain.KindAction, s.Kind())
	assert.Equal(t, "country choice", s.Label())
	assert.Equal(t, "--[country choice]--", s.String())

	opts := s.Options()
	opts[0] = "mutated"
	assert.Equal(t, "Italy", s.Options()[0])
}

func TestChanceSpace_ProbabilitiesTrackOptions(t *testing.T) {
	tr := tree.New()
	s := tr.NewChanceSpace("reaction")
	s.AddOption("p", 0.7)
	s.AddOption("q", 0.3)

	assert.Equal(t, []string{"p", "q"}, s.Options())
	assert.Equal(t, []float64{0.7, 0.3}, s.Probabilities())

	s.AddOption("r", 0.9)
	assert.Len(t, s.Probabilities(), s.Len())
	assert.InDelta(t, 1.9, s.TotalProbability(), 1e-9)

	p, err := s.Probability(2)
	require.NoError(t, err)
	assert.Equal(t, 0.9, p)
	_, err = s.Probability(3)
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
}

func TestNode_ReattachDropsStaleOwner(t *testing.T) {
	tr := tree.New()
	n := tr.NewRoot()
	first := tr.NewActionSpace("first")
	first.AddOption("a")
	second := tr.NewActionSpace("second")

	require.NoError(t, n.AttachChildSpace(first))
	require.NoError(t, n.AttachChildSpace(first))
	assert.Len(t, first.Owners(), 1)

	require.NoError(t, n.AttachChildSpace(second))
	assert.Empty(t, first.Owners())
	assert.Equal(t, []*tree.Node{n}, second.Owners())

	assert.Empty(t, first.Expand())
	assert.Equal(t, 1, tr.NodeCount())
}

func TestNode_AttachForeignSpace(t *testing.T) {
	a, b := tree.New(), tree.New()
	n := a.NewRoot()
	s := b.NewActionSpace("elsewhere")

	err := n.AttachChildSpace(s)
	assert.ErrorIs(t, err, domain.ErrForeignSpace)
	_, ok := n.ChildSpace()
	assert.False(t, ok)
	assert.Empty(t, s.Owners())

	assert.ErrorIs(t, n.AttachChildSpace(nil), domain.ErrSpaceNotFound)
}

func TestNode_AttachTypedNilSpace(t *testing.T) {
	tr := tree.New()
	n := tr.NewRoot()

	tests := []struct {
		name  string
		space tree.Space
	}{
		{"action", (*tree.ActionSpace)(nil)},
		{"chance", (*tree.ChanceSpace)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, n.AttachChildSpace(tt.space), domain.ErrSpaceNotFound)
			_, ok := n.ChildSpace()
			assert.False(t, ok)
		})
	}
}
