package observability_test

import (
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountTreeEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	tr := tree.New(tree.WithHooks(m.Hooks()))
	a, b := tr.NewRoot(), tr.NewRoot()
	s := tr.NewActionSpace("job type")
	s.AddOption("Freelance")
	s.AddOption("Employed")
	tr.NewChanceSpace("reaction")
	require.NoError(t, a.AttachChildSpace(s))
	require.NoError(t, b.AttachChildSpace(s))
	s.Expand()

	assert.Equal(t, 6.0, testutil.ToFloat64(m.NodesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpacesCreated.WithLabelValues("action")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpacesCreated.WithLabelValues("chance")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Attaches))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Expansions.WithLabelValues("action")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ExpansionChildren))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)
	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestChain(t *testing.T) {
	var order []string
	first := domain.LifecycleHooks{OnExpand: func(*domain.ExpandEvent) { order = append(order, "first") }}
	second := domain.LifecycleHooks{
		OnExpand:      func(*domain.ExpandEvent) { order = append(order, "second") },
		OnNodeCreated: func(*domain.NodeEvent) { order = append(order, "node") },
	}

	tr := tree.New(tree.WithHooks(observability.Chain(first, second)))
	root := tr.NewRoot()
	s := tr.NewActionSpace("s")
	require.NoError(t, root.AttachChildSpace(s))
	s.Expand()

	assert.Equal(t, []string{"node", "first", "second"}, order)
}
