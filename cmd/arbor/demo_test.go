package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/arbor/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	sc, err := demo.Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, sc.Tree, "nodes", false))
	assert.Equal(t, "[(Root) (Italy) (Edinburgh) (Colombia) (Freelance) (Employed) (Freelance) (Employed)]\n", buf.String())

	buf.Reset()
	require.NoError(t, render(&buf, sc.Tree, "mermaid", false))
	assert.Contains(t, buf.String(), `n2 -- "job type: Freelance" --> n5`)

	buf.Reset()
	require.NoError(t, render(&buf, sc.Tree, "text", false))
	assert.Contains(t, buf.String(), "(Root) --[country choice]--\n  (Italy) --[job type]--\n    (Freelance)\n")

	assert.Error(t, render(&buf, sc.Tree, "yaml", false))
}

func TestDemoCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"demo", "--format", "nodes", "--metrics", "--log-level", "warn"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "(Colombia)")
	assert.Contains(t, out.String(), "arbor_nodes_created_total 8")
	assert.Contains(t, out.String(), `arbor_spaces_created_total{kind="chance"} 1`)
	assert.Empty(t, errOut.String())
}
