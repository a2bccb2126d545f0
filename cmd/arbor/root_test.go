package main

import (
	"testing"

	"github.com/aretw0/arbor/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConfig(t *testing.T) {
	flags := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("format", "text", "")
	flags.Bool("color", true, "")
	require.NoError(t, flags.Parse([]string{"--format", "mermaid"}))

	cfg := config.Config{LogLevel: "debug", Format: "nodes", Color: false}
	require.NoError(t, applyConfig(flags, cfg))

	level, _ := flags.GetString("log-level")
	format, _ := flags.GetString("format")
	color, _ := flags.GetBool("color")
	assert.Equal(t, "debug", level)
	assert.Equal(t, "mermaid", format)
	assert.False(t, color)
}

func TestApplyConfig_ReturnsSetError(t *testing.T) {
	flags := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	flags.Int("color", 0, "")

	err := applyConfig(flags, config.Config{Color: true})
	assert.ErrorContains(t, err, "apply color")
}
