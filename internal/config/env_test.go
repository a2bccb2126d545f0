package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info", LogFormat: "text", Format: "text", Color: true}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ARBOR_LOG_LEVEL", "debug")
	t.Setenv("ARBOR_FORMAT", "mermaid")
	t.Setenv("ARBOR_COLOR", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "mermaid", cfg.Format)
	assert.False(t, cfg.Color)
}

func TestLoad_BadBool(t *testing.T) {
	t.Setenv("ARBOR_COLOR", "maybe")
	_, err := Load()
	assert.Error(t, err)
}
