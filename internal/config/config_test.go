package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "product", cfg.Union)
	assert.Equal(t, "ε", cfg.Epsilon)
	assert.Equal(t, "sink", cfg.SinkPrefix)
	assert.False(t, cfg.Prune)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FAOP_UNION", "choice")
	t.Setenv("FAOP_PRUNE", "true")
	t.Setenv("FAOP_SINK_PREFIX", "trap")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "choice", cfg.Union)
	assert.True(t, cfg.Prune)
	assert.Equal(t, "trap", cfg.SinkPrefix)
}

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FAOP_OUTPUT=dot\n"), 0o600))
	// register the restore, then clear it so the file value is picked up
	t.Setenv("FAOP_OUTPUT", "")
	require.NoError(t, os.Unsetenv("FAOP_OUTPUT"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dot", cfg.Output)
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("FAOP_PRUNE", "maybe")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParsingConfig)
}
