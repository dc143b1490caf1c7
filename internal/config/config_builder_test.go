package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
	assert.Equal(t, "http://localhost:3000", cfg.Adapter.HTTPAddress)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://file:3000"}, Log: Log{Level: "info"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:3000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
}

func TestLoadStructuredConfig_Priority(t *testing.T) {
	p := writeConfigFile(t, "config.toml", `
[adapter]
http_address = "http://file:3000"

[log]
level = "warn"
`)
	t.Setenv("ADAPTER_ADDRESS", "http://env:3000")
	t.Setenv("CONFIG", p)

	cfg, err := loadStructuredConfig([]string{"-log-level", "error"})
	require.NoError(t, err)

	assert.Equal(t, "http://env:3000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, DefaultMaxUploadSize, cfg.Server.MaxUploadSize)
}

func TestLoadStructuredConfig_FileError(t *testing.T) {
	_, err := loadStructuredConfig([]string{"-c", "/does/not/exist.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}
