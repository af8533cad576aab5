package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/octatile/hyperbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "octatile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	p, err := cfg.PairingValue()
	require.NoError(t, err)
	assert.Equal(t, hyperbolic.DefaultPairing, p)
	assert.Equal(t, hyperbolic.DefaultDescent().Iterations, cfg.DescentValue().Iterations)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
seed: 7
max_attempts: 25
depth: 3
sampler:
  max_radius: 0.9
render:
  scale: 200
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 25, cfg.MaxAttempts)
	assert.Equal(t, 3, cfg.Depth)
	assert.Equal(t, 0.9, cfg.Sampler.MaxRadius)
	assert.Equal(t, 200.0, cfg.Render.Scale)

	// Keys missing from the file keep their defaults.
	def := Default()
	assert.Equal(t, def.Sampler.MinRadius, cfg.Sampler.MinRadius)
	assert.Equal(t, def.Render.Offset, cfg.Render.Offset)
	assert.Equal(t, def.Render.Colors, cfg.Render.Colors)
	assert.Equal(t, def.Output, cfg.Output)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "depth: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative attempts", func(c *Config) { c.MaxAttempts = -1 }},
		{"negative depth", func(c *Config) { c.Depth = -2 }},
		{"short pairing", func(c *Config) { c.Pairing = []int{2, 3, 0, 1} }},
		{"bad pairing", func(c *Config) { c.Pairing = []int{1, 0, 3, 2, 5, 4, 7, 6} }},
		{"inverted radii", func(c *Config) { c.Sampler.MinRadius, c.Sampler.MaxRadius = 0.9, 0.5 }},
		{"radius outside disk", func(c *Config) { c.Sampler.MaxRadius = 1 }},
		{"zero step", func(c *Config) { c.Descent.Step = 0 }},
		{"zero scale", func(c *Config) { c.Render.Scale = 0 }},
		{"missing colors", func(c *Config) { c.Render.Colors = c.Render.Colors[:3] }},
		{"no output", func(c *Config) { c.Output = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPairingValueWrapsSentinel(t *testing.T) {
	cfg := Default()
	cfg.Pairing = []int{0}
	_, err := cfg.PairingValue()
	assert.ErrorIs(t, err, hyperbolic.ErrInvalidPairing)
}
