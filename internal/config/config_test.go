package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockcraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 16, cfg.World.Capacity)
	assert.Equal(t, 4, cfg.World.ReachDistance)
	assert.InDelta(t, 0.99, cfg.World.FaceTolerance, 1e-6)
	assert.True(t, cfg.World.SpawnBlock)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  capacity: 32
  face_tolerance: 0.95
terrain:
  enabled: true
  seed: 42
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.World.Capacity)
	assert.InDelta(t, 0.95, cfg.World.FaceTolerance, 1e-6)
	assert.Equal(t, 4, cfg.World.ReachDistance, "unset fields keep their defaults")
	assert.True(t, cfg.Terrain.Enabled)
	assert.Equal(t, int64(42), cfg.Terrain.Seed)
	assert.Equal(t, int32(3), cfg.Terrain.Octaves)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "world:\n  reach_distance: 7\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.World.ReachDistance)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "world: [1, 2")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "world:\n  capacity: 0\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative reach", func(c *Config) { c.World.ReachDistance = -1 }},
		{"zero tolerance", func(c *Config) { c.World.FaceTolerance = 0 }},
		{"tolerance above one", func(c *Config) { c.World.FaceTolerance = 1.5 }},
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"terrain without octaves", func(c *Config) { c.Terrain.Enabled = true; c.Terrain.Octaves = 0 }},
		{"terrain without scale", func(c *Config) { c.Terrain.Enabled = true; c.Terrain.Scale = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
