package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/algorithms"
	"github.com/katalvlaran/lvlgraph/builder"
	"github.com/katalvlaran/lvlgraph/core"
)

var configKeys = []string{
	"GRAPHDEMO_VERTICES", "GRAPHDEMO_EDGES", "GRAPHDEMO_SOURCE", "GRAPHDEMO_ROOT",
	"GRAPHDEMO_METHODS", "GRAPHDEMO_REMOVE", "GRAPHDEMO_LOG_LEVEL", "GRAPHDEMO_LOG_FORMAT",
	"GRAPHDEMO_PRESET", "GRAPHDEMO_SEED", "GRAPHDEMO_MAX_WEIGHT", "GRAPHDEMO_METRICS",
}

// clearEnv unsets every config key now and again after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		_ = os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range configKeys {
			_ = os.Unsetenv(k)
		}
	})
}

// TestLoadConfig_Defaults verifies the demo graph defaults.
func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Vertices)
	assert.Equal(t, []string{"0-1:4", "0-2:1", "1-2:2", "1-3:5", "2-3:8", "3-4:3"}, cfg.Edges)
	assert.Equal(t, 0, cfg.Source)
	assert.Equal(t, 0, cfg.Root)
	assert.Equal(t, "1-2", cfg.Remove)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Len(t, cfg.Methods, 5)
	assert.Empty(t, cfg.Preset)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, int64(9), cfg.MaxWeight)
	assert.False(t, cfg.Metrics)
}

// TestLoadConfig_EnvVars verifies environment overrides.
func TestLoadConfig_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRAPHDEMO_VERTICES", "3")
	t.Setenv("GRAPHDEMO_EDGES", "0-1:7,1-2:-2")
	t.Setenv("GRAPHDEMO_SOURCE", "2")
	t.Setenv("GRAPHDEMO_METHODS", "prim,kruskal")
	t.Setenv("GRAPHDEMO_REMOVE", "")
	t.Setenv("GRAPHDEMO_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Vertices)
	assert.Equal(t, []string{"0-1:7", "1-2:-2"}, cfg.Edges)
	assert.Equal(t, 2, cfg.Source)
	assert.Equal(t, []string{"prim", "kruskal"}, cfg.Methods)
	assert.Empty(t, cfg.Remove)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// TestLoadConfig_DotEnv reads a .env file without overriding the environment.
func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRAPHDEMO_ROOT", "1")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRAPHDEMO_VERTICES=2\nGRAPHDEMO_ROOT=0\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Vertices)
	assert.Equal(t, 1, cfg.Root)
}

// TestValidateConfig rejects bad values.
func TestValidateConfig(t *testing.T) {
	base := Config{Vertices: 1, LogLevel: "info", LogFormat: "console", Methods: []string{"bfs"}}
	require.NoError(t, ValidateConfig(&base))

	bad := base
	bad.Vertices = -1
	assert.ErrorIs(t, ValidateConfig(&bad), ErrInvalidVertices)

	bad = base
	bad.LogLevel = "loud"
	assert.ErrorIs(t, ValidateConfig(&bad), ErrInvalidLogLevel)

	bad = base
	bad.LogFormat = "xml"
	assert.ErrorIs(t, ValidateConfig(&bad), ErrInvalidLogFormat)

	bad = base
	bad.Preset = "grid:2x2"
	bad.MaxWeight = 1
	assert.ErrorIs(t, ValidateConfig(&bad), ErrInvalidPreset)

	bad = base
	bad.Preset = "path"
	assert.ErrorIs(t, ValidateConfig(&bad), ErrInvalidMaxWeight)

	bad = base
	bad.Methods = []string{"floyd"}
	assert.ErrorIs(t, ValidateConfig(&bad), algorithms.ErrUnknownMethod)
}

// TestParseEdge covers the u-v:w syntax.
func TestParseEdge(t *testing.T) {
	u, v, w, err := ParseEdge(" 3-4:-12 ")
	require.NoError(t, err)
	assert.Equal(t, [3]int64{3, 4, -12}, [3]int64{int64(u), int64(v), w})

	for _, s := range []string{"3-4", "3:4", "a-4:1", "3-b:1", "3-4:x"} {
		_, _, _, err = ParseEdge(s)
		assert.ErrorIs(t, err, ErrInvalidEdge, s)
	}
}

// TestParseRemove treats an empty value as "skip".
func TestParseRemove(t *testing.T) {
	_, _, ok, err := ParseRemove("  ")
	require.NoError(t, err)
	assert.False(t, ok)

	u, v, ok, err := ParseRemove("1-2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, []int{u, v})

	_, _, _, err = ParseRemove("12")
	assert.ErrorIs(t, err, ErrInvalidRemove)
}

// TestBuildGraph reports out-of-range endpoints through core.ErrInvalidVertex.
func TestBuildGraph(t *testing.T) {
	g, err := BuildGraph(&Config{Vertices: 2, Edges: []string{"0-1:5", ""}})
	require.NoError(t, err)
	assert.True(t, g.HasEdge(1, 0))

	_, err = BuildGraph(&Config{Vertices: 2, Edges: []string{"0-2:5"}})
	assert.ErrorIs(t, err, core.ErrInvalidVertex)
}

// TestParsePreset covers every preset form.
func TestParsePreset(t *testing.T) {
	for _, s := range []string{"path", "Cycle", "complete", "star", "wheel", "grid:2x3", "random:0.5"} {
		_, err := ParsePreset(s, 6)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"tree", "grid:2x2", "grid:2", "random:x"} {
		_, err := ParsePreset(s, 6)
		assert.ErrorIs(t, err, ErrInvalidPreset, s)
	}
}

// TestBuildGraph_Preset builds a seeded topology instead of the edge list.
func TestBuildGraph_Preset(t *testing.T) {
	cfg := &Config{Vertices: 6, Preset: "grid:2x3", Seed: 5, MaxWeight: 4, Edges: []string{"bogus"}}
	g, err := BuildGraph(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2*7, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.True(t, e.Weight >= 1 && e.Weight <= 4)
	}

	_, err = BuildGraph(&Config{Vertices: 4, Preset: "random:0.5", Seed: 1, MaxWeight: 3})
	require.NoError(t, err)

	_, err = BuildGraph(&Config{Vertices: 2, Preset: "cycle", MaxWeight: 1})
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}
