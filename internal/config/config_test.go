package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "maturity.db", cfg.Store.Path)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.InDelta(t, 25_000, cfg.Investment.DataCostPerPoint, 0.001)
	assert.InDelta(t, 40_000, cfg.Investment.AICostPerPoint, 0.001)
	assert.InDelta(t, 0.4, cfg.Simulation.Smoothing, 0.001)
	assert.Equal(t, 5, cfg.Simulation.DefaultHorizonYears)
	assert.Equal(t, "default", cfg.Benchmark.DefaultID)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
store:
  driver: postgres
  database_url: postgres://localhost/maturity
log:
  level: debug
  format: console
scoring:
  data_weights:
    collection: 0.3
    storage: 0.2
    integration: 0.2
    governance: 0.2
    accessibility: 0.1
investment:
  data_cost_per_point: 30000
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/maturity", cfg.Store.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.InDelta(t, 0.3, cfg.Scoring.DataWeights["collection"], 0.001)
	assert.InDelta(t, 30_000, cfg.Investment.DataCostPerPoint, 0.001)
	// Untouched defaults survive.
	assert.InDelta(t, 40_000, cfg.Investment.AICostPerPoint, 0.001)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.Error(t, InitLogger(LogConfig{Level: "nope", Format: "json"}))
}
