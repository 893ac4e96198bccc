package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planter.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), true)
	require.NoError(t, err)
	require.Equal(t, 60, cfg.Simulation.TickRate)
	require.Equal(t, 100*time.Millisecond, cfg.Simulation.MaxStep)
	require.Equal(t, 32, cfg.Simulation.CellSize)
	require.Equal(t, "cog", cfg.Planter.DefaultSeed)
	require.Equal(t, time.Second/60, cfg.Simulation.TickInterval())
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), false)
	require.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, `
[simulation]
tick_rate = 30
max_step = "50ms"

[window]
title = "garden"

[planter]
default_seed = "bloom"

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path, false)
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Simulation.TickRate)
	require.Equal(t, 50*time.Millisecond, cfg.Simulation.MaxStep)
	require.Equal(t, 32, cfg.Simulation.CellSize, "unset keys keep their default")
	require.Equal(t, "garden", cfg.Window.Title)
	require.Equal(t, 800, cfg.Window.Width)
	require.Equal(t, "bloom", cfg.Planter.DefaultSeed)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":    "[simulation\n",
		"duration":  "[simulation]\nmax_step = \"soon\"\n",
		"tick rate": "[simulation]\ntick_rate = 0\n",
		"cell size": "[simulation]\ncell_size = -1\n",
		"window":    "[window]\nwidth = 0\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body), false)
			require.Error(t, err)
		})
	}
}

func TestShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config", "planter.toml"), false)
	require.NoError(t, err)
	require.Equal(t, defaults(), cfg, "the sample file restates the defaults")
}
