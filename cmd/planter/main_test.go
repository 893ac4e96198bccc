package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/l1jgo/planter/internal/config"
	"github.com/l1jgo/planter/internal/core/event"
	"github.com/l1jgo/planter/internal/host"
	"github.com/l1jgo/planter/internal/system"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"), true)
	require.NoError(t, err)
	return cfg
}

func TestBuildDeps_WindowUsesHostInput(t *testing.T) {
	deps := buildDeps(testConfig(t), false, nil, nil, event.NewBus(), zap.NewNop())
	require.IsType(t, host.Input{}, deps.Input, "window mode must read the keyboard and mouse")
	require.IsType(t, &system.RealClock{}, deps.Clock)
}

func TestBuildDeps_Headless(t *testing.T) {
	cfg := testConfig(t)
	deps := buildDeps(cfg, true, nil, nil, event.NewBus(), zap.NewNop())
	require.IsType(t, system.InputFunc(nil), deps.Input)
	require.Equal(t, system.StepClock{Step: time.Second / 60}, deps.Clock)
	require.Equal(t, cfg.Simulation.MaxStep, deps.MaxStep)
	require.Equal(t, cfg.Planter.DefaultSeed, deps.DefaultSeed)
}
