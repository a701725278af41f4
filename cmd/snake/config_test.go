package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/input"
)

func parseArgs(t *testing.T, args ...string) (appConfig, error) {
	t.Helper()
	var got appConfig
	cmd := newCommand(func(ctx context.Context, cfg appConfig) error {
		got = cfg
		return nil
	})
	err := cmd.Run(context.Background(), append([]string{"snake"}, args...))
	return got, err
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := parseArgs(t)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := engine.DefaultConfig()
	if cfg.Game.Width != want.Width || cfg.Game.Height != want.Height || cfg.Game.TickInterval != want.TickInterval {
		t.Errorf("Expected default game config, got %+v", cfg.Game)
	}
	if cfg.Sound || cfg.Headless || cfg.Debug || cfg.Spectate != "" {
		t.Errorf("Expected optional features off, got %+v", cfg)
	}
	if cfg.LogDir != defaultLogDir {
		t.Errorf("Expected log dir %q, got %q", defaultLogDir, cfg.LogDir)
	}
}

func TestConfigFlags(t *testing.T) {
	cfg, err := parseArgs(t,
		"--width", "20", "--height", "15", "--tick", "150ms",
		"--seed", "42", "--sound", "--spectate", "127.0.0.1:9000", "--debug",
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if cfg.Game.Width != 20 || cfg.Game.Height != 15 {
		t.Errorf("Expected 20x15, got %dx%d", cfg.Game.Width, cfg.Game.Height)
	}
	if cfg.Game.TickInterval != 150*time.Millisecond || cfg.Game.Seed != 42 {
		t.Errorf("Unexpected tick/seed %v/%d", cfg.Game.TickInterval, cfg.Game.Seed)
	}
	if !cfg.Sound || !cfg.Debug || cfg.Spectate != "127.0.0.1:9000" {
		t.Errorf("Unexpected options %+v", cfg)
	}
}

func TestConfigEnvironment(t *testing.T) {
	t.Setenv("SNAKE_HEIGHT", "25")
	t.Setenv("SNAKE_HEADLESS", "true")

	cfg, err := parseArgs(t)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if cfg.Game.Height != 25 || !cfg.Headless {
		t.Errorf("Expected env overrides, got height=%d headless=%v", cfg.Game.Height, cfg.Headless)
	}
}

func TestConfigRejectsInvalid(t *testing.T) {
	if _, err := parseArgs(t, "--width", "2"); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Expected invalid config for tiny board, got %v", err)
	}
	if _, err := parseArgs(t, "--tick", "0s"); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Expected invalid config for zero tick, got %v", err)
	}
	if _, err := parseArgs(t, "--seed", "-1"); !errors.Is(err, errInvalidFlags) {
		t.Errorf("Expected invalid flags for negative seed, got %v", err)
	}
}

func TestConfigCentersSnakeOnSmallBoard(t *testing.T) {
	cfg, err := parseArgs(t, "--width", "6", "--height", "5")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []core.Point{{X: 3, Y: 2}, {X: 2, Y: 2}}
	if len(cfg.Game.InitialBody) != 2 || cfg.Game.InitialBody[0] != want[0] || cfg.Game.InitialBody[1] != want[1] {
		t.Errorf("Expected centered body %v, got %v", want, cfg.Game.InitialBody)
	}
}

func TestTickWarning(t *testing.T) {
	if tickWarning(100 * time.Millisecond) {
		t.Error("100ms should not warn")
	}
	if !tickWarning(time.Millisecond) || !tickWarning(time.Second) {
		t.Error("Expected warnings for extreme intervals")
	}
}

func TestConfigLoadsKeymap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\nk = \"north\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := parseArgs(t, "--keys", path)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if it, ok := cfg.Keys.Translate(input.Key{Rune: 'k'}); !ok || it.Direction != core.North {
		t.Errorf("Expected k bound to north, got %+v/%v", it, ok)
	}

	if _, err := parseArgs(t, "--keys", filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error for missing keymap")
	}
}
