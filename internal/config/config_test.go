package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.Duration != nil || cfg.Game.FPS != nil {
		t.Fatalf("expected empty config, got %+v", cfg.Game)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigGameSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[game]\nduration = 10\nfps = 60\nseed = 42\nlog = \"auto\"\nsummary = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	g := cfg.Game
	if g.Duration == nil || *g.Duration != 10 {
		t.Fatalf("unexpected duration: %v", g.Duration)
	}
	if g.FPS == nil || *g.FPS != 60 {
		t.Fatalf("unexpected fps: %v", g.FPS)
	}
	if g.Seed == nil || *g.Seed != 42 {
		t.Fatalf("unexpected seed: %v", g.Seed)
	}
	if g.Log == nil || *g.Log != "auto" {
		t.Fatalf("unexpected log: %v", g.Log)
	}
	if g.Summary == nil || *g.Summary {
		t.Fatalf("unexpected summary: %v", g.Summary)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "game.speed") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsRespectXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "aim-warmup", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := ResolveLogPath("auto"); got != filepath.Join("/tmp/state", "aim-warmup", "debug.log") {
		t.Fatalf("unexpected log path %q", got)
	}
	if got := ResolveLogPath("/var/log/x.log"); got != "/var/log/x.log" {
		t.Fatalf("expected explicit path to pass through, got %q", got)
	}
}

func TestApplyEnvOverridesFile(t *testing.T) {
	fileFPS := 60
	fileSeed := int64(9)
	cfg := FileConfig{Game: GameConfig{FPS: &fileFPS, Seed: &fileSeed}}
	t.Setenv("AIMWARMUP_FPS", "45")
	t.Setenv("AIMWARMUP_SUMMARY", "false")
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Game.FPS == nil || *cfg.Game.FPS != 45 {
		t.Fatalf("expected env fps 45, got %v", cfg.Game.FPS)
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 9 {
		t.Fatalf("expected file seed to survive, got %v", cfg.Game.Seed)
	}
	if cfg.Game.Summary == nil || *cfg.Game.Summary {
		t.Fatalf("expected summary disabled, got %v", cfg.Game.Summary)
	}
	if cfg.Game.Duration != nil {
		t.Fatalf("expected unset duration to stay nil")
	}
}

func TestApplyEnvRejectsBadValues(t *testing.T) {
	t.Setenv("AIMWARMUP_DURATION", "ten")
	var cfg FileConfig
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}
