// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
}

// GameConfig maps session-related settings. Nil fields were not set.
type GameConfig struct {
	Duration *int    `toml:"duration" env:"AIMWARMUP_DURATION"`
	FPS      *int    `toml:"fps"      env:"AIMWARMUP_FPS"`
	Seed     *int64  `toml:"seed"     env:"AIMWARMUP_SEED"`
	Log      *string `toml:"log"      env:"AIMWARMUP_LOG"`
	Summary  *bool   `toml:"summary"  env:"AIMWARMUP_SUMMARY"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// ResolveLogPath expands "auto" to the default log path and leaves other values as-is.
func ResolveLogPath(value string) string {
	if value == "auto" {
		return DefaultLogPath()
	}
	return value
}
