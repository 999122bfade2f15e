// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "aim-warmup"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	return xdgHome("XDG_CONFIG_HOME", ".config")
}

// XDGStateHome returns the XDG state home or a default fallback.
func XDGStateHome() string {
	return xdgHome("XDG_STATE_HOME", ".local", "state")
}

func xdgHome(env string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}

// DefaultLogPath returns the debug log path used when logging is set to "auto".
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), appDir, "debug.log")
}
