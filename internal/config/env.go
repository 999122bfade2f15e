package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overrides file settings with AIMWARMUP_* environment variables.
// Unset variables leave the file values in place.
func ApplyEnv(cfg *FileConfig) error {
	if err := env.Parse(&cfg.Game); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
