// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime knob. Everything has a sensible default so
// the game runs with an empty environment.
type Config struct {
	// DataDir is where the leaderboard database lives. Defaults to the
	// user config dir.
	DataDir string `env:"PACMAN_DATA_DIR"`
	// PrefabPath optionally overlays the embedded ghost prefabs.
	PrefabPath string `env:"PACMAN_PREFABS"`
	// WatchPrefabs hot-reloads PrefabPath while the game runs.
	WatchPrefabs bool `env:"PACMAN_WATCH_PREFABS" envDefault:"false"`
	// Lives is the starting life count.
	Lives int `env:"PACMAN_LIVES" envDefault:"3"`
	// Scale is the integer window scale factor.
	Scale int `env:"PACMAN_SCALE" envDefault:"3"`
	// Mute silences all audio.
	Mute bool `env:"PACMAN_MUTE" envDefault:"false"`
}

// Load parses the environment and fills in derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		cfg.DataDir = filepath.Join(base, "pacman")
	}
	if cfg.Lives < 1 {
		cfg.Lives = 1
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return cfg, nil
}
