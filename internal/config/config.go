// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// AppName names the per-user data directory.
const AppName = "dungeon-crawl"

// Config holds every tunable of a run.
type Config struct {
	Seed      int64 `env:"DUNGEON_SEED" envDefault:"0"`
	MapWidth  int   `env:"DUNGEON_MAP_WIDTH" envDefault:"80"`
	MapHeight int   `env:"DUNGEON_MAP_HEIGHT" envDefault:"43"`
	MaxRooms  int   `env:"DUNGEON_MAX_ROOMS" envDefault:"30"`

	SaveBackend string `env:"DUNGEON_SAVE_BACKEND" envDefault:"file"`
	SavePath    string `env:"DUNGEON_SAVE_PATH"`

	LogLevel  string `env:"DUNGEON_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DUNGEON_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"DUNGEON_LOG_FILE"`

	RunLog bool `env:"DUNGEON_RUNLOG" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment, fills derived defaults and validates.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.SaveBackend = strings.ToLower(strings.TrimSpace(cfg.SaveBackend))
	if cfg.SavePath == "" {
		dir, err := DataDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		name := "save.json"
		if cfg.SaveBackend == "sqlite" {
			name = "save.db"
		}
		cfg.SavePath = filepath.Join(dir, name)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the map generator or save layer cannot use.
func (c Config) Validate() error {
	if c.MapWidth < 20 || c.MapHeight < 20 {
		return fmt.Errorf("map size %dx%d is below the 20x20 minimum", c.MapWidth, c.MapHeight)
	}
	if c.MaxRooms < 1 {
		return fmt.Errorf("max rooms must be positive, got %d", c.MaxRooms)
	}
	switch c.SaveBackend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown save backend %q", c.SaveBackend)
	}
	return nil
}

// DataDir returns $XDG_DATA_HOME/dungeon-crawl, defaulting to
// ~/.local/share/dungeon-crawl.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}
